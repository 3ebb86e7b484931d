// Package logger provides structured logging utilities built on Go's standard
// slog package. It offers environment-specific configurations, context-aware
// attribute extraction, and a set of pre-built attributes for the logging
// patterns used across this module.
//
// # Features
//
//   - Built on Go's standard slog for compatibility and performance
//   - Environment-specific configurations (development, staging, production)
//   - Context-aware attribute extraction for request-scoped data
//   - Attribute helpers for errors, timing, and localization metadata
//   - Support for both JSON and text output formats
//   - Type-safe attribute creation with nil safety
//
// # Basic Usage
//
// Create loggers using the factory function with configuration options:
//
//	import "github.com/glossadev/glossa/core/logger"
//
//	// Create a development logger
//	log := logger.New(
//		logger.WithDevelopment("myapp"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	// Create a production logger
//	log := logger.New(
//		logger.WithProduction("myapp"),
//	)
//
//	// Use the logger
//	log.Info("catalog loaded",
//		logger.Component("i18n"),
//		logger.Count("locales", 3),
//	)
//
// # Environment Configurations
//
// The package provides pre-configured setups for different environments:
//
//	// Development: text format, debug level, stdout
//	devLogger := logger.New(logger.WithDevelopment("myapp"))
//
//	// Staging and production: JSON format, info level, stdout
//	stageLogger := logger.New(logger.WithStaging("myapp"))
//	prodLogger := logger.New(logger.WithProduction("myapp"))
//
//	// Custom configuration
//	customLogger := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Context-Aware Logging
//
// Extract and inject attributes automatically from context values:
//
//	log := logger.New(
//		logger.WithProduction("myapp"),
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//
//	ctx := context.WithValue(context.Background(), requestIDKey, "req-12345")
//	log.InfoContext(ctx, "processing request")
//	// Output: {"level":"INFO","msg":"processing request","request_id":"req-12345"}
//
// Custom extractors cover values that need unwrapping. The i18n package
// ships one for the request locale:
//
//	log := logger.New(
//		logger.WithProduction("myapp"),
//		logger.WithContextExtractors(i18n.LocaleExtractor),
//	)
//
//	ctx := i18n.WithLocale(context.Background(), "ar-EG")
//	log.InfoContext(ctx, "rendering page")
//	// Output: {"level":"INFO","msg":"rendering page","locale":"ar-EG"}
//
// # Attribute Helpers
//
// Helpers return a zero slog.Attr for nil or empty input, so call sites
// never need guards:
//
//	log.Warn("translation missing",
//		logger.Component("i18n"),
//		logger.Locale("de"),
//		logger.Namespace("inventory"),
//		logger.TranslationKey("drugs.stockCount"),
//	)
//
//	log.Error("catalog load failed",
//		logger.Error(err),
//		logger.Component("i18n"),
//	)
//
//	start := time.Now()
//	// ... do work ...
//	log.Info("catalog reloaded",
//		logger.Elapsed(start),
//		logger.Result("success"),
//	)
//
// # Global Logger Setup
//
// Install a default logger once at startup:
//
//	func initLogging() {
//		log := logger.New(logger.WithProduction("myapp"))
//		logger.SetAsDefault(log)
//	}
//
//	// Use anywhere in the application
//	slog.Info("using global logger", logger.Component("global"))
//
// # Testing with Custom Output
//
// Capture records during testing:
//
//	func TestLogging(t *testing.T) {
//		var buf bytes.Buffer
//		log := logger.New(
//			logger.WithJSONFormatter(),
//			logger.WithOutput(&buf),
//		)
//
//		log.Info("test message", logger.Component("test"))
//
//		output := buf.String()
//		assert.Contains(t, output, "test message")
//		assert.Contains(t, output, `"component":"test"`)
//	}
//
// # Advanced Configuration
//
// Fine-tune handler behavior with raw slog options:
//
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithHandlerOptions(&slog.HandlerOptions{
//			AddSource: true,
//			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
//				if a.Key == slog.TimeKey {
//					return slog.String("timestamp", a.Value.Time().Format(time.RFC3339))
//				}
//				return a
//			},
//		}),
//	)
package logger
