package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossadev/glossa/core/logger"
)

type ctxTestKey string

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults to text at info level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("visible", logger.Component("test"))

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "visible")
		assert.Contains(t, out, "component=test")
	})

	t.Run("json formatter emits json records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
		)

		log.Info("test message", logger.Component("test"))

		out := buf.String()
		assert.Contains(t, out, `"msg":"test message"`)
		assert.Contains(t, out, `"component":"test"`)
	})

	t.Run("level option lowers the threshold", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelDebug),
		)

		log.Debug("now visible")
		assert.Contains(t, buf.String(), "now visible")
	})

	t.Run("attrs stamp every record", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "api")),
		)

		log.Info("first")
		log.Info("second")

		out := buf.String()
		assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(`"service":"api"`)))
		assert.Contains(t, out, `"service":"api"`)
	})

	t.Run("nil options are ignored", func(t *testing.T) {
		t.Parallel()
		log := logger.New(nil)
		require.NotNil(t, log)
	})
}

func TestEnvironmentPresets(t *testing.T) {
	t.Parallel()

	t.Run("development uses text at debug level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithDevelopment("myapp"),
			logger.WithOutput(&buf),
		)

		log.Debug("dev detail")

		out := buf.String()
		assert.Contains(t, out, "dev detail")
		assert.Contains(t, out, "app=myapp")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production uses json at info level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithProduction("myapp"),
			logger.WithOutput(&buf),
		)

		log.Debug("hidden")
		log.Info("served")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, `"app":"myapp"`)
		assert.Contains(t, out, `"env":"production"`)
	})

	t.Run("staging uses json at info level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithStaging("myapp"),
			logger.WithOutput(&buf),
		)

		log.Info("staged")
		assert.Contains(t, buf.String(), `"env":"staging"`)
	})

	t.Run("empty app name is skipped", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithProduction(""),
			logger.WithOutput(&buf),
		)

		log.Info("served")

		out := buf.String()
		assert.NotContains(t, out, `"app"`)
		assert.Contains(t, out, `"env":"production"`)
	})
}

func TestContextExtraction(t *testing.T) {
	t.Parallel()

	t.Run("context value is emitted", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithContextValue("request_id", ctxTestKey("request_id")),
		)

		ctx := context.WithValue(context.Background(), ctxTestKey("request_id"), "req-12345")
		log.InfoContext(ctx, "processing")

		assert.Contains(t, buf.String(), `"request_id":"req-12345"`)
	})

	t.Run("missing context value is skipped", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithContextValue("request_id", ctxTestKey("request_id")),
		)

		log.InfoContext(context.Background(), "processing")

		assert.NotContains(t, buf.String(), "request_id")
	})

	t.Run("custom extractors contribute attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(ctxTestKey("user")).(string); ok {
					return slog.String("user_id", v), true
				}
				return slog.Attr{}, false
			}),
		)

		ctx := context.WithValue(context.Background(), ctxTestKey("user"), "user-1")
		log.InfoContext(ctx, "authorized")
		log.InfoContext(context.Background(), "anonymous")

		out := buf.String()
		assert.Contains(t, out, `"user_id":"user-1"`)
		assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("user_id")))
	})

	t.Run("extractors survive WithGroup and With", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithContextValue("request_id", ctxTestKey("request_id")),
		)

		ctx := context.WithValue(context.Background(), ctxTestKey("request_id"), "req-9")
		log.With(slog.String("service", "api")).InfoContext(ctx, "derived")

		out := buf.String()
		assert.Contains(t, out, `"service":"api"`)
		assert.Contains(t, out, `"request_id":"req-9"`)
	})
}

func TestWithHandlerOptions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithHandlerOptions(&slog.HandlerOptions{
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		}),
	)

	log.Info("no timestamp")

	out := buf.String()
	assert.NotContains(t, out, `"time"`)
	assert.Contains(t, out, `"msg":"no timestamp"`)
}

func TestSetAsDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
	)

	logger.SetAsDefault(log)
	assert.Same(t, log, slog.Default())

	logger.SetAsDefault(nil)
	assert.Same(t, log, slog.Default())
}
