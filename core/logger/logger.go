package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ContextExtractor pulls a single attribute out of a context.
// Returning false skips the attribute for the current record.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// Option configures the logger returned by New.
type Option func(*config)

type config struct {
	output      io.Writer
	level       slog.Leveler
	json        bool
	attrs       []slog.Attr
	handlerOpts *slog.HandlerOptions
	extractors  []ContextExtractor
}

// New creates a slog.Logger configured by the supplied options.
// Without options it writes text records at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		output: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	// Copy caller-supplied handler options so the injected level never
	// mutates the original struct.
	var ho slog.HandlerOptions
	if cfg.handlerOpts != nil {
		ho = *cfg.handlerOpts
	}
	if ho.Level == nil {
		ho.Level = cfg.level
	}

	var handler slog.Handler
	if cfg.json {
		handler = slog.NewJSONHandler(cfg.output, &ho)
	} else {
		handler = slog.NewTextHandler(cfg.output, &ho)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}
	if len(cfg.extractors) > 0 {
		handler = &contextHandler{next: handler, extractors: cfg.extractors}
	}

	return slog.New(handler)
}

// WithDevelopment configures text output at debug level, stamped with the
// application name and a development environment attribute.
func WithDevelopment(appName string) Option {
	return func(c *config) {
		c.json = false
		c.level = slog.LevelDebug
		c.attrs = append(c.attrs, environmentAttrs(appName, "development")...)
	}
}

// WithStaging configures JSON output at info level, stamped with the
// application name and a staging environment attribute.
func WithStaging(appName string) Option {
	return func(c *config) {
		c.json = true
		c.level = slog.LevelInfo
		c.attrs = append(c.attrs, environmentAttrs(appName, "staging")...)
	}
}

// WithProduction configures JSON output at info level, stamped with the
// application name and a production environment attribute.
func WithProduction(appName string) Option {
	return func(c *config) {
		c.json = true
		c.level = slog.LevelInfo
		c.attrs = append(c.attrs, environmentAttrs(appName, "production")...)
	}
}

// WithLevel sets the minimum record level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithJSONFormatter switches output to JSON records.
func WithJSONFormatter() Option {
	return func(c *config) {
		c.json = true
	}
}

// WithTextFormatter switches output to text records.
func WithTextFormatter() Option {
	return func(c *config) {
		c.json = false
	}
}

// WithOutput redirects records to the given writer.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr appends attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithHandlerOptions supplies raw slog handler options. A nil Level inside
// falls back to the level configured by other options.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		c.handlerOpts = opts
	}
}

// WithContextValue emits the context value stored under ctxKey as an
// attribute named attrKey on records logged through the *Context methods.
// Missing or nil context values are skipped.
func WithContextValue(attrKey string, ctxKey any) Option {
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		if v := ctx.Value(ctxKey); v != nil {
			return slog.Any(attrKey, v), true
		}
		return slog.Attr{}, false
	})
}

// WithContextExtractors registers extractors that contribute attributes
// from the context of each record. Nil extractors are ignored.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, extract := range extractors {
			if extract != nil {
				c.extractors = append(c.extractors, extract)
			}
		}
	}
}

// SetAsDefault installs the logger as the process-wide slog default.
func SetAsDefault(log *slog.Logger) {
	if log != nil {
		slog.SetDefault(log)
	}
}

func environmentAttrs(appName, env string) []slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if appName != "" {
		attrs = append(attrs, slog.String("app", appName))
	}
	attrs = append(attrs, slog.String("env", env))
	return attrs
}

// contextHandler decorates another handler with context attribute
// extraction. The record is cloned before modification because records
// share state with the caller.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	record = record.Clone()
	for _, extract := range h.extractors {
		if attr, ok := extract(ctx); ok && !attr.Equal(slog.Attr{}) {
			record.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
