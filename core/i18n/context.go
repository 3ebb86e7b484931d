package i18n

import (
	"context"
	"log/slog"

	"github.com/glossadev/glossa/core/logger"
)

type ctxKey int

const (
	localeCtxKey ctxKey = iota
	translatorCtxKey
)

// WithLocale returns a context carrying the given locale. Request handlers
// and background jobs thread their locale through the context instead of
// mutating shared state.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeCtxKey, locale)
}

// LocaleFrom extracts the locale from the context.
func LocaleFrom(ctx context.Context) (string, bool) {
	locale, ok := ctx.Value(localeCtxKey).(string)
	return locale, ok
}

// LocaleFromOr extracts the locale from the context, returning the fallback
// when none is set.
func LocaleFromOr(ctx context.Context, fallback string) string {
	if locale, ok := LocaleFrom(ctx); ok && locale != "" {
		return locale
	}
	return fallback
}

// WithTranslator returns a context carrying a translator.
func WithTranslator(ctx context.Context, t *Translator) context.Context {
	return context.WithValue(ctx, translatorCtxKey, t)
}

// TranslatorFrom extracts the translator from the context.
func TranslatorFrom(ctx context.Context) (*Translator, bool) {
	t, ok := ctx.Value(translatorCtxKey).(*Translator)
	return t, ok && t != nil
}

// LocaleExtractor contributes the context locale as a log attribute.
// Pass it to logger.WithContextExtractors to stamp records with the
// active request locale.
func LocaleExtractor(ctx context.Context) (slog.Attr, bool) {
	if locale, ok := LocaleFrom(ctx); ok && locale != "" {
		return logger.Locale(locale), true
	}
	return slog.Attr{}, false
}
