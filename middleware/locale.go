package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/glossadev/glossa/core/i18n"
	"github.com/glossadev/glossa/core/logger"
)

// LangParam is the query parameter carrying an explicit locale override.
const LangParam = "lang"

// LangCookie is the cookie recording the visitor's locale choice.
const LangCookie = "locale"

// LocaleConfig configures the locale middleware.
type LocaleConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// I18n is the translation engine requests resolve against (required)
	I18n *i18n.I18n
	// Namespace is the translation namespace bound to the request translator
	// Default: the engine's default namespace
	Namespace string
	// LocaleExtractor defines how to extract the locale from the request
	// Default: lang query parameter, then locale cookie, then Accept-Language
	LocaleExtractor func(r *http.Request) string
	// FallbackLocale is the locale to use if extraction fails
	// Default: uses the engine's default language
	FallbackLocale string
	// SetHeader controls writing the resolved locale to Content-Language
	SetHeader bool
	// Logger, when set, records the resolved locale and its detection
	// source at debug level
	Logger *slog.Logger
}

// Locale creates a locale middleware with default configuration.
// It detects the request locale and stores a bound translator in the
// request context.
func Locale(i18nInstance *i18n.I18n) func(http.Handler) http.Handler {
	return LocaleWithConfig(LocaleConfig{I18n: i18nInstance})
}

// LocaleWithConfig creates a locale middleware with custom configuration.
// Downstream handlers read the translator with i18n.TranslatorFrom and the
// raw locale with i18n.LocaleFrom.
func LocaleWithConfig(cfg LocaleConfig) func(http.Handler) http.Handler {
	if cfg.I18n == nil {
		panic("locale middleware: i18n instance is required")
	}

	if cfg.Namespace == "" {
		cfg.Namespace = cfg.I18n.DefaultNamespaceName()
	}
	if cfg.FallbackLocale == "" {
		cfg.FallbackLocale = cfg.I18n.DefaultLanguage()
	}
	known := cfg.I18n.Languages()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			var locale, source string
			if cfg.LocaleExtractor != nil {
				locale, source = cfg.LocaleExtractor(r), "custom"
			} else {
				locale, source = detectLocale(r, known)
			}
			if locale == "" {
				locale, source = cfg.FallbackLocale, "fallback"
			}

			if cfg.Logger != nil {
				cfg.Logger.DebugContext(r.Context(), "request locale resolved",
					logger.Locale(locale),
					logger.Source(source),
				)
			}
			if cfg.SetHeader {
				w.Header().Set("Content-Language", locale)
			}

			translator := i18n.NewTranslator(cfg.I18n, locale, cfg.Namespace)
			ctx := i18n.WithLocale(r.Context(), locale)
			ctx = i18n.WithTranslator(ctx, translator)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// detectLocale reads the visitor's preference in priority order: the lang
// query parameter, the locale cookie, then the Accept-Language header
// matched against the engine's languages. A query value of "auto" ignores
// the cookie and defers to the header.
func detectLocale(r *http.Request, known []string) (locale, source string) {
	q := r.URL.Query().Get(LangParam)
	auto := strings.EqualFold(q, "auto")

	if q != "" && !auto {
		if tag := matchSupported(q, known); tag != "" {
			return tag, "query"
		}
	}
	if !auto {
		if c, err := r.Cookie(LangCookie); err == nil && c.Value != "" {
			if tag := matchSupported(c.Value, known); tag != "" {
				return tag, "cookie"
			}
		}
	}
	if al := r.Header.Get("Accept-Language"); al != "" {
		if tag := i18n.ParseAcceptLanguage(al, known); tag != "" {
			return tag, "header"
		}
	}
	return "", ""
}

// matchSupported reports whether tag names a served language, returning
// the normalized tag. Regional variants match through their base language
// but keep the region, so locale-aware formatting still sees it.
func matchSupported(tag string, known []string) string {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if norm == "" {
		return ""
	}
	base := norm
	if i := strings.IndexByte(base, '-'); i > 0 {
		base = base[:i]
	}
	for _, lang := range known {
		ln := strings.ToLower(lang)
		if ln == norm || ln == base {
			return norm
		}
	}
	return ""
}
