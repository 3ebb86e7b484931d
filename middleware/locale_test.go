package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glossadev/glossa/core/i18n"
	"github.com/glossadev/glossa/core/logger"
	"github.com/glossadev/glossa/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *i18n.I18n {
	t.Helper()
	i18nInstance, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithTranslations("en", "common", map[string]any{"hello": "Hello"}),
		i18n.WithTranslations("ar", "common", map[string]any{"hello": "مرحبا"}),
		i18n.WithTranslations("pl", "common", map[string]any{"hello": "Cześć"}),
	)
	require.NoError(t, err)
	return i18nInstance
}

// serve runs one request through the middleware and captures what the
// downstream handler observed.
func serve(t *testing.T, mw func(http.Handler) http.Handler, build func(r *http.Request)) (locale, greeting string, rec *httptest.ResponseRecorder) {
	t.Helper()

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale, _ = i18n.LocaleFrom(r.Context())
		if tr, ok := i18n.TranslatorFrom(r.Context()); ok {
			greeting = tr.T("hello")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/drugs", nil)
	if build != nil {
		build(req)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return locale, greeting, rec
}

func TestLocale(t *testing.T) {
	t.Run("panics without an engine", func(t *testing.T) {
		assert.Panics(t, func() {
			middleware.LocaleWithConfig(middleware.LocaleConfig{})
		})
	})

	t.Run("binds the default locale without preferences", func(t *testing.T) {
		locale, greeting, _ := serve(t, middleware.Locale(newEngine(t)), nil)
		assert.Equal(t, "en", locale)
		assert.Equal(t, "Hello", greeting)
	})

	t.Run("query parameter wins", func(t *testing.T) {
		locale, greeting, _ := serve(t, middleware.Locale(newEngine(t)), func(r *http.Request) {
			q := r.URL.Query()
			q.Set("lang", "ar")
			r.URL.RawQuery = q.Encode()
			r.AddCookie(&http.Cookie{Name: "locale", Value: "pl"})
			r.Header.Set("Accept-Language", "pl")
		})
		assert.Equal(t, "ar", locale)
		assert.Equal(t, "مرحبا", greeting)
	})

	t.Run("unknown query language falls through to the cookie", func(t *testing.T) {
		locale, greeting, _ := serve(t, middleware.Locale(newEngine(t)), func(r *http.Request) {
			q := r.URL.Query()
			q.Set("lang", "xx")
			r.URL.RawQuery = q.Encode()
			r.AddCookie(&http.Cookie{Name: "locale", Value: "pl"})
		})
		assert.Equal(t, "pl", locale)
		assert.Equal(t, "Cześć", greeting)
	})

	t.Run("cookie wins over the header", func(t *testing.T) {
		locale, _, _ := serve(t, middleware.Locale(newEngine(t)), func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "locale", Value: "ar"})
			r.Header.Set("Accept-Language", "pl")
		})
		assert.Equal(t, "ar", locale)
	})

	t.Run("accept-language decides without overrides", func(t *testing.T) {
		locale, greeting, _ := serve(t, middleware.Locale(newEngine(t)), func(r *http.Request) {
			r.Header.Set("Accept-Language", "pl;q=0.9,de;q=0.8")
		})
		assert.Equal(t, "pl", locale)
		assert.Equal(t, "Cześć", greeting)
	})

	t.Run("auto query ignores the cookie", func(t *testing.T) {
		locale, _, _ := serve(t, middleware.Locale(newEngine(t)), func(r *http.Request) {
			q := r.URL.Query()
			q.Set("lang", "auto")
			r.URL.RawQuery = q.Encode()
			r.AddCookie(&http.Cookie{Name: "locale", Value: "ar"})
			r.Header.Set("Accept-Language", "pl")
		})
		assert.Equal(t, "pl", locale)
	})

	t.Run("regional variants keep their region", func(t *testing.T) {
		locale, greeting, _ := serve(t, middleware.Locale(newEngine(t)), func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "locale", Value: "ar-EG"})
		})
		assert.Equal(t, "ar-eg", locale)
		// Translations resolve through the base language.
		assert.Equal(t, "مرحبا", greeting)
	})

	t.Run("skip leaves the context untouched", func(t *testing.T) {
		mw := middleware.LocaleWithConfig(middleware.LocaleConfig{
			I18n: newEngine(t),
			Skip: func(r *http.Request) bool { return r.URL.Path == "/drugs" },
		})

		locale, greeting, _ := serve(t, mw, nil)
		assert.Empty(t, locale)
		assert.Empty(t, greeting)
	})

	t.Run("custom extractor overrides detection", func(t *testing.T) {
		mw := middleware.LocaleWithConfig(middleware.LocaleConfig{
			I18n: newEngine(t),
			LocaleExtractor: func(r *http.Request) string {
				return r.Header.Get("X-Tenant-Locale")
			},
		})

		locale, _, _ := serve(t, mw, func(r *http.Request) {
			r.Header.Set("X-Tenant-Locale", "pl")
		})
		assert.Equal(t, "pl", locale)
	})

	t.Run("configured fallback applies when extraction fails", func(t *testing.T) {
		mw := middleware.LocaleWithConfig(middleware.LocaleConfig{
			I18n:            newEngine(t),
			FallbackLocale:  "ar",
			LocaleExtractor: func(r *http.Request) string { return "" },
		})

		locale, greeting, _ := serve(t, mw, nil)
		assert.Equal(t, "ar", locale)
		assert.Equal(t, "مرحبا", greeting)
	})

	t.Run("bound namespace follows the config", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithDefaultLanguage("en"),
			i18n.WithTranslations("en", "inventory", map[string]any{"hello": "Inventory"}),
		)
		require.NoError(t, err)

		mw := middleware.LocaleWithConfig(middleware.LocaleConfig{
			I18n:      i18nInstance,
			Namespace: "inventory",
		})

		_, greeting, _ := serve(t, mw, nil)
		assert.Equal(t, "Inventory", greeting)
	})

	t.Run("content-language header is written when enabled", func(t *testing.T) {
		mw := middleware.LocaleWithConfig(middleware.LocaleConfig{
			I18n:      newEngine(t),
			SetHeader: true,
		})

		_, _, rec := serve(t, mw, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "locale", Value: "pl"})
		})
		assert.Equal(t, "pl", rec.Header().Get("Content-Language"))
	})

	t.Run("logs the detection source at debug level", func(t *testing.T) {
		var buf bytes.Buffer
		mw := middleware.LocaleWithConfig(middleware.LocaleConfig{
			I18n:   newEngine(t),
			Logger: logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug)),
		})

		serve(t, mw, func(r *http.Request) {
			q := r.URL.Query()
			q.Set("lang", "ar")
			r.URL.RawQuery = q.Encode()
		})

		out := buf.String()
		assert.Contains(t, out, "locale=ar")
		assert.Contains(t, out, "source=query")
	})

	t.Run("uppercase tags are normalized", func(t *testing.T) {
		locale, greeting, _ := serve(t, middleware.Locale(newEngine(t)), func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "locale", Value: "AR"})
		})
		assert.Equal(t, "ar", locale)
		assert.Equal(t, "مرحبا", greeting)
	})
}
