// Package middleware provides HTTP middleware for threading localization
// through request handling. The locale middleware detects each visitor's
// locale, binds a translator to it, and stores both in the request context
// so handlers and templates resolve translations without knowing how the
// locale was chosen.
//
// # Architecture
//
// Middleware here follows a consistent pattern:
//   - Standard func(http.Handler) http.Handler signatures
//   - Configuration structs for customization
//   - Default constructors for common use cases
//   - WithConfig constructors for advanced configuration
//   - Context access through the i18n package's own helpers
//
// # Locale Middleware
//
// The Locale middleware resolves the request locale in priority order:
// the lang query parameter, the locale cookie, then the Accept-Language
// header matched against the engine's languages. A lang value of "auto"
// skips the cookie and defers to the header. Whatever wins, a translator
// bound to that locale lands in the request context:
//
//	import "github.com/glossadev/glossa/middleware"
//
//	// Basic usage
//	mux := http.NewServeMux()
//	handler := middleware.Locale(i18nInstance)(mux)
//
//	// Advanced configuration
//	handler := middleware.LocaleWithConfig(middleware.LocaleConfig{
//		I18n:           i18nInstance,
//		Namespace:      "inventory",
//		FallbackLocale: "en",
//		SetHeader:      true, // write Content-Language on responses
//		Skip: func(r *http.Request) bool {
//			return strings.HasPrefix(r.URL.Path, "/health")
//		},
//	})(mux)
//
//	// Read the translator in handlers
//	func listDrugs(w http.ResponseWriter, r *http.Request) {
//		t, _ := i18n.TranslatorFrom(r.Context())
//		title := t.T("drugs.title")
//		stock := t.Tn("plurals.drugsInStock", count)
//		// ...
//	}
//
// # Custom Detection
//
// Deployments with their own locale source (a tenant setting, a JWT
// claim) replace the extractor while keeping the context plumbing:
//
//	middleware.LocaleWithConfig(middleware.LocaleConfig{
//		I18n: i18nInstance,
//		LocaleExtractor: func(r *http.Request) string {
//			return tenantFromRequest(r).Locale
//		},
//	})
//
// # Observability
//
// With a logger configured, each resolution is recorded at debug level
// with the locale and its detection source (query, cookie, header,
// custom, or fallback):
//
//	middleware.LocaleWithConfig(middleware.LocaleConfig{
//		I18n:   i18nInstance,
//		Logger: log,
//	})
//
// Pairing the logger with i18n.LocaleExtractor stamps every downstream
// log record made with the request context:
//
//	log := logger.New(logger.WithContextExtractors(i18n.LocaleExtractor))
package middleware
