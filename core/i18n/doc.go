// Package i18n provides internationalization support with namespaced
// translations, CLDR plural forms, locale-aware formatting, and deterministic
// fallback resolution. Instances are immutable after construction, making
// them safe for concurrent use across request handlers and background jobs.
//
// # Features
//
//   - Namespaced translation keys with dot notation ("inventory:drugs.title")
//   - Plural forms per CLDR category (zero, one, two, few, many, other)
//   - Custom plural rules overriding CLDR data per language
//   - Placeholder interpolation with {{name}} syntax
//   - Deterministic fallback chain across languages and namespaces
//   - Missing-translation registry for catalog auditing
//   - Locale-aware date, number, percent, and currency formatting that
//     never returns an error
//   - Catalog loading from JSON, YAML, and TOML files
//   - Accept-Language header parsing
//
// # Basic Usage
//
// Create an instance with translations and resolve keys:
//
//	import "github.com/glossadev/glossa/core/i18n"
//
//	instance, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("en", "common", map[string]any{
//			"welcome": "Welcome, {{name}}!",
//			"items": map[string]any{
//				"zero":  "No items",
//				"one":   "One item",
//				"other": "{{count}} items",
//			},
//		}),
//	)
//	if err != nil {
//		return err
//	}
//
//	greeting := instance.T("en", "common", "welcome", i18n.M{"name": "Alice"})
//	// "Welcome, Alice!"
//
//	stock := instance.Tn("en", "common", "items", 3)
//	// "3 items"
//
// Translation values must be strings or plural-form groups. Any other leaf
// type fails construction with ErrInvalidTranslationValue, so malformed
// catalogs surface at startup rather than at render time.
//
// # Loading Catalogs from Files
//
// Catalogs live under one directory per locale, one file per namespace.
// The file stem names the namespace and the extension picks the format:
//
//	locales/
//	├── en/
//	│   ├── common.json
//	│   └── inventory.yaml
//	└── ar/
//	    ├── common.json
//	    └── inventory.yaml
//
//	opts, err := i18n.LoadDir("locales")
//	if err != nil {
//		return err
//	}
//	instance, err := i18n.New(append(opts, i18n.WithDefaultLanguage("en"))...)
//
// A file that fails to parse does not poison the rest of the catalog: the
// remaining files still load and the error reports every broken file.
// LoadFS accepts any fs.FS, including an embed.FS.
//
// # Namespaces and Key Prefixes
//
// Every key belongs to a namespace. The namespace argument of T names it
// explicitly, and a "namespace:" prefix on the key itself overrides the
// argument:
//
//	instance.T("en", "inventory", "drugs.title")
//	instance.T("en", "common", "inventory:drugs.title") // same lookup
//
// Keys that miss in their namespace are retried in the default namespace
// before resolution gives up.
//
// # Pluralization
//
// A subtree whose keys are all plural categories forms a plural group.
// Tn selects the variant for a count using the language's CLDR rule and
// injects the count as a placeholder:
//
//	i18n.WithTranslations("pl", "common", map[string]any{
//		"items": map[string]any{
//			"one":   "{{count}} element",
//			"few":   "{{count}} elementy",
//			"many":  "{{count}} elementów",
//			"other": "{{count}} elementu",
//		},
//	})
//
//	instance.Tn("pl", "common", "items", 2) // "2 elementy"
//	instance.Tn("pl", "common", "items", 5) // "5 elementów"
//
// A count of zero prefers an explicit "zero" variant when the group defines
// one, even in languages whose CLDR rule maps zero elsewhere. Within a
// language, a missing category degrades to a related one (two -> few ->
// many -> other) before the group gives up.
//
// Custom rules override CLDR data per language:
//
//	i18n.WithPluralRule("en", func(n int) string {
//		if n == 1 {
//			return i18n.PluralOne
//		}
//		return i18n.PluralOther
//	})
//
// PluralKey builds the conventional key for plural groups kept under a
// "plurals" subtree:
//
//	i18n.PluralKey("items")              // "common:plurals.items"
//	i18n.PluralKey("drugs", "inventory") // "inventory:plurals.drugs"
//
// # Fallback Resolution
//
// A lookup walks a deterministic chain: the requested language, its base
// language ("en-US" falls back to "en"), the configured fallback languages,
// and the default language. A key that misses everywhere is retried in the
// default namespace over the same chain. When the whole chain misses, T
// returns the key itself with placeholders still interpolated, and
// TWithDefault returns its default message instead:
//
//	instance.TWithDefault("de", "common", "welcome", "Hello, {{name}}!",
//		i18n.M{"name": "Alice"})
//	// "Hello, Alice!" when no German or English translation exists
//
// Identical inputs always produce identical output; resolution never
// depends on map iteration order or prior calls.
//
// # Missing-Translation Registry
//
// Every terminal miss is recorded with its key, namespace, locale, and
// timestamp. The registry backs catalog audits during development:
//
//	for _, m := range instance.MissingTranslations() {
//		fmt.Printf("%s missing in %s (%s)\n", m.Key, m.Locale, m.Namespace)
//	}
//	instance.ClearMissingTranslations()
//
// WithDevelopmentMode(true) additionally records every resolution that
// needed a fallback beyond the direct lookup. WithLogger emits a warning
// once per missing (language, namespace, key) triple, and
// WithMissingKeyHandler installs an arbitrary callback.
//
// # Bound Translators
//
// A Translator fixes the language and namespace so call sites stay short:
//
//	tr := i18n.NewTranslator(instance, "ar", "inventory")
//	tr.T("drugs.title")
//	tr.Tn("drugs.stockCount", 7)
//	tr.FormatCurrency(120.50, "EGP")
//
//	en := tr.WithLanguage("en") // derived translator, same namespace
//
// ActiveLocale adds an atomically switchable locale for applications that
// follow a user-selected language at runtime:
//
//	active := i18n.NewActiveLocale(instance, "ar-EG", "inventory")
//	active.T("drugs.title")
//	active.Set("en") // takes effect for all subsequent calls
//
// # Context Integration
//
// Handlers thread the locale and a request-scoped translator through the
// context instead of mutating shared state:
//
//	ctx := i18n.WithLocale(r.Context(), "ar")
//	ctx = i18n.WithTranslator(ctx, i18n.NewTranslator(instance, "ar", "common"))
//
//	if tr, ok := i18n.TranslatorFrom(ctx); ok {
//		title := tr.T("drugs.title")
//	}
//
// MsgKey defers resolution until render time, which lets templ components
// declare their keys as constants:
//
//	const Title = i18n.MsgKey("inventory:drugs.title")
//	// inside a templ component: @Title
//
// # Locale-Aware Formatting
//
// Formatting helpers render dates, numbers, percentages, and currency
// amounts for a locale. They never return an error: any internal failure
// falls back to a plain rendering of the input.
//
//	i18n.FormatNumber(1234567.891, "en") // "1,234,567.891"
//	i18n.FormatNumber(1234.5, "de", i18n.WithMinFractionDigits(2))
//	i18n.FormatPercent(0.156, "en") // "15.6%"
//	i18n.FormatCurrency(19.99, "en", "USD")
//	i18n.FormatCurrency(10, "en", "ZZZ") // "ZZZ 10.00"
//	i18n.FormatDate(time.Now(), "ru") // month name in Russian
//	i18n.FormatDate("2024-03-15", "en", i18n.WithDateStyle(i18n.DateShort))
//
// FormatDate accepts time.Time values, epoch milliseconds, and common
// string layouts; unparseable input is rendered verbatim. An empty currency
// code falls back to DefaultCurrency, and an unknown code renders as
// "CODE value" with two decimals.
//
// # Language Detection
//
// ParseAcceptLanguage matches an Accept-Language header against the
// available languages, honoring quality factors and base-language matches:
//
//	lang := i18n.ParseAcceptLanguage(r.Header.Get("Accept-Language"),
//		instance.Languages())
//
// The middleware package builds on this to negotiate the request locale
// from query parameters, cookies, and headers.
//
// # Environment Configuration
//
// Config carries construction settings in a form suitable for core/config:
//
//	var cfg i18n.Config
//	config.MustLoad(&cfg)
//
//	instance, err := i18n.FromConfig(cfg, log)
//
// # Thread Safety
//
// All configuration happens during construction. After New returns, every
// method is safe for concurrent use; the missing-translation registry and
// ActiveLocale manage their own synchronization.
package i18n
