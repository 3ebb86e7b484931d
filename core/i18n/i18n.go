package i18n

import (
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/glossadev/glossa/core/logger"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// DefaultNamespace is the namespace assumed for keys without an explicit
// "namespace:" prefix when no other namespace is given.
const DefaultNamespace = "common"

// M is a convenience type for placeholder maps used in translations.
// It maps placeholder names to their values.
type M map[string]any

// I18n resolves namespaced translation keys against a validated resource
// catalog. It is immutable after creation, making it safe for concurrent use;
// the only internal mutation is the append-only missing-translation registry.
//
// Lookup walks a deterministic chain: the requested language, its base
// language (en-US falls back to en), the configured fallback languages, the
// default language, and finally the same chain under the default namespace.
// A key that survives the whole chain is returned literally, with
// interpolation still applied, and recorded in the registry.
type I18n struct {
	catalog *catalog

	// Custom plural rules per language, overriding CLDR data.
	pluralRules map[string]PluralRule

	// Default/fallback language and namespace.
	defaultLang string
	defaultNS   string

	// Languages tried between the requested language and the default.
	fallbackLangs []string

	// Pre-computed list of available languages.
	languages []string

	// Development mode records fallback resolutions, not just terminal misses.
	development bool

	// Optional handler called when a translation key is not found.
	missingKeyHandler func(lang, namespace, key string)

	// Optional logger for missing-translation warnings.
	logger *slog.Logger

	missing *registry
	warned  sync.Map
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
// All configuration happens during construction, making the instance
// immutable and thread-safe from creation.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		catalog:     newCatalog(),
		pluralRules: make(map[string]PluralRule),
		defaultLang: DefaultLang,
		defaultNS:   DefaultNamespace,
		missing:     newRegistry(),
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}
	if i.defaultNS == "" {
		return nil, ErrEmptyNamespace
	}

	i.languages = i.buildLanguagesList()

	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithDefaultNamespace sets the namespace assumed for unprefixed keys.
func WithDefaultNamespace(namespace string) Option {
	return func(i *I18n) error {
		if namespace == "" {
			return ErrEmptyNamespace
		}
		i.defaultNS = namespace
		return nil
	}
}

// WithFallbackLanguages sets the languages tried, in order, after the
// requested language and before the default language.
func WithFallbackLanguages(langs ...string) Option {
	return func(i *I18n) error {
		for _, lang := range langs {
			if lang == "" {
				return ErrEmptyLanguage
			}
		}
		i.fallbackLangs = append(i.fallbackLangs, langs...)
		return nil
	}
}

// WithPluralRule registers a custom plural rule for a language, overriding
// the built-in CLDR rules.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		i.pluralRules[lang] = rule
		return nil
	}
}

// WithLanguages sets the supported languages for the I18n instance.
// The default language will always be included and placed first in the list.
// Other languages will be sorted alphabetically. When not used, the list is
// derived from the loaded catalog.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		if len(langs) == 0 {
			return nil
		}

		langSet := make(map[string]bool)
		for _, lang := range langs {
			if lang != "" {
				langSet[lang] = true
			}
		}

		i.languages = make([]string, 0, len(langSet)+1)
		i.languages = append(i.languages, i.defaultLang)
		delete(langSet, i.defaultLang)

		if len(langSet) > 0 {
			otherLangs := make([]string, 0, len(langSet))
			for lang := range langSet {
				otherLangs = append(otherLangs, lang)
			}
			sort.Strings(otherLangs)
			i.languages = append(i.languages, otherLangs...)
		}

		return nil
	}
}

// WithMissingKeyHandler sets a handler function that will be called when a
// translation key is not found in any language in the fallback chain.
// The handler receives the requested language, the resolved namespace, and the key.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithDevelopmentMode controls whether the registry records every resolution
// that needed a fallback beyond the direct lookup, in addition to terminal
// misses. Off by default.
func WithDevelopmentMode(enabled bool) Option {
	return func(i *I18n) error {
		i.development = enabled
		return nil
	}
}

// WithLogger sets a logger for missing-translation warnings. Each unique
// (language, namespace, key) triple is warned about once per instance.
func WithLogger(log *slog.Logger) Option {
	return func(i *I18n) error {
		i.logger = log
		return nil
	}
}

// WithTranslations loads translations for a specific language and namespace.
// The translations map can be nested; it is flattened internally for
// efficient lookups and validated so that every leaf is either a string
// template or a plural-form group.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		if len(translations) == 0 {
			return nil // Empty translations are allowed
		}
		return i.catalog.add(lang, namespace, translations)
	}
}

// T retrieves a translation for the given language, namespace, and key.
// The key may carry an explicit "namespace:" prefix, which overrides the
// namespace argument. Placeholders in the resolved template are replaced
// with values from the provided maps. If the key resolves to a plural-form
// group, the variant is chosen from the "count" placeholder.
// Returns the key itself (still interpolated) if no translation exists.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	return i.resolve(lang, namespace, key, nil, "", placeholders)
}

// Tn retrieves a pluralized translation for the given count.
// It selects the plural category via the language's rule, falls back through
// related categories within the language before trying other languages, and
// injects the count as a placeholder.
func (i *I18n) Tn(lang, namespace, key string, n int, placeholders ...M) string {
	return i.resolve(lang, namespace, key, &n, "", placeholders)
}

// TWithDefault behaves like T but renders the interpolated defaultMessage
// instead of the key literal when the whole fallback chain misses. The miss
// is still recorded.
func (i *I18n) TWithDefault(lang, namespace, key, defaultMessage string, placeholders ...M) string {
	return i.resolve(lang, namespace, key, nil, defaultMessage, placeholders)
}

// Languages returns all configured languages in the I18n instance.
// The default language is always returned first, followed by other languages
// sorted alphabetically. This is an O(1) operation as the list is
// pre-computed during construction.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the default language code configured for the instance.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// DefaultNamespaceName returns the namespace assumed for unprefixed keys.
func (i *I18n) DefaultNamespaceName() string {
	return i.defaultNS
}

// HasNamespace reports whether any translations were loaded for the
// (language, namespace) pair.
func (i *I18n) HasNamespace(lang, namespace string) bool {
	return i.catalog.hasNamespace(lang, namespace)
}

// resolve runs the full lookup chain shared by T, Tn, and TWithDefault.
func (i *I18n) resolve(lang, namespace, key string, count *int, defaultMessage string, placeholders []M) string {
	params := mergeParams(count, placeholders)
	if namespace == "" {
		namespace = i.defaultNS
	}
	lookupNS, path := splitKey(key, namespace)

	chain := i.languageChain(lang)
	halted := false
	for idx, loc := range chain {
		text, ok, halt := i.lookupTemplate(loc, lookupNS, path, count, params)
		if ok {
			if i.development && idx > 0 {
				i.missing.add(key, lookupNS, lang)
			}
			return ReplacePlaceholders(text, params)
		}
		if halt {
			// An entry exists here but defines no usable plural variant.
			// Language fallback applies to absent entries only, so the
			// resolution degrades to the key literal instead.
			halted = true
			break
		}
	}

	if !halted && lookupNS != i.defaultNS {
		for _, loc := range chain {
			text, ok, halt := i.lookupTemplate(loc, i.defaultNS, path, count, params)
			if ok {
				if i.development {
					i.missing.add(key, lookupNS, lang)
				}
				return ReplacePlaceholders(text, params)
			}
			if halt {
				break
			}
		}
	}

	i.missing.add(key, lookupNS, lang)
	i.warnMissing(lang, lookupNS, key)
	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, lookupNS, key)
	}

	if defaultMessage != "" {
		return ReplacePlaceholders(defaultMessage, params)
	}
	return ReplacePlaceholders(key, params)
}

// lookupTemplate resolves a single (language, namespace, path) probe,
// including plural-variant selection within the language. The halt result
// marks an entry that exists but has no usable variant, which stops the
// language chain.
func (i *I18n) lookupTemplate(lang, namespace, path string, count *int, params M) (text string, ok, halt bool) {
	if e, found := i.catalog.lookup(lang, namespace, path); found {
		if e.variants == nil {
			return e.text, true, false
		}
		n, hasCount := resolveCount(count, params)
		if !hasCount {
			// A plural group addressed without a count renders its
			// catch-all form when present.
			if text, ok := e.variants[PluralOther]; ok {
				return text, true, false
			}
			return "", false, true
		}
		for _, form := range i.categoryProbeOrder(lang, n) {
			if text, ok := e.variants[form]; ok {
				return text, true, false
			}
		}
		return "", false, true
	}

	// Plural forms stored as sibling keys (mixed subtrees) remain reachable
	// through direct "path.category" probes.
	if n, hasCount := resolveCount(count, params); hasCount {
		for _, form := range i.categoryProbeOrder(lang, n) {
			if e, found := i.catalog.lookup(lang, namespace, path+"."+form); found && e.variants == nil {
				return e.text, true, false
			}
		}
	}

	return "", false, false
}

// categoryProbeOrder returns the ordered plural categories to try for a
// count: an explicit "zero" form first when the count is zero, then the
// language's category, then its within-language fallbacks.
func (i *I18n) categoryProbeOrder(lang string, n int) []string {
	category := i.pluralCategory(lang, n)

	order := make([]string, 0, 5)
	if n == 0 && category != PluralZero {
		order = append(order, PluralZero)
	}
	order = append(order, category)
	for _, form := range pluralFallbackForms(category) {
		if form != category {
			order = append(order, form)
		}
	}
	return order
}

// pluralCategory resolves the plural category for a language and count,
// preferring a registered custom rule over CLDR data.
func (i *I18n) pluralCategory(lang string, n int) string {
	if rule, ok := i.pluralRules[lang]; ok {
		return rule(n)
	}
	if base := baseLanguage(lang); base != lang {
		if rule, ok := i.pluralRules[base]; ok {
			return rule(n)
		}
	}
	return cldrCategory(lang, n)
}

// languageChain builds the ordered, deduplicated list of languages to try.
func (i *I18n) languageChain(lang string) []string {
	chain := make([]string, 0, len(i.fallbackLangs)+3)
	add := func(l string) {
		if l == "" {
			return
		}
		for _, existing := range chain {
			if existing == l {
				return
			}
		}
		chain = append(chain, l)
	}

	add(lang)
	add(baseLanguage(lang))
	for _, l := range i.fallbackLangs {
		add(l)
	}
	add(i.defaultLang)
	return chain
}

// buildLanguagesList builds the pre-computed list of languages.
// Called once during construction after all options are applied.
// If no languages were explicitly configured, the list is derived from the
// loaded catalog with the default language first.
func (i *I18n) buildLanguagesList() []string {
	if len(i.languages) > 0 {
		return i.languages
	}

	list := []string{i.defaultLang}
	for _, lang := range i.catalog.localeList() {
		if lang != i.defaultLang {
			list = append(list, lang)
		}
	}
	return list
}

func (i *I18n) warnMissing(lang, namespace, key string) {
	if i.logger == nil {
		return
	}
	id := buildKey(lang, namespace, key)
	if _, seen := i.warned.LoadOrStore(id, struct{}{}); seen {
		return
	}
	i.logger.Warn("translation missing",
		logger.Component("i18n"),
		logger.Locale(lang),
		logger.Namespace(namespace),
		logger.TranslationKey(key),
	)
}

// splitKey separates an explicit "namespace:key.path" prefix from a key.
// Keys without a usable prefix belong to the fallback namespace.
func splitKey(key, fallbackNS string) (namespace, path string) {
	if idx := strings.IndexByte(key, ':'); idx > 0 && idx < len(key)-1 {
		return key[:idx], key[idx+1:]
	}
	return fallbackNS, key
}

// baseLanguage strips the region from a language tag (e.g., "en-US" -> "en").
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	if i := strings.IndexByte(lang, '_'); i > 0 {
		return lang[:i]
	}
	return lang
}

// mergeParams merges the count and all placeholder maps into one map.
// Later maps override earlier values, so explicit placeholders can override
// the injected count.
func mergeParams(count *int, placeholders []M) M {
	if count == nil && len(placeholders) == 0 {
		return nil
	}
	merged := make(M)
	if count != nil {
		merged["count"] = *count
	}
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return merged
}

// resolveCount determines the count used for plural-category selection:
// the explicit Tn argument when present, otherwise a numeric "count"
// placeholder.
func resolveCount(count *int, params M) (int, bool) {
	if count != nil {
		return *count, true
	}
	v, ok := params["count"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
