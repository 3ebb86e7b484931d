package i18n

import "time"

// Translator provides a simplified translation interface with a fixed language
// and namespace context. It wraps an I18n instance and eliminates the need to
// specify language and namespace for each translation. Translators are
// immutable values; derive variants with WithLanguage and WithNamespace.
type Translator struct {
	i18n      *I18n
	language  string
	namespace string
}

// NewTranslator creates a new Translator with the specified language and
// namespace context. An empty language selects the instance default; an
// empty namespace selects the default namespace.
func NewTranslator(i18n *I18n, language, namespace string) *Translator {
	if i18n == nil {
		panic("localization service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	if namespace == "" {
		namespace = i18n.DefaultNamespaceName()
	}
	return &Translator{
		i18n:      i18n,
		language:  language,
		namespace: namespace,
	}
}

// T translates a key using the translator's language and namespace context.
// Placeholders in the translation are replaced with values from the provided maps.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, t.namespace, key, placeholders...)
}

// Tn translates a key with pluralization using the translator's language and
// namespace context. It automatically selects the appropriate plural form
// based on the count and language rules.
func (t *Translator) Tn(key string, n int, placeholders ...M) string {
	return t.i18n.Tn(t.language, t.namespace, key, n, placeholders...)
}

// TWithDefault translates a key, rendering the interpolated defaultMessage
// when the whole fallback chain misses.
func (t *Translator) TWithDefault(key, defaultMessage string, placeholders ...M) string {
	return t.i18n.TWithDefault(t.language, t.namespace, key, defaultMessage, placeholders...)
}

// TranslateMessage resolves a translation key with interpolation values.
// The signature matches the translation callbacks used by validation error
// localization.
func (t *Translator) TranslateMessage(key string, values map[string]any) string {
	return t.i18n.T(t.language, t.namespace, key, M(values))
}

// TranslateError resolves a translation key for a validation failure,
// keeping the supplied default message as the terminal fallback. The
// signature matches schema.TranslateFunc.
func (t *Translator) TranslateError(key, defaultMessage string, values map[string]any) string {
	return t.i18n.TWithDefault(t.language, t.namespace, key, defaultMessage, M(values))
}

// WithLanguage returns a copy of the translator bound to another language.
func (t *Translator) WithLanguage(language string) *Translator {
	return NewTranslator(t.i18n, language, t.namespace)
}

// WithNamespace returns a copy of the translator bound to another namespace.
func (t *Translator) WithNamespace(namespace string) *Translator {
	return NewTranslator(t.i18n, t.language, namespace)
}

// Language returns the current language context of the translator.
func (t *Translator) Language() string {
	return t.language
}

// Namespace returns the current namespace context of the translator.
func (t *Translator) Namespace() string {
	return t.namespace
}

// PluralKey builds the fully-qualified plural lookup key for a base key in
// the translator's namespace.
func (t *Translator) PluralKey(base string) string {
	return PluralKey(base, t.namespace)
}

// FormatNumber formats a number with locale-specific separators.
// For example, in English: 1234.5 -> "1,234.5", in German: "1.234,5"
func (t *Translator) FormatNumber(n float64, opts ...NumberOption) string {
	return FormatNumber(n, t.language, opts...)
}

// FormatCurrency formats a currency amount with locale-specific formatting.
// An empty code selects the default currency.
func (t *Translator) FormatCurrency(amount float64, code string) string {
	return FormatCurrency(amount, t.language, code)
}

// FormatPercent formats a percentage with locale-specific formatting.
// The input should be a decimal (0.5 for 50%).
func (t *Translator) FormatPercent(n float64, opts ...NumberOption) string {
	return FormatPercent(n, t.language, opts...)
}

// FormatDate formats a date with locale-specific formatting, localizing
// month and weekday names where supported.
func (t *Translator) FormatDate(date time.Time, opts ...DateOption) string {
	return FormatDate(date, t.language, opts...)
}

// FormatTime formats a time of day with locale-specific formatting.
func (t *Translator) FormatTime(tm time.Time) string {
	return FormatTime(tm, t.language)
}

// FormatDateTime formats a date together with the time of day.
func (t *Translator) FormatDateTime(datetime time.Time) string {
	return FormatDateTime(datetime, t.language)
}
