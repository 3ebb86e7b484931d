package i18n

import (
	"sync/atomic"
	"time"
)

// ActiveLocale binds an I18n instance to a switchable current locale.
// The locale pointer is swapped atomically, so concurrent readers observe
// either the old or the new locale for a given call, never a torn state.
// Switching affects subsequent calls only and does not clear the
// missing-translation registry.
//
// Instances are independent: two ActiveLocale values over the same engine
// can hold different locales, which keeps tests and request scopes isolated
// instead of sharing a process-wide mutable setting.
type ActiveLocale struct {
	i18n      *I18n
	namespace string
	locale    atomic.Pointer[string]
}

// NewActiveLocale creates a switchable locale handle over an I18n instance.
// An empty locale selects the instance default; an empty namespace selects
// the default namespace.
func NewActiveLocale(i18n *I18n, locale, namespace string) *ActiveLocale {
	if i18n == nil {
		panic("localization service is not provided")
	}
	if locale == "" {
		locale = i18n.DefaultLanguage()
	}
	if namespace == "" {
		namespace = i18n.DefaultNamespaceName()
	}
	a := &ActiveLocale{i18n: i18n, namespace: namespace}
	a.locale.Store(&locale)
	return a
}

// Set switches the active locale. An empty locale resets to the instance
// default. The swap is a single atomic assignment.
func (a *ActiveLocale) Set(locale string) {
	if locale == "" {
		locale = a.i18n.DefaultLanguage()
	}
	a.locale.Store(&locale)
}

// Current returns the active locale.
func (a *ActiveLocale) Current() string {
	return *a.locale.Load()
}

// Translator returns an immutable translator snapshot bound to the locale
// active at call time.
func (a *ActiveLocale) Translator() *Translator {
	return NewTranslator(a.i18n, a.Current(), a.namespace)
}

// T translates a key at the active locale.
func (a *ActiveLocale) T(key string, placeholders ...M) string {
	return a.i18n.T(a.Current(), a.namespace, key, placeholders...)
}

// Tn translates a pluralized key at the active locale.
func (a *ActiveLocale) Tn(key string, n int, placeholders ...M) string {
	return a.i18n.Tn(a.Current(), a.namespace, key, n, placeholders...)
}

// TWithDefault translates a key at the active locale, rendering the
// interpolated defaultMessage when the whole fallback chain misses.
func (a *ActiveLocale) TWithDefault(key, defaultMessage string, placeholders ...M) string {
	return a.i18n.TWithDefault(a.Current(), a.namespace, key, defaultMessage, placeholders...)
}

// TranslateError resolves a validation failure key at the active locale.
// The signature matches schema.TranslateFunc, so re-running a validation
// after Set produces messages in the new locale.
func (a *ActiveLocale) TranslateError(key, defaultMessage string, values map[string]any) string {
	return a.i18n.TWithDefault(a.Current(), a.namespace, key, defaultMessage, M(values))
}

// FormatNumber formats a number at the active locale.
func (a *ActiveLocale) FormatNumber(n float64, opts ...NumberOption) string {
	return FormatNumber(n, a.Current(), opts...)
}

// FormatCurrency formats a monetary amount at the active locale.
func (a *ActiveLocale) FormatCurrency(amount float64, code string) string {
	return FormatCurrency(amount, a.Current(), code)
}

// FormatPercent formats a percentage at the active locale.
func (a *ActiveLocale) FormatPercent(n float64, opts ...NumberOption) string {
	return FormatPercent(n, a.Current(), opts...)
}

// FormatDate formats a date at the active locale.
func (a *ActiveLocale) FormatDate(date time.Time, opts ...DateOption) string {
	return FormatDate(date, a.Current(), opts...)
}
