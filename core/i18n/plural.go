package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralRule determines which plural category to use for a given count.
// Categories follow Unicode CLDR (Common Locale Data Repository) naming.
// Custom rules registered via WithPluralRule take precedence over the
// built-in CLDR data for their language.
type PluralRule func(n int) string

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"  // Used for 0 in some languages
	PluralOne   = "one"   // Singular form
	PluralTwo   = "two"   // Dual form (used in Arabic, Hebrew, etc.)
	PluralFew   = "few"   // Paucal form (used in Slavic languages, etc.)
	PluralMany  = "many"  // Used for larger quantities in some languages
	PluralOther = "other" // Default/catch-all form
)

// pluralCategories is the closed set of category names recognized in
// plural-form groups.
var pluralCategories = map[string]struct{}{
	PluralZero:  {},
	PluralOne:   {},
	PluralTwo:   {},
	PluralFew:   {},
	PluralMany:  {},
	PluralOther: {},
}

func isPluralCategory(s string) bool {
	_, ok := pluralCategories[s]
	return ok
}

// cldrCategory selects the plural category for an integer count using the
// CLDR cardinal rules for the language. Negative counts are classified by
// absolute value, per CLDR.
func cldrCategory(lang string, n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch plural.Cardinal.MatchPlural(language.Make(lang), abs, 0, 0, 0, 0) {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// pluralFallbackForms returns the within-language fallback hierarchy for a
// plural category, tried in order when a group does not define the exact
// category. "other" is the terminal form and has no fallback.
func pluralFallbackForms(form string) []string {
	switch form {
	case PluralZero:
		return []string{PluralOther}
	case PluralOne:
		return []string{PluralOther}
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	case PluralMany:
		return []string{PluralOther}
	case PluralOther:
		return nil
	default:
		return []string{PluralOther}
	}
}
