package i18n

import "errors"

var (
	// ErrEmptyLanguage is returned when an option receives an empty language code.
	ErrEmptyLanguage = errors.New("i18n: language cannot be empty")

	// ErrEmptyNamespace is returned when an option receives an empty namespace.
	ErrEmptyNamespace = errors.New("i18n: namespace cannot be empty")

	// ErrNilPluralRule is returned when a nil plural rule is registered.
	ErrNilPluralRule = errors.New("i18n: plural rule cannot be nil")

	// ErrInvalidTranslationValue is returned when a catalog tree contains a leaf
	// that is neither a string template nor a nested map. Catalogs are validated
	// at construction so malformed resources fail fast instead of producing
	// confusing runtime fallbacks.
	ErrInvalidTranslationValue = errors.New("i18n: translation values must be strings or nested maps")

	// ErrNoCatalogFiles is returned by the loader when the catalog root exists
	// but contains no loadable locale directories.
	ErrNoCatalogFiles = errors.New("i18n: no catalog files found")
)
