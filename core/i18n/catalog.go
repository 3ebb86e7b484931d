package i18n

import (
	"fmt"
	"sort"
)

// entry is a resolved catalog leaf: either a plain string template or a
// plural-form group keyed by plural category. A non-nil variants map marks
// the plural case.
type entry struct {
	text     string
	variants map[string]string
}

// catalog holds the flattened, validated translation resources.
// It is populated during construction and read-only afterwards.
type catalog struct {
	// Key format: "lang:namespace:key.path"
	entries map[string]entry

	// Loaded locales and (locale, namespace) pairs, used for language-list
	// derivation and namespace checks.
	locales map[string]struct{}
	spaces  map[string]struct{}
}

func newCatalog() *catalog {
	return &catalog{
		entries: make(map[string]entry),
		locales: make(map[string]struct{}),
		spaces:  make(map[string]struct{}),
	}
}

// add flattens and validates a nested translation tree for one
// (language, namespace) pair. Later calls for the same pair override
// earlier keys. Non-string, non-map leaves are rejected.
func (c *catalog) add(lang, namespace string, tree map[string]any) error {
	flattened := make(map[string]entry)
	if err := flattenTree(flattened, "", tree); err != nil {
		return err
	}

	for key, e := range flattened {
		c.entries[buildKey(lang, namespace, key)] = e
	}
	c.locales[lang] = struct{}{}
	c.spaces[lang+":"+namespace] = struct{}{}
	return nil
}

func (c *catalog) lookup(lang, namespace, path string) (entry, bool) {
	e, ok := c.entries[buildKey(lang, namespace, path)]
	return e, ok
}

// hasNamespace reports whether any keys were loaded for the pair.
func (c *catalog) hasNamespace(lang, namespace string) bool {
	_, ok := c.spaces[lang+":"+namespace]
	return ok
}

// localeList returns all loaded locales sorted alphabetically.
func (c *catalog) localeList() []string {
	list := make([]string, 0, len(c.locales))
	for lang := range c.locales {
		list = append(list, lang)
	}
	sort.Strings(list)
	return list
}

// buildKey creates a composite key for the catalog map.
func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

// flattenTree recursively flattens a nested map into dot-notation entries.
// A nested map whose keys are all plural categories with string values is
// stored as a plural group at its path; its variants are additionally
// indexed as plain entries so they stay directly addressable
// (e.g. "plurals.item.other").
func flattenTree(dst map[string]entry, prefix string, tree map[string]any) error {
	for key, value := range tree {
		if key == "" {
			return fmt.Errorf("%w: empty key under %q", ErrInvalidTranslationValue, prefix)
		}
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		var sub map[string]any
		switch v := value.(type) {
		case string:
			dst[full] = entry{text: v}
			continue
		case map[string]any:
			sub = v
		case map[string]string:
			sub = stringMapToAny(v)
		default:
			return fmt.Errorf("%w: unsupported value at %q (%T)", ErrInvalidTranslationValue, full, value)
		}

		if variants, ok := pluralVariants(sub); ok {
			dst[full] = entry{variants: variants}
			for category, text := range variants {
				dst[full+"."+category] = entry{text: text}
			}
			continue
		}
		if err := flattenTree(dst, full, sub); err != nil {
			return err
		}
	}
	return nil
}

// pluralVariants reports whether m is a pure plural-form group: non-empty,
// every key a plural category, every value a string. Groups are not required
// to carry "other"; resolution degrades through the category chain instead.
func pluralVariants(m map[string]any) (map[string]string, bool) {
	if len(m) == 0 {
		return nil, false
	}
	variants := make(map[string]string, len(m))
	for k, v := range m {
		if !isPluralCategory(k) {
			return nil, false
		}
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		variants[k] = s
	}
	return variants, true
}

func stringMapToAny(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// validateTree checks a translation tree without loading it. Used by the
// loader to isolate malformed namespace files before options are applied.
func validateTree(tree map[string]any) error {
	return flattenTree(make(map[string]entry), "", tree)
}
