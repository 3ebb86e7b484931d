package i18n_test

import (
	"testing"

	"github.com/glossadev/glossa/core/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluralKey(t *testing.T) {
	t.Run("defaults to the common namespace", func(t *testing.T) {
		assert.Equal(t, "common:plurals.items", i18n.PluralKey("items"))
	})

	t.Run("uses the provided namespace", func(t *testing.T) {
		assert.Equal(t, "inventory:plurals.drugs", i18n.PluralKey("drugs", "inventory"))
	})

	t.Run("empty namespace falls back to default", func(t *testing.T) {
		assert.Equal(t, "common:plurals.items", i18n.PluralKey("items", ""))
	})

	t.Run("is deterministic", func(t *testing.T) {
		first := i18n.PluralKey("expiringSoon", "inventory")
		for i := 0; i < 100; i++ {
			assert.Equal(t, first, i18n.PluralKey("expiringSoon", "inventory"))
		}
	})

	t.Run("resolves against a plurals subtree", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithDefaultLanguage("en"),
			i18n.WithTranslations("en", "inventory", map[string]any{
				"plurals": map[string]any{
					"drugs": map[string]any{
						"one":   "{{count}} drug",
						"other": "{{count}} drugs",
					},
				},
			}),
		)
		require.NoError(t, err)

		key := i18n.PluralKey("drugs", "inventory")
		assert.Equal(t, "1 drug", i18nInstance.Tn("en", "common", key, 1))
		assert.Equal(t, "8 drugs", i18nInstance.Tn("en", "common", key, 8))
	})

	t.Run("count placeholder selects the variant through T", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithDefaultLanguage("en"),
			i18n.WithTranslations("en", "common", map[string]any{
				"plurals": map[string]any{
					"order": map[string]any{
						"one":   "{{count}} order",
						"other": "{{count}} orders",
					},
				},
			}),
		)
		require.NoError(t, err)

		one := i18nInstance.T("en", "common", i18n.PluralKey("order"), i18n.M{"count": 1})
		assert.Equal(t, "1 order", one)
		assert.NotContains(t, one, "orders")

		for _, n := range []int{0, 2, 5, 15, 100} {
			got := i18nInstance.T("en", "common", i18n.PluralKey("order"), i18n.M{"count": n})
			assert.Contains(t, got, "orders", "count %d", n)
		}
	})

	t.Run("covers every Arabic category", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithDefaultLanguage("en"),
			i18n.WithTranslations("ar", "common", map[string]any{
				"plurals": map[string]any{
					"item": map[string]any{
						"zero":  "لا عناصر",
						"one":   "عنصر واحد",
						"two":   "عنصران",
						"few":   "{{count}} عناصر",
						"many":  "{{count}} عنصرًا",
						"other": "{{count}} عنصر",
					},
				},
			}),
		)
		require.NoError(t, err)

		key := i18n.PluralKey("item")
		for _, n := range []int{0, 1, 2, 5, 15, 100} {
			got := i18nInstance.Tn("ar", "common", key, n)
			assert.NotEmpty(t, got, "count %d", n)
			assert.NotEqual(t, key, got, "count %d", n)
		}
	})
}

func TestPluralForms(t *testing.T) {
	// Each case exercises one language's CLDR cardinal rule end to end,
	// through catalog groups that define every category the rule can yield.
	newInstance := func(t *testing.T, lang string, group map[string]any) *i18n.I18n {
		t.Helper()
		i18nInstance, err := i18n.New(
			i18n.WithDefaultLanguage(lang),
			i18n.WithTranslations(lang, "general", map[string]any{
				"items": group,
			}),
		)
		require.NoError(t, err)
		return i18nInstance
	}

	t.Run("english", func(t *testing.T) {
		i18nInstance := newInstance(t, "en", map[string]any{
			"one":   "one",
			"other": "other",
		})

		forms := map[int]string{
			0:   "other",
			1:   "one",
			2:   "other",
			11:  "other",
			100: "other",
		}
		for n, want := range forms {
			assert.Equal(t, want, i18nInstance.Tn("en", "general", "items", n), "count %d", n)
		}
	})

	t.Run("russian", func(t *testing.T) {
		i18nInstance := newInstance(t, "ru", map[string]any{
			"one":   "one",
			"few":   "few",
			"many":  "many",
			"other": "other",
		})

		forms := map[int]string{
			0:   "many",
			1:   "one",
			2:   "few",
			4:   "few",
			5:   "many",
			11:  "many",
			21:  "one",
			22:  "few",
			25:  "many",
			100: "many",
			101: "one",
		}
		for n, want := range forms {
			assert.Equal(t, want, i18nInstance.Tn("ru", "general", "items", n), "count %d", n)
		}
	})

	t.Run("arabic", func(t *testing.T) {
		i18nInstance := newInstance(t, "ar", map[string]any{
			"zero":  "zero",
			"one":   "one",
			"two":   "two",
			"few":   "few",
			"many":  "many",
			"other": "other",
		})

		forms := map[int]string{
			0:   "zero",
			1:   "one",
			2:   "two",
			3:   "few",
			10:  "few",
			11:  "many",
			99:  "many",
			100: "other",
			103: "few",
		}
		for n, want := range forms {
			assert.Equal(t, want, i18nInstance.Tn("ar", "general", "items", n), "count %d", n)
		}
	})

	t.Run("welsh uses two", func(t *testing.T) {
		i18nInstance := newInstance(t, "cy", map[string]any{
			"zero":  "zero",
			"one":   "one",
			"two":   "two",
			"few":   "few",
			"many":  "many",
			"other": "other",
		})

		forms := map[int]string{
			0: "zero",
			1: "one",
			2: "two",
			3: "few",
			6: "many",
			4: "other",
		}
		for n, want := range forms {
			assert.Equal(t, want, i18nInstance.Tn("cy", "general", "items", n), "count %d", n)
		}
	})

	t.Run("unknown language uses other", func(t *testing.T) {
		i18nInstance := newInstance(t, "zz", map[string]any{
			"one":   "one",
			"other": "other",
		})

		assert.Equal(t, "other", i18nInstance.Tn("zz", "general", "items", 1))
		assert.Equal(t, "other", i18nInstance.Tn("zz", "general", "items", 5))
	})
}
