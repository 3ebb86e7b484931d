package i18n_test

import (
	"sync"
	"testing"
	"time"

	"github.com/glossadev/glossa/core/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingTranslations(t *testing.T) {
	setup := func(extra ...i18n.Option) *i18n.I18n {
		opts := append([]i18n.Option{
			i18n.WithDefaultLanguage("en"),
			i18n.WithTranslations("en", "general", map[string]any{
				"hello": "Hello",
			}),
		}, extra...)
		i18nInstance, err := i18n.New(opts...)
		require.NoError(t, err)
		return i18nInstance
	}

	t.Run("records terminal misses in order", func(t *testing.T) {
		i18nInstance := setup()

		i18nInstance.T("en", "general", "first.missing")
		i18nInstance.T("de", "general", "second.missing")

		missing := i18nInstance.MissingTranslations()
		require.Len(t, missing, 2)

		assert.Equal(t, "first.missing", missing[0].Key)
		assert.Equal(t, "general", missing[0].Namespace)
		assert.Equal(t, "en", missing[0].Locale)
		assert.WithinDuration(t, time.Now(), missing[0].Time, time.Minute)

		assert.Equal(t, "second.missing", missing[1].Key)
		assert.Equal(t, "de", missing[1].Locale)
	})

	t.Run("records the namespace resolved from a key prefix", func(t *testing.T) {
		i18nInstance := setup()

		i18nInstance.T("en", "general", "other:nope")

		missing := i18nInstance.MissingTranslations()
		require.Len(t, missing, 1)
		assert.Equal(t, "other", missing[0].Namespace)
	})

	t.Run("successful lookups are not recorded", func(t *testing.T) {
		i18nInstance := setup()

		i18nInstance.T("en", "general", "hello")
		assert.Empty(t, i18nInstance.MissingTranslations())
	})

	t.Run("fallback hits are not recorded by default", func(t *testing.T) {
		i18nInstance := setup()

		// Resolves via the default language.
		assert.Equal(t, "Hello", i18nInstance.T("de", "general", "hello"))
		assert.Empty(t, i18nInstance.MissingTranslations())
	})

	t.Run("development mode records fallback resolutions", func(t *testing.T) {
		i18nInstance := setup(i18n.WithDevelopmentMode(true))

		assert.Equal(t, "Hello", i18nInstance.T("de", "general", "hello"))

		missing := i18nInstance.MissingTranslations()
		require.Len(t, missing, 1)
		assert.Equal(t, "hello", missing[0].Key)
		assert.Equal(t, "de", missing[0].Locale)
	})

	t.Run("clear empties the registry", func(t *testing.T) {
		i18nInstance := setup()

		i18nInstance.T("en", "general", "nope")
		require.NotEmpty(t, i18nInstance.MissingTranslations())

		i18nInstance.ClearMissingTranslations()
		assert.Empty(t, i18nInstance.MissingTranslations())
	})

	t.Run("snapshots are unaffected by later clears", func(t *testing.T) {
		i18nInstance := setup()

		i18nInstance.T("en", "general", "nope")
		snapshot := i18nInstance.MissingTranslations()
		require.Len(t, snapshot, 1)

		i18nInstance.ClearMissingTranslations()
		assert.Len(t, snapshot, 1)
	})

	t.Run("concurrent misses are all recorded", func(t *testing.T) {
		i18nInstance := setup()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				i18nInstance.T("en", "general", "concurrent.missing")
			}()
		}
		wg.Wait()

		assert.Len(t, i18nInstance.MissingTranslations(), 50)
	})
}
