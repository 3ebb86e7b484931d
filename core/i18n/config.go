package i18n

import (
	"log/slog"

	"github.com/glossadev/glossa/core/logger"
)

// Config describes engine construction in a form suitable for environment
// loading (see core/config). The engine itself never reads the environment;
// applications decide where the values come from.
type Config struct {
	DefaultLocale    string   `env:"I18N_DEFAULT_LOCALE" envDefault:"en"`
	DefaultNamespace string   `env:"I18N_DEFAULT_NAMESPACE" envDefault:"common"`
	FallbackLocales  []string `env:"I18N_FALLBACK_LOCALES" envSeparator:","`
	CatalogDir       string   `env:"I18N_CATALOG_DIR"`
	Development      bool     `env:"I18N_DEV_MODE" envDefault:"false"`
}

// FromConfig builds an I18n instance from a Config, loading catalog files
// from CatalogDir when set. Extra options are applied after the
// config-derived ones, so they win on conflict. Catalog files that fail to
// load are reported on the logger when one is supplied; the remaining
// namespaces still load.
func FromConfig(cfg Config, log *slog.Logger, extra ...Option) (*I18n, error) {
	opts := make([]Option, 0, len(extra)+5)

	if cfg.DefaultLocale != "" {
		opts = append(opts, WithDefaultLanguage(cfg.DefaultLocale))
	}
	if cfg.DefaultNamespace != "" {
		opts = append(opts, WithDefaultNamespace(cfg.DefaultNamespace))
	}
	if len(cfg.FallbackLocales) > 0 {
		opts = append(opts, WithFallbackLanguages(cfg.FallbackLocales...))
	}
	opts = append(opts, WithDevelopmentMode(cfg.Development))
	if log != nil {
		opts = append(opts, WithLogger(log))
	}

	if cfg.CatalogDir != "" {
		loaded, err := LoadDir(cfg.CatalogDir)
		if err != nil && len(loaded) == 0 {
			return nil, err
		}
		if err != nil && log != nil {
			log.Warn("some catalog files failed to load",
				logger.Component("i18n"),
				logger.Error(err))
		}
		opts = append(opts, loaded...)
	}

	return New(append(opts, extra...)...)
}
