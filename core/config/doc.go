// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/glossadev/glossa/core/config"
//
//	type AppConfig struct {
//		Locale     string `env:"APP_LOCALE" envDefault:"en"`
//		CatalogDir string `env:"APP_CATALOG_DIR,required"`
//	}
//
//	func main() {
//		var cfg AppConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 AppConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 AppConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type ServerConfig struct {
//		Port int `env:"PORT" envDefault:"8080"`
//	}
//
//	// i18n.Config and ServerConfig each get their own cache entry
//	config.MustLoad(&i18n.Config{})
//	config.MustLoad(&ServerConfig{})
//
// Tests that mutate the environment between loads call ResetCache to force
// a fresh parse.
package config
