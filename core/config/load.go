package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu           sync.Mutex
	cache        = make(map[reflect.Type]any)
	dotenvLoaded bool
)

// Load parses environment variables into cfg. The first load of each
// configuration type parses the environment; later loads of the same type
// copy the cached value, so every caller observes identical configuration.
//
// A .env file in the working directory is applied before the first parse.
// Variables already present in the environment are not overridden.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config: nil target")
	}

	mu.Lock()
	defer mu.Unlock()

	if !dotenvLoaded {
		// Missing .env files are fine; the environment stands alone.
		_ = godotenv.Load()
		dotenvLoaded = true
	}

	t := reflect.TypeOf(*cfg)
	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", t, err)
	}
	cache[t] = *cfg
	return nil
}

// MustLoad is Load, panicking on failure. Intended for application
// startup where a missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// ResetCache clears cached configurations and re-arms .env loading.
// Tests that mutate the environment between loads call this to force a
// fresh parse.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	cache = make(map[reflect.Type]any)
	dotenvLoaded = false
}
