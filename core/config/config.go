package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	// cache holds one parsed value per configuration type.
	cache sync.Map // reflect.Type -> T
)

// Load populates cfg from the environment, parsing each type only once.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil target")
	}

	dotenvOnce.Do(func() {
		// A missing .env file is the normal case in production.
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return fmt.Errorf("failed to parse %s config: %w", typ, err)
	}

	actual, _ := cache.LoadOrStore(typ, parsed)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
