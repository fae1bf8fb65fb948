// Package config loads environment-backed configuration structs.
//
// Each configuration type is parsed once with caarlos0/env and cached; later calls for
// the same type return the cached value. A .env file in the working directory is read on
// first use via godotenv and never overrides variables already set in the environment.
//
//	type CatalogConfig struct {
//		Dir      string `env:"T7E_CATALOG_DIR" envDefault:"."`
//		Manifest string `env:"T7E_MANIFEST" envDefault:"t7e.yaml"`
//	}
//
//	var cfg CatalogConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	// Or panic on failure, useful during startup.
//	config.MustLoad(&cfg)
//
// Different types are cached independently, so a tool can load a logging section and a
// storage section separately without parsing the environment twice for either.
package config
