package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into a fresh T based on its `env`
// field tags. A .env file in the working directory is loaded into the
// process environment once, before the first parse; variables that are
// already set take precedence over values from the file.
//
// Example:
//
//	type CacheConfig struct {
//		Size    int           `env:"STMT_CACHE_SIZE" envDefault:"64"`
//		Timeout time.Duration `env:"STMT_DEALLOC_TIMEOUT" envDefault:"5s"`
//	}
//
//	cfg, err := config.Load[CacheConfig]()
//	if err != nil {
//		// handle error
//	}
func Load[T any]() (T, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics when parsing fails. Use it for
// configuration the process cannot start without.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

// LoadEnv loads the named .env files into the process environment without
// overriding variables that are already set. Call it before Load when the
// configuration lives outside the working directory.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics when a file cannot be read.
func MustLoadEnv(filenames ...string) {
	if err := LoadEnv(filenames...); err != nil {
		panic(err)
	}
}
