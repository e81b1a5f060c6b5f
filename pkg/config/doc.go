// Package config parses environment variables into typed configuration
// structs.
//
// Configuration is declared as struct fields with `env` tags; parsing is
// delegated to github.com/caarlos0/env with optional .env file support via
// github.com/joho/godotenv:
//
//	type AppConfig struct {
//		DatabaseURL string `env:"DATABASE_URL,required"`
//		CacheSize   int    `env:"STMT_CACHE_SIZE" envDefault:"64"`
//		Debug       bool   `env:"DEBUG" envDefault:"false"`
//	}
//
//	cfg, err := config.Load[AppConfig]()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Load reads a .env file from the working directory once per process if
// one exists. Values already present in the environment win over the file,
// which keeps deployments overridable while local development stays
// convenient. Additional files can be loaded explicitly:
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad and MustLoadEnv panic instead of returning an error, for
// configuration the process cannot run without.
package config
