package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads the given .env files into the process environment. Without
// arguments it loads the default .env from the working directory; a missing
// default file is not an error since production deployments set real
// environment variables instead.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		// The default .env file is optional.
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into the provided configuration struct
// based on its env tags.
//
// Example:
//
//	type SearchConfig struct {
//		IndexPrefix string `env:"SEARCH_INDEX_PREFIX,required"`
//		Fuzziness   string `env:"SEARCH_FUZZINESS" envDefault:"AUTO"`
//	}
//
//	var cfg SearchConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration parsing fails. Useful
// for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
