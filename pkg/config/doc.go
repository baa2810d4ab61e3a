// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// LoadEnv reads optional .env files into the process environment, Load parses
// the environment into any struct with env tags.
//
// # Usage
//
//	type SearchConfig struct {
//	    IndexPrefix string `env:"SEARCH_INDEX_PREFIX,required"`
//	    Fuzziness   string `env:"SEARCH_FUZZINESS" envDefault:"AUTO"`
//	}
//
//	func main() {
//	    config.MustLoadEnv()
//
//	    var cfg SearchConfig
//	    config.MustLoad(&cfg)
//	}
//
// Sentinel errors ErrParsingConfig, ErrLoadingEnvFile and ErrNilPointer can
// be compared with errors.Is.
package config
