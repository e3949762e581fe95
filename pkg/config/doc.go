// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file in the working directory is read once (a missing file is
// fine), then struct fields are populated from their `env` tags. Every
// configuration type is parsed at most once per process; later calls return
// the cached copy.
//
// # Usage
//
//	type Config struct {
//	    Precision int  `env:"NUMFORMAT_PRECISION" envDefault:"17"`
//	    Scale     int  `env:"NUMFORMAT_SCALE" envDefault:"2"`
//	    Unsigned  bool `env:"NUMFORMAT_NON_NEGATIVE"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// LoadEnv reads additional .env files explicitly and ResetCache drops cached
// values, which is mostly useful in tests.
package config
