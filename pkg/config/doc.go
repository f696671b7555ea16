// Package config loads SDK configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing files are fine),
// then environment variables are parsed into any tagged struct.
//
//	type ClientConfig struct {
//	    BaseURL string        `env:"INFLUMATCH_API_URL" envDefault:"http://localhost:8080/v1"`
//	    Timeout time.Duration `env:"INFLUMATCH_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg); err != nil { ... }
package config
