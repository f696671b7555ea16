package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates cfg from the process environment. The default .env file is
// read once per process before the first parse; a missing .env is not an
// error.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use for configuration the
// process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment before
// any parsing. Later files do not override variables already set.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
