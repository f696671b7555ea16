package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/influmatch/influmatch-go/pkg/config"
)

type testConfig struct {
	BaseURL    string        `env:"TEST_API_URL" envDefault:"http://localhost:8080/v1"`
	Timeout    time.Duration `env:"TEST_TIMEOUT" envDefault:"30s"`
	RetryCount int           `env:"TEST_RETRIES" envDefault:"0"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.RetryCount)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_API_URL", "https://api.influmatch.io/v1")
	t.Setenv("TEST_TIMEOUT", "5s")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "https://api.influmatch.io/v1", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_NilPointer(t *testing.T) {
	t.Parallel()

	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("TEST_TIMEOUT", "not-a-duration")

	var cfg testConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	t.Parallel()

	err := config.LoadEnv("does-not-exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
