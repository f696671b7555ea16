package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfileMissingFile(t *testing.T) {
	t.Parallel()

	p, err := loadProfile(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, profile{}, p)
}

func TestLoadProfileParsesYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "api_url: https://api.example.com/v1\ntimeout: 45s\nretry_count: 2\nstore: bolt\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	p, err := loadProfile(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", p.APIURL)
	assert.Equal(t, 2, p.RetryCount)
	assert.Equal(t, "bolt", p.Store)

	timeout, err := p.timeout()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, timeout)

	delay, err := p.retryDelay()
	require.NoError(t, err)
	assert.Zero(t, delay)
}

func TestLoadProfileRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api_url: [unclosed"), 0o600))

	_, err := loadProfile(dir)
	require.Error(t, err)
}
