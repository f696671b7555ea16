package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/influmatch/influmatch-go/pkg/logger"
)

func TestNew_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("component", "apiclient")),
	)

	log.Info("request sent", "method", "GET")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "request sent", record["msg"])
	assert.Equal(t, "GET", record["method"])
	assert.Equal(t, "apiclient", record["component"])
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

	log.Info("ignored")
	log.Warn("kept")

	assert.NotContains(t, buf.String(), "ignored")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_DevelopmentMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("cli"), logger.WithOutput(&buf))

	log.Debug("verbose detail")

	line := buf.String()
	assert.Contains(t, line, "verbose detail")
	assert.Contains(t, line, "component=cli")
	assert.False(t, strings.HasPrefix(line, "{"), "development mode is text, not JSON")
}
