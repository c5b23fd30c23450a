package observability

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/armory/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "json"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_Console(t *testing.T) {
	cfg := config.LoggingConfig{Level: "debug", Format: "console"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := config.LoggingConfig{Level: "trace", Format: "json"}
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "xml"}
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLogger_WritesToGivenOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "armory.log")
	logger, err := NewLogger(config.LoggingConfig{Level: "warn", Format: "json"}, path)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("skipped weapon file", zap.String("path", "weapons/AK.json"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "skipped weapon file", entry["msg"])
	assert.Equal(t, "weapons/AK.json", entry["path"])
}

func TestComponent_TagsEntries(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Component(zap.New(core), "storage.file").Info("saved")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "storage.file", entry.LoggerName)
	assert.Equal(t, "storage.file", entry.ContextMap()["component"])
}
