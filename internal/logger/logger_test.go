package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-service/internal/config"
)

func TestNewParsesLevel(t *testing.T) {
	log := New("development", config.LogConfig{Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	log = New("development", config.LogConfig{Level: "nonsense"})
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNewWritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freight.log")
	log := New("production", config.LogConfig{Level: "info", File: path, MaxSizeMB: 1})

	log.Info().Str("entity", "freight").Msg("created")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"entity":"freight"`)
	assert.Contains(t, string(data), `"service":"freight-service"`)
}
