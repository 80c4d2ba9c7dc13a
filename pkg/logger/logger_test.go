package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwise-api/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("verboso"))
}

func TestNew_JSONFueraDeDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("descartado")
	log.Component("import").Warn().Int("row", 3).Msg("fila omitida")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "import", entry["component"])
	assert.Equal(t, float64(3), entry["row"])
	assert.Equal(t, "fila omitida", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestEnabled(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "error", Output: &bytes.Buffer{}})
	assert.False(t, log.Enabled(zerolog.WarnLevel))
	assert.True(t, log.Enabled(zerolog.ErrorLevel))
}
