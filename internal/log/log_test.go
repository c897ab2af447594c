package log_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigsum/internal/log"
)

func TestConfigure_WritesComponentAndService(t *testing.T) {
	var buf bytes.Buffer
	log.Configure(log.Config{Level: "debug", Output: &buf, Service: "test"})
	t.Cleanup(func() { log.Configure(log.Config{}) })

	l := log.WithComponent("decimal")
	l.Debug().Str("sum", "1000").Msg("added")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test", entry["service"])
	assert.Equal(t, "decimal", entry["component"])
	assert.Equal(t, "1000", entry["sum"])
	assert.Equal(t, "debug", entry["level"])
}

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log.Configure(log.Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { log.Configure(log.Config{}) })

	l := log.Base()
	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestConfigure_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log.Configure(log.Config{Level: "loud", Output: &buf})
	t.Cleanup(func() { log.Configure(log.Config{}) })

	l := log.Base()
	l.Debug().Msg("dropped")
	l.Info().Msg("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
