package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "production", "info")

	l.Debug().Msg("hidden")
	l.Info().Str("route", "/api/stores").Msg("request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry["message"])
	assert.Equal(t, "/api/stores", entry["route"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestDevelopmentWritesConsole(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "development", "debug")

	l.Debug().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}
