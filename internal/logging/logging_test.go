package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/thelist/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, config.LogConfig{Level: "warn", Format: "json"})

	log.Info().Msg("dropped")
	log.Error().Str("endpoint", "/list").Msg("fetch failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "/list", entry["endpoint"])
	require.Equal(t, "fetch failed", entry["message"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, config.LogConfig{Level: "info"})
	log.Info().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "INF")
}

func TestOpenWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "thelist.log")
	log, closer, err := Open(config.LogConfig{Level: "info", File: path, Format: "json"})
	require.NoError(t, err)
	log.Info().Msg("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"started"`)
}

func TestOpenDisabled(t *testing.T) {
	_, closer, err := Open(config.LogConfig{Level: "off", File: filepath.Join(t.TempDir(), "x.log")})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
}
