package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ".", cfg.DataDir)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "vendia.log", cfg.LogPath)
	require.Equal(t, 5, cfg.TopLimit)
	require.False(t, cfg.NoColor)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("VENDIA_DATA_DIR", "/var/lib/vendia")
	t.Setenv("VENDIA_LOG_FORMAT", "json")
	t.Setenv("VENDIA_TOP_LIMIT", "3")
	t.Setenv("VENDIA_NO_COLOR", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "/var/lib/vendia", cfg.DataDir)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 3, cfg.TopLimit)
	require.True(t, cfg.NoColor)
}

func TestLoadConfigRejectsBadTopLimit(t *testing.T) {
	t.Setenv("VENDIA_TOP_LIMIT", "0")
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer

	NewLogger(&Config{LogFormat: "json"}, &buf).Info("hello")
	require.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	NewLogger(&Config{LogFormat: "text"}, &buf).Info("hello")
	require.Contains(t, buf.String(), "msg=hello")
}
