package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "Test", WARNING, "ctx")

	log.PrintfDebug("debug line")
	log.PrintfInfo("info line")
	require.Zero(t, buf.Len())

	log.PrintfWarning("warning line")
	log.PrintfError("error line")
	require.Contains(t, buf.String(), "warning line")
	require.Contains(t, buf.String(), "error line")
}

func TestLogger_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "Auth", DEBUG, "req-123")

	log.PrintfInfo("user %s signed up", "user@example.com")

	line := buf.String()
	require.Contains(t, line, "[INFO]")
	require.Contains(t, line, "[Auth]")
	require.Contains(t, line, "[req-123]")
	require.Contains(t, line, "user user@example.com signed up")
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "Test", LogLevel("VERBOSE"), "ctx")

	log.PrintfDebug("hidden")
	require.Zero(t, buf.Len())

	log.PrintfInfo("shown")
	require.Contains(t, buf.String(), "shown")
}
