package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLogLevelToString(t *testing.T) {
	require.Equal(t, "TRACE", LogLevelToString(TraceLevel))
	require.Equal(t, "WARN", LogLevelToString(WarnLevel))
	require.Equal(t, "FATAL", LogLevelToString(FatalLevel))
}

func TestLogRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))
	defer SetLogger(zerolog.Nop())

	Log("test", DebugLevel, "hidden")
	require.Equal(t, 0, buf.Len())
	Log("test", WarnLevel, "shown")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "\"component\":\"test\"")
}
