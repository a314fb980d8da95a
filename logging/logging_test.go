package logging

import (
	"bytes"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	for _, lvl := range []int{DebugLevel, InfoLevel, WarnLevel, ErrorLevel} {
		parsed, err := ParseLogLevel(LogLevelToString(lvl))
		require.Nil(t, err)
		require.Equal(t, lvl, parsed)
	}
	_, err := ParseLogLevel("loud")
	require.NotNil(t, err)
}

func TestCreateLoggerFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := CreateLogger(&buf, "warn")
	require.Nil(t, err)

	level.Info(logger).Log("msg", "hidden")
	require.Empty(t, buf.String())

	level.Warn(logger).Log("msg", "shown")
	require.Contains(t, buf.String(), "level=warn")
	require.Contains(t, buf.String(), "msg=shown")
}
