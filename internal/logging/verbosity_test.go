package logging

import (
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_VerbosityLevel(t *testing.T) {
	require.Equal(t, log.WarnLevel, VerbosityLevel(0))
	require.Equal(t, log.InfoLevel, VerbosityLevel(1))
	require.Equal(t, log.DebugLevel, VerbosityLevel(2))
	require.Equal(t, log.TraceLevel, VerbosityLevel(3))
	require.Equal(t, log.TraceLevel, VerbosityLevel(10))
	require.Equal(t, log.WarnLevel, VerbosityLevel(-1))
}

func Test_SetVerbosity(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	SetVerbosity([]bool{true, true})
	require.Equal(t, log.DebugLevel, log.GetLevel())
	require.Equal(t, "DEBUG", VerbosityName())

	SetVerbosity(nil)
	require.Equal(t, "WARN", VerbosityName())
}
