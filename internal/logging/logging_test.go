package logging

import (
	"os"
	"path/filepath"
	"testing"

	"openwhen/internal/envelope"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "openwhen.log")
	log, closer, err := New("debug", path)
	require.NoError(t, err)
	log.WithField("card", "x").Debug("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "card=x")
}

func TestNew_Discard(t *testing.T) {
	log, closer, err := New("warn", "")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New("loud", "")
	assert.Error(t, err)
}

func TestPhaseLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	m := envelope.New("card-9", envelope.DefaultTiming(), &PhaseLogger{Log: log})
	_, ok := m.Toggle()
	require.True(t, ok)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "sequence start", entries[0].Message)
	assert.Equal(t, "open", entries[0].Data["dir"])
	assert.Equal(t, "opening-flip", entries[1].Data["phase"])
	assert.Equal(t, "card-9", entries[1].Data["card"])
}
