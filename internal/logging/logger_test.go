package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"debug": LevelDebug, "NOTE": LevelNote, "": LevelInfo,
		"warning": LevelWarn, " error ": LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestConsoleThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)
	l.Logf(LevelInfo, "hidden %d", 1)
	l.Logf(LevelError, "shown %d", 2)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[ERROR] shown 2")
	assert.False(t, l.Enabled(LevelNote))
	assert.True(t, l.Enabled(LevelWarn))
}

func TestFileGetsEveryLevel(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "bedrock.log")
	l := New(&buf, LevelError)
	require.NoError(t, l.OpenFile(path))
	l.Logf(LevelDebug, "generating level %q", "Field")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `[DEBUG] generating level "Field"`))
	assert.Empty(t, buf.String())
}

func TestPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, LevelDebug)
	t.Cleanup(func() { Init(os.Stderr, LevelInfo) })
	Notef("there are %d spawn chunk(s)", 2)
	assert.Contains(t, buf.String(), "[NOTE] there are 2 spawn chunk(s)")
}
