package statebuffer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dumpFixture(t *testing.T) *Buffer {
	t.Helper()

	buf := NewWithCapacity(10)
	pose := NewSensorHandle("pose_1")

	buf.AddEntrySorted(NewEntry(1, measurementPayload(), pose, MetadataMeasurement))
	buf.AddEntrySorted(NewEntry(2, statePayload(), pose, MetadataState))
	buf.AddEntrySorted(NewEntry(3, statePayload(), pose, MetadataInit))

	return buf
}

func TestBufferString(t *testing.T) {
	buf := dumpFixture(t)

	out := buf.String()

	assert.Contains(t, out, "buffer length=3 max=10")
	assert.Contains(t, out, "[0] t=1")
	assert.Contains(t, out, "[2] t=3")
	assert.Contains(t, out, "meta=measurement")
	assert.Contains(t, out, "meta=init")
	assert.NotContains(t, out, Reset)
}

func TestDumpWithoutTerminal(t *testing.T) {
	buf := dumpFixture(t)

	var out bytes.Buffer
	require.NoError(t, buf.Dump(&out))

	// A plain writer is not a terminal, so no escape codes appear.
	assert.NotContains(t, out.String(), Reset)
	assert.Equal(t, 4, strings.Count(out.String(), "\n"))
}

func TestDumpForcedColors(t *testing.T) {
	buf := dumpFixture(t)
	buf.color.ForceTTY = true

	var out bytes.Buffer
	require.NoError(t, buf.Dump(&out))

	assert.Contains(t, out.String(), Green)
	assert.Contains(t, out.String(), Blue)
	assert.Contains(t, out.String(), Cyan)
	assert.Contains(t, out.String(), Reset)
}

func TestDumpColorsDisabled(t *testing.T) {
	buf := dumpFixture(t)
	buf.color.Enable = false
	buf.color.ForceTTY = true

	var out bytes.Buffer
	require.NoError(t, buf.Dump(&out))

	assert.NotContains(t, out.String(), Reset)
}

func TestDumpOutputStandardStreams(t *testing.T) {
	w, err := DumpOutput("stdout")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)

	w, err = DumpOutput("STDERR")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)
}

func TestDumpOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buffer.dump")

	w, err := DumpOutput(path)
	require.NoError(t, err)

	file, ok := w.(*os.File)
	require.True(t, ok)

	buf := dumpFixture(t)
	require.NoError(t, buf.Dump(file))
	require.NoError(t, file.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "buffer length=3 max=10")
}

func TestDumpOutputRejectsTraversal(t *testing.T) {
	_, err := DumpOutput("../escape.dump")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output path")
}
