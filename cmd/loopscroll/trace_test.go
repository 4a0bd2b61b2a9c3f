package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayn2op/loopscroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 5\n"), 0o644))

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", path}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTraceScrollSettles(t *testing.T) {
	out, err := executeRoot(t, "trace", "--scroll", "1", "--viewport", "5", "--no-color", "--render")
	require.NoError(t, err)

	assert.Contains(t, out, "STEP")
	assert.Contains(t, out, "auto")
	assert.Contains(t, out, `fixed 1 (item 1 "item 01")`)
	assert.Contains(t, out, "item 01")
}

func TestTraceDragAndFling(t *testing.T) {
	out, err := executeRoot(t, "trace", "--drag", "-2", "--drag-steps", "2", "--steps", "40", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "free")
	assert.Contains(t, out, "fixed")

	_, err = executeRoot(t, "trace", "--fling", "500", "--inertia=true", "--steps", "10", "--no-color")
	require.NoError(t, err)
}

func TestTraceRejectsBadInput(t *testing.T) {
	_, err := executeRoot(t, "trace", "--steps", "0")
	assert.ErrorIs(t, err, loopscroll.ErrInvalidConfig)

	_, err = executeRoot(t, "trace", "--axis", "diagonal")
	assert.ErrorIs(t, err, loopscroll.ErrUnknownAxis)
}

func TestLoggerLevels(t *testing.T) {
	opts := &rootOptions{logLevel: "debug"}
	logger, closer, err := opts.logger()
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	assert.NotNil(t, logger)

	opts.logLevel = "loud"
	_, _, err = opts.logger()
	assert.Error(t, err)

	opts = &rootOptions{logLevel: "info", logFile: filepath.Join(t.TempDir(), "trace.log")}
	logger, closer, err = opts.logger()
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(opts.logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}
