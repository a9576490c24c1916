package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	require.Empty(t, buf.String())

	New(&buf, true).Debug("shown", "k", 1)
	require.Contains(t, buf.String(), "msg=shown")
	require.Contains(t, buf.String(), "k=1")
}

func TestNewFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rowsim.log")

	logger, f, err := NewFile(path, false)
	require.NoError(t, err)
	logger.Info("first")
	require.NoError(t, f.Close())

	logger, f, err = NewFile(path, false)
	require.NoError(t, err)
	logger.Info("second")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "msg=first")
	require.Contains(t, string(data), "msg=second")
}
