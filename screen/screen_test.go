package screen

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClearNonFileWriterIsNoop(t *testing.T) {
	var buf bytes.Buffer
	Clear(&buf)
	require.Zero(t, buf.Len())
}

func TestClearNonTerminalFileIsNoop(t *testing.T) {
	// A pipe is an *os.File but not a terminal.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	Clear(w)
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	require.Zero(t, buf.Len())
}
