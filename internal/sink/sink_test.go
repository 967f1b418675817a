package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_WritesLineWithNewline(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleTo(&buf)

	require.NoError(t, s.Write("select 1;"))
	require.NoError(t, s.Write(""))
	require.NoError(t, s.Finish())

	assert.Equal(t, "select 1;\n\n", buf.String())
}

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sql")

	s, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Write("select 1;"))
	require.NoError(t, s.Write("select 2;"))
	require.NoError(t, s.Finish())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "select 1;\nselect 2;\n", string(content))
}

func TestFile_FinishIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sql")

	s, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Write("x"))

	require.NoError(t, s.Finish())
	require.NoError(t, s.Finish())
}

func TestFile_WriteAfterFinish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sql")

	s, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Finish())

	assert.Error(t, s.Write("too late"))
}

func TestFile_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sql")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0644))

	s, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Write("fresh"))
	require.NoError(t, s.Finish())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(content))
}

func TestFile_BadPath(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "no", "such", "dir", "out.sql"))
	assert.Error(t, err)
}

func TestBuffer_LinesCarryNewlines(t *testing.T) {
	s := NewBuffer()

	require.NoError(t, s.Write("select 1;"))
	require.NoError(t, s.Write("select 2;"))
	require.NoError(t, s.Finish())

	assert.Equal(t, []string{"select 1;\n", "select 2;\n"}, s.Lines())
}

func TestBuffer_ReadableMidRun(t *testing.T) {
	s := NewBuffer()

	require.NoError(t, s.Write("first"))
	assert.Equal(t, []string{"first\n"}, s.Lines())

	require.NoError(t, s.Write("second"))
	assert.Equal(t, []string{"first\n", "second\n"}, s.Lines())
}

func TestBuffer_LinesReturnsCopy(t *testing.T) {
	s := NewBuffer()
	require.NoError(t, s.Write("only"))

	lines := s.Lines()
	lines[0] = "mutated"

	assert.Equal(t, []string{"only\n"}, s.Lines())
}
