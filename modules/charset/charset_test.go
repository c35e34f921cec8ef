package charset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadArtefactUTF8(t *testing.T) {
	path := writeTemp(t, "a.txt", []byte("hello\nworld\n"))
	art, err := ReadArtefact(context.Background(), path, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", art.Data)
	assert.Equal(t, path, art.Name)
}

func TestReadArtefactRejectsBinary(t *testing.T) {
	path := writeTemp(t, "bin.dat", []byte{0x00, 0x01, 0x02, 'a', 'b'})
	_, err := ReadArtefact(context.Background(), path, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBinaryData)
}

func TestReadArtefactMaxLines(t *testing.T) {
	path := writeTemp(t, "lines.txt", []byte("a\nb\nc\nd\n"))
	art, err := ReadArtefact(context.Background(), path, 2)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", art.Data)
}

func TestReadArtefactMissingFile(t *testing.T) {
	_, err := ReadArtefact(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), 0)
	require.Error(t, err)
}

func TestReadArtefactRespectsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := writeTemp(t, "a.txt", []byte("hello\n"))
	_, err := ReadArtefact(ctx, path, 0)
	require.Error(t, err)
}

func TestCapLinesPreservesTrailingNewline(t *testing.T) {
	assert.Equal(t, "a\nb\n", capLines("a\nb\nc\n", 2))
	assert.Equal(t, "a\nb\n", capLines("a\nb\nc", 2))
	assert.Equal(t, "a\nb\n", capLines("a\nb\n", 5))
}
