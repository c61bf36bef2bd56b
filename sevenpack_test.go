package sevenpack

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/sevenzip"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/sevenpack/archive"
	"github.com/arloliu/sevenpack/errs"
)

func TestCreate_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	source := filepath.Join(dir, "source.txt")
	sourceData := bytes.Repeat([]byte("file on disk\n"), 1024)
	require.NoError(t, os.WriteFile(source, sourceData, 0o644))

	target := filepath.Join(dir, "out.7z")
	w, err := Create(target, archive.WithPreset(1), archive.WithWorkers(2))
	require.NoError(t, err)

	require.NoError(t, w.AddBytes("docs/inline.txt", []byte("in-memory payload")))
	require.NoError(t, w.AddFile(source, "data/source.txt"))
	require.NoError(t, w.Finish())

	r, err := sevenzip.OpenReader(target)
	require.NoError(t, err)
	defer r.Close()

	require.Len(t, r.File, 2)
	require.Equal(t, "docs/inline.txt", r.File[0].Name)
	require.Equal(t, "data/source.txt", r.File[1].Name)

	rc, err := r.File[1].Open()
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, sourceData, content)
}

func TestCreate_InvalidOption(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.7z")

	_, err := Create(target, archive.WithPreset(99))
	require.Error(t, err)
}

func TestCreate_UnwritablePath(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "no", "such", "dir", "out.7z"))
	require.Error(t, err)
}

func TestFileWriter_DuplicateNameKeepsWriterOpen(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.7z")

	w, err := Create(target)
	require.NoError(t, err)

	require.NoError(t, w.AddBytes("a", []byte("1")))
	require.ErrorIs(t, w.AddBytes("a", []byte("2")), errs.ErrDuplicateName)
	require.NoError(t, w.Finish())
}
