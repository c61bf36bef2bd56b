// Package sevenpack provides a write-only builder for 7z archives with
// parallel LZMA2 compression.
//
// Archives produced by sevenpack use the standard container layout — the
// 32-byte signature header, the packed streams, and the end header the
// signature header points at — and extract with the reference 7-Zip tool.
// Each file becomes its own folder with a single coder, so archives are not
// solid; large files are split into blocks that compress in parallel on a
// worker pool while the output stays byte-deterministic for a given
// configuration.
//
// # Basic Usage
//
// Creating an archive from in-memory payloads and files on disk:
//
//	import (
//	    "github.com/arloliu/sevenpack"
//	    "github.com/arloliu/sevenpack/archive"
//	)
//
//	w, err := sevenpack.Create("backup.7z",
//	    archive.WithPreset(6),
//	    archive.WithWorkers(4),
//	)
//	if err != nil {
//	    return err
//	}
//
//	_ = w.AddBytes("notes/hello.txt", []byte("Hello, world!"))
//	_ = w.AddFile("/var/log/syslog", "logs/syslog")
//
//	if err := w.Finish(); err != nil {
//	    return err
//	}
//
// # Package Structure
//
// This package is a thin convenience layer over the archive package, which
// exposes the full writer API for callers that manage their own sinks. The
// compress, section, and encoding packages implement the coders, the header
// structures, and the header primitives respectively.
package sevenpack

import (
	"fmt"
	"os"

	"github.com/arloliu/sevenpack/archive"
)

// FileWriter is an archive writer bound to a file it owns. Finish completes
// the archive and closes the file.
type FileWriter struct {
	*archive.Writer

	f *os.File
}

// Create creates (or truncates) the file at path and returns a writer
// building a 7z archive in it.
func Create(path string, opts ...archive.Option) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create archive %q: %w", path, err)
	}

	w, err := archive.NewWriter(f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &FileWriter{Writer: w, f: f}, nil
}

// Finish completes the archive and closes the underlying file. On failure
// the file is closed but left in place; its contents are undefined.
func (fw *FileWriter) Finish() error {
	finishErr := fw.Writer.Finish()
	closeErr := fw.f.Close()

	if finishErr != nil {
		return finishErr
	}
	if closeErr != nil {
		return fmt.Errorf("close archive: %w", closeErr)
	}

	return nil
}
