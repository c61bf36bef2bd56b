package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arloliu/sevenpack/errs"
	"github.com/arloliu/sevenpack/format"
	"github.com/arloliu/sevenpack/internal/crc"
	"github.com/arloliu/sevenpack/internal/options"
	"github.com/arloliu/sevenpack/section"
)

// writerState tracks the writer through its lifecycle.
type writerState uint8

const (
	stateOpen writerState = iota
	stateFinishing
	stateDone
	statePoisoned
)

// Writer builds a 7z archive on a seekable sink.
//
// Construction reserves the 32-byte signature header region; entries are
// enqueued while the writer is open and consumed by Finish, which runs the
// whole compression pipeline and patches the signature header last. The
// writer owns the sink exclusively until Finish returns but never closes it.
//
// Note: The Writer is NOT safe for concurrent use, and it is NOT reusable:
// after Finish, successful or not, a new Writer must be created.
type Writer struct {
	sink    io.WriteSeeker
	config  *WriterConfig
	entries []*entry
	names   map[string]struct{}
	state   writerState
	written uint64 // absolute sink offset
}

// NewWriter creates a Writer on sink and reserves the signature header
// region with a zero placeholder.
//
// The sink must be positioned at offset 0 and support seeking back to it;
// nothing else about the archive is written until Finish.
func NewWriter(sink io.WriteSeeker, opts ...Option) (*Writer, error) {
	config := newWriterConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	w := &Writer{
		sink:   sink,
		config: config,
		names:  make(map[string]struct{}),
	}

	var placeholder [format.StartHeaderSize]byte
	if err := w.writeAll(placeholder[:]); err != nil {
		return nil, err
	}

	return w, nil
}

// SetCompression re-applies compression options while the writer is open.
// The new configuration affects entries enqueued afterwards; earlier entries
// keep the codec they captured.
func (w *Writer) SetCompression(opts ...Option) error {
	if err := w.requireOpen(); err != nil {
		return err
	}

	return options.Apply(w.config, opts...)
}

// SetWorkers sets the worker pool size used by Finish. Zero selects one
// worker per logical CPU.
func (w *Writer) SetWorkers(workers int) error {
	if err := w.requireOpen(); err != nil {
		return err
	}

	return w.config.setWorkers(workers)
}

// AddFile enqueues the file at path under the given archive name. The file
// is opened and read during Finish; its current modification time is
// recorded now unless disabled with WithModTimes(false).
func (w *Writer) AddFile(path, name string) error {
	if err := w.requireOpen(); err != nil {
		return err
	}

	ent, err := w.newEntry(name)
	if err != nil {
		return err
	}
	ent.path = path

	if w.config.modTimes {
		// A failing stat is not fatal here; opening the file at finish time
		// reports the real error.
		if info, err := os.Stat(path); err == nil {
			ent.mtime = info.ModTime()
			ent.hasMTime = true
		}
	}

	w.accept(ent)

	return nil
}

// AddBytes enqueues an in-memory payload under the given archive name. The
// buffer is owned by the writer until Finish returns.
func (w *Writer) AddBytes(name string, data []byte) error {
	return w.addBytes(name, data, time.Time{}, false)
}

// AddBytesModTime enqueues an in-memory payload with a modification time.
func (w *Writer) AddBytesModTime(name string, data []byte, mtime time.Time) error {
	return w.addBytes(name, data, mtime, true)
}

func (w *Writer) addBytes(name string, data []byte, mtime time.Time, hasMTime bool) error {
	if err := w.requireOpen(); err != nil {
		return err
	}

	ent, err := w.newEntry(name)
	if err != nil {
		return err
	}
	if data == nil {
		data = []byte{}
	}
	ent.data = data
	ent.size = uint64(len(data))
	ent.crc = crc.Checksum(data)
	ent.mtime = mtime
	ent.hasMTime = hasMTime

	w.accept(ent)

	return nil
}

// Finish runs the full pipeline: plans blocks, compresses them on the worker
// pool, writes the pack area, appends the end header, and patches the
// signature header. It consumes the writer; on failure the writer is
// poisoned and the partial output is undefined.
func (w *Writer) Finish() error {
	if err := w.requireOpen(); err != nil {
		return err
	}
	w.state = stateFinishing

	if err := w.finish(); err != nil {
		w.state = statePoisoned
		return err
	}

	w.state = stateDone

	return nil
}

func (w *Writer) finish() error {
	blocks, err := planEntries(w.entries)
	if err != nil {
		return err
	}
	defer closeEntries(w.entries)

	folders, err := w.packFolders(blocks)
	if err != nil {
		return err
	}

	endHeader, err := w.buildHeader(folders)
	if err != nil {
		return err
	}

	nextHeaderOffset := w.written - format.StartHeaderSize
	if err := w.writeAll(endHeader); err != nil {
		return err
	}

	start := section.StartHeader{
		NextHeaderOffset: nextHeaderOffset,
		NextHeaderSize:   uint64(len(endHeader)),
		NextHeaderCRC:    crc.Checksum(endHeader),
	}

	// The only backward seek: patch the placeholder reserved at
	// construction. After this write the archive is valid.
	if _, err := w.sink.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek to signature header: %w", err)
	}
	if _, err := w.sink.Write(start.Encode()); err != nil {
		return fmt.Errorf("patch signature header: %w", err)
	}

	return nil
}

// packFolders drives the scheduler and appends every folder payload to the
// sink, returning the folder records for the end header.
func (w *Writer) packFolders(blocks []blockDesc) ([]section.Folder, error) {
	folders := make([]section.Folder, 0, len(w.entries))
	if len(blocks) == 0 {
		return folders, nil
	}

	sched := startScheduler(context.Background(), w.entries, blocks, w.config.effectiveWorkers())
	defer sched.stop()

	var asm *folderAssembler
	current := -1

	for {
		desc, res, ok := sched.next()
		if !ok {
			break
		}
		if res.err != nil {
			return nil, res.err
		}

		if desc.entry != current {
			if asm != nil {
				folders = append(folders, w.folderRecord(current, asm))
			}
			current = desc.entry
			asm = newFolderAssembler(w.entries[current])
		}

		data, err := asm.add(res.data, res.crc, desc.length)
		if err != nil {
			return nil, err
		}
		if err := w.writeAll(data); err != nil {
			return nil, err
		}
	}

	if asm != nil {
		if !asm.complete() {
			return nil, fmt.Errorf("%w: folder ended after %d of %d blocks",
				errs.ErrFormat, asm.seen, asm.total)
		}
		folders = append(folders, w.folderRecord(current, asm))
	}

	if err := sched.wait(); err != nil {
		return nil, err
	}

	return folders, nil
}

// folderRecord closes one folder: the entry's coder record plus the sizes
// and digest the assembler accumulated.
func (w *Writer) folderRecord(idx int, asm *folderAssembler) section.Folder {
	ent := w.entries[idx]

	digest := asm.digest
	if ent.memory() {
		digest = ent.crc
	}

	return section.Folder{
		CoderID:    ent.codec.ID(),
		Properties: ent.codec.Properties(),
		UnpackSize: asm.unpacked,
		PackSize:   asm.packSize,
		CRC:        digest,
	}
}

// buildHeader serializes the end header from the folder records and the file
// table.
func (w *Writer) buildHeader(folders []section.Folder) ([]byte, error) {
	files := make([]section.File, len(w.entries))
	for i, ent := range w.entries {
		files[i] = section.File{
			Name:        ent.name,
			EmptyStream: ent.size == 0,
			MTime:       ent.mtime,
			HasMTime:    ent.hasMTime,
		}
	}

	header := &section.Header{Files: section.FilesInfo{Files: files}}
	if len(folders) > 0 {
		header.Streams = &section.StreamsInfo{Folders: folders}
	}

	return header.Encode()
}

// newEntry validates the archive name and snapshots the current codec
// configuration.
func (w *Writer) newEntry(name string) (*entry, error) {
	if name == "" {
		return nil, errs.ErrEmptyName
	}
	if _, dup := w.names[name]; dup {
		return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateName, name)
	}

	codec, err := w.config.newCodec()
	if err != nil {
		return nil, err
	}

	return &entry{
		name:      name,
		codec:     codec,
		blockSize: w.config.effectiveBlockSize(),
	}, nil
}

func (w *Writer) accept(ent *entry) {
	w.names[ent.name] = struct{}{}
	w.entries = append(w.entries, ent)
}

func (w *Writer) requireOpen() error {
	switch w.state {
	case stateOpen:
		return nil
	case stateDone:
		return errs.ErrWriterFinished
	case statePoisoned:
		return errs.ErrWriterPoisoned
	default:
		return errs.ErrInvalidState
	}
}

// writeAll appends p to the sink and advances the tracked offset.
func (w *Writer) writeAll(p []byte) error {
	n, err := w.sink.Write(p)
	w.written += uint64(n)
	if err != nil {
		return fmt.Errorf("write sink: %w", err)
	}

	return nil
}
