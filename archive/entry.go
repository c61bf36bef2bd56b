package archive

import (
	"os"
	"time"

	"github.com/arloliu/sevenpack/compress"
)

// entry is one logical payload to archive: either an owned byte buffer or a
// path read at finish time. Each entry captures the codec configuration
// current at its enqueue and is consumed exactly once by Finish.
type entry struct {
	name string

	// Exactly one source is set: path for disk entries, data for in-memory
	// entries (data stays non-nil even when empty).
	path string
	data []byte

	// size is known at enqueue for in-memory entries and resolved by the
	// planner for disk entries.
	size uint64

	mtime    time.Time
	hasMTime bool

	// crc is precomputed at enqueue for in-memory entries; disk entries get
	// theirs combined from per-block digests during compression.
	crc uint32

	codec     compress.BlockCodec
	blockSize uint64

	// file is the shared read-only handle the planner opens for disk
	// entries; workers read from it with positional reads.
	file *os.File

	// blocks is the number of descriptors the planner produced.
	blocks int
}

// memory reports whether the entry's payload lives in memory.
func (e *entry) memory() bool {
	return e.path == ""
}

// blockDesc addresses one compression unit: a byte range of one entry.
// Descriptors are ordered by (entry index, offset) and tile each entry's
// [0, size) exactly.
type blockDesc struct {
	entry  int
	offset uint64
	length uint64
}
