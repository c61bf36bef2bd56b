package compress

import (
	"fmt"

	"github.com/arloliu/sevenpack/errs"
	"github.com/arloliu/sevenpack/format"
)

// BlockCodec compresses one input block into one self-contained stream.
//
// Implementations start from fresh coder state on every call, so each
// compressed block can be decoded on its own. Blocks of the same folder are
// later concatenated by the stream assembler; a codec whose streams carry a
// trailing end-of-stream marker reports it via EndMark so the assembler can
// strip interior markers.
//
// Thread safety: implementations must be safe for concurrent use; the
// parallel scheduler invokes Compress from every worker with a shared codec
// instance.
type BlockCodec interface {
	// ID returns the coder identifier recorded in the folder's coder record.
	ID() format.CodecID

	// Properties returns the coder properties record stored alongside the
	// coder ID, or nil when the coder has none.
	Properties() []byte

	// Compress compresses the input block and returns the compressed stream.
	//
	// Memory management:
	//   - Returned slice may share memory with the input (the store codec
	//     returns the input slice itself); the other coders return a new slice
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)

	// EndMark reports whether each compressed stream ends with a one-byte
	// end-of-stream marker.
	EndMark() bool
}

// Config carries the tunables applied when constructing a block codec.
type Config struct {
	// Preset selects the compression effort, 0 (fastest) through 9 (best).
	// It drives the LZMA2 dictionary size; the other coders use their
	// library defaults.
	Preset int

	// DictSize overrides the preset dictionary size in bytes. The value is
	// clamped upward to the nearest size the LZMA2 properties byte can
	// represent. Zero keeps the preset default.
	DictSize uint32
}

// NewBlockCodec is a factory function that creates a BlockCodec for the
// specified compression type.
func NewBlockCodec(compressionType format.CompressionType, cfg Config) (BlockCodec, error) {
	switch compressionType {
	case format.CompressionLZMA2:
		return NewLZMA2Codec(cfg)
	case format.CompressionCopy:
		return NewCopyCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported compression type: %s", errs.ErrFormat, compressionType)
	}
}
