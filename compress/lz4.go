package compress

import (
	"bytes"
	"fmt"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/sevenpack/errs"
	"github.com/arloliu/sevenpack/format"
)

// LZ4Codec compresses blocks into LZ4 frames.
//
// The frame format (not the raw block format) is what the 7z-zstd coder
// expects, and frames carry their own end mark inside the frame footer, so no
// trailing marker byte is exposed to the assembler.
type LZ4Codec struct{}

var _ BlockCodec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// ID returns the LZ4 coder identifier.
func (c LZ4Codec) ID() format.CodecID {
	return format.CodecLZ4
}

// Properties returns nil; the frame header carries everything the decoder
// needs.
func (c LZ4Codec) Properties() []byte {
	return nil
}

// EndMark reports that LZ4 frames carry no trailing marker byte.
func (c LZ4Codec) EndMark() bool {
	return false
}

// Compress compresses the block into one LZ4 frame.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: lz4 write: %w", errs.ErrCodec, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: lz4 close: %w", errs.ErrCodec, err)
	}

	return buf.Bytes(), nil
}
