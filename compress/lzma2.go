package compress

import (
	"bytes"
	"fmt"

	"github.com/ulikunitz/xz/lzma"

	"github.com/arloliu/sevenpack/errs"
	"github.com/arloliu/sevenpack/format"
)

// presetDictSizes maps presets 0..9 to LZMA2 dictionary sizes, following the
// conventional preset ladder of the reference coder.
var presetDictSizes = [10]uint32{
	256 << 10, // 0
	1 << 20,   // 1
	2 << 20,   // 2
	4 << 20,   // 3
	4 << 20,   // 4
	8 << 20,   // 5
	8 << 20,   // 6
	16 << 20,  // 7
	32 << 20,  // 8
	64 << 20,  // 9
}

// DictSizeForPreset returns the LZMA2 dictionary size for a preset in 0..9.
func DictSizeForPreset(preset int) uint32 {
	return presetDictSizes[preset]
}

// EncodeDictSize maps a requested dictionary size to the one-byte LZMA2
// dictionary descriptor and the size that descriptor decodes back to.
//
// Descriptor b < 40 decodes to (2|(b&1)) << ((b>>1)+11); descriptor 40
// decodes to 0xFFFFFFFF. The smallest descriptor whose decoded size covers
// the request is chosen, so the effective size never shrinks below the
// requested one.
func EncodeDictSize(size uint32) (prop byte, effective uint32) {
	for b := byte(0); b < 40; b++ {
		decoded := uint32(2|(b&1)) << ((b >> 1) + 11)
		if decoded >= size {
			return b, decoded
		}
	}

	return 40, 0xFFFFFFFF
}

// LZMA2Codec compresses blocks into self-contained LZMA2 streams.
//
// Every stream starts with a dictionary-reset chunk and ends with the
// one-byte end marker, so streams of adjacent blocks concatenate into one
// valid LZMA2 stream once the interior markers are stripped.
type LZMA2Codec struct {
	dictSize uint32
	prop     byte
}

var _ BlockCodec = (*LZMA2Codec)(nil)

// NewLZMA2Codec creates an LZMA2 codec for the given configuration.
//
// The dictionary size is taken from cfg.DictSize when set, otherwise from the
// preset table, and clamped upward to the nearest representable size so the
// properties record always matches the coder state.
func NewLZMA2Codec(cfg Config) (*LZMA2Codec, error) {
	if cfg.Preset < 0 || cfg.Preset > 9 {
		return nil, fmt.Errorf("%w: preset %d out of range 0..9", errs.ErrCodec, cfg.Preset)
	}

	requested := cfg.DictSize
	if requested == 0 {
		requested = DictSizeForPreset(cfg.Preset)
	}
	prop, effective := EncodeDictSize(requested)

	return &LZMA2Codec{
		dictSize: effective,
		prop:     prop,
	}, nil
}

// DictSize returns the effective dictionary size after clamping.
func (c *LZMA2Codec) DictSize() uint32 {
	return c.dictSize
}

// ID returns the LZMA2 coder identifier.
func (c *LZMA2Codec) ID() format.CodecID {
	return format.CodecLZMA2
}

// Properties returns the one-byte dictionary descriptor.
func (c *LZMA2Codec) Properties() []byte {
	return []byte{c.prop}
}

// EndMark reports that LZMA2 streams end with the 0x00 terminator chunk.
func (c *LZMA2Codec) EndMark() bool {
	return true
}

// Compress encodes data into one LZMA2 stream with fresh coder state.
func (c *LZMA2Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	cfg := lzma.Writer2Config{DictCap: int(c.dictSize)}
	w, err := cfg.NewWriter2(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: lzma2 init: %w", errs.ErrCodec, err)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: lzma2 write: %w", errs.ErrCodec, err)
	}

	// Close flushes the final chunk and appends the end marker.
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: lzma2 close: %w", errs.ErrCodec, err)
	}

	return buf.Bytes(), nil
}
