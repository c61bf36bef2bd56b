package compress

import "github.com/arloliu/sevenpack/format"

// ZstdCodec compresses blocks into Zstandard frames.
//
// Frames are self-delimiting and concatenable, so multi-block folders need no
// end-marker handling. The coder uses the library default level; the archive
// preset only tunes the LZMA2 coder.
//
// Two implementations exist behind build tags: a cgo binding to libzstd and a
// pure-Go fallback used when cgo is disabled.
type ZstdCodec struct{}

var _ BlockCodec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// ID returns the Zstandard coder identifier.
func (c ZstdCodec) ID() format.CodecID {
	return format.CodecZstd
}

// Properties returns nil; the frame header carries everything the decoder
// needs.
func (c ZstdCodec) Properties() []byte {
	return nil
}

// EndMark reports that Zstandard frames carry no trailing marker byte.
func (c ZstdCodec) EndMark() bool {
	return false
}
