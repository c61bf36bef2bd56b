package format

// CompressionType selects the coder used for every folder written by the
// archive writer.
type CompressionType uint8

const (
	CompressionLZMA2 CompressionType = 0x1 // CompressionLZMA2 represents the LZMA2 coder (default).
	CompressionCopy  CompressionType = 0x2 // CompressionCopy represents the store (no compression) coder.
	CompressionZstd  CompressionType = 0x3 // CompressionZstd represents the Zstandard coder.
	CompressionLZ4   CompressionType = 0x4 // CompressionLZ4 represents the LZ4 coder.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionLZMA2:
		return "LZMA2"
	case CompressionCopy:
		return "Copy"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// CodecID is the variable-length coder identifier stored in a folder's coder
// record. Standard coders use one byte, registered extension coders use four.
type CodecID []byte

var (
	// CodecCopy identifies the store coder.
	CodecCopy = CodecID{0x00}

	// CodecLZMA2 identifies the LZMA2 coder.
	CodecLZMA2 = CodecID{0x21}

	// CodecZstd identifies the Zstandard coder registered by the 7z-zstd fork.
	CodecZstd = CodecID{0x04, 0xF7, 0x11, 0x01}

	// CodecLZ4 identifies the LZ4 coder registered by the 7z-zstd fork.
	CodecLZ4 = CodecID{0x04, 0xF7, 0x11, 0x04}
)
