package section

import (
	"github.com/arloliu/sevenpack/encoding"
	"github.com/arloliu/sevenpack/endian"
	"github.com/arloliu/sevenpack/format"
)

// Header is the complete end header of an archive.
type Header struct {
	// Streams holds the main streams info; nil (or empty) when the archive
	// has no folders, as with an archive of only empty files.
	Streams *StreamsInfo

	// Files is the file table.
	Files FilesInfo
}

// Encode serializes the end header and returns the owned byte slice handed to
// the writer core. The writer measures and checksums exactly these bytes for
// the signature header.
func (h *Header) Encode() ([]byte, error) {
	enc := encoding.NewEncoder(endian.GetLittleEndianEngine())
	defer enc.Reset()

	enc.PutByte(byte(format.IDHeader))

	if h.Streams != nil && len(h.Streams.Folders) > 0 {
		enc.PutByte(byte(format.IDMainStreamsInfo))
		if err := h.Streams.EncodeTo(enc); err != nil {
			return nil, err
		}
	}

	if len(h.Files.Files) > 0 {
		if err := h.Files.EncodeTo(enc); err != nil {
			return nil, err
		}
	}

	enc.PutByte(byte(format.IDEnd))

	out := make([]byte, enc.Len())
	copy(out, enc.Bytes())

	return out, nil
}
