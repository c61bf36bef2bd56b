package section

import (
	"fmt"

	"github.com/arloliu/sevenpack/encoding"
	"github.com/arloliu/sevenpack/errs"
	"github.com/arloliu/sevenpack/format"
)

// maxCoderIDLen is the widest coder identifier the coder-record flag byte can
// describe.
const maxCoderIDLen = 0x0F

// Folder describes one coder chain operating over one packed stream, the only
// folder shape this writer produces: a single coder, one input, one output.
type Folder struct {
	// CoderID identifies the coder.
	CoderID format.CodecID

	// Properties is the coder properties record, nil when the coder has none.
	Properties []byte

	// UnpackSize is the byte length of the folder's decoded output.
	UnpackSize uint64

	// PackSize is the byte length of the folder's packed stream as written.
	PackSize uint64

	// CRC is the IEEE CRC-32 of the decoded output.
	CRC uint32
}

// StreamsInfo is the main streams section of the end header: the pack sizes
// of all folders followed by their coder records, unpack sizes, and digests.
type StreamsInfo struct {
	Folders []Folder
}

// EncodeTo appends the streams info structure to enc.
func (si *StreamsInfo) EncodeTo(enc *encoding.Encoder) error {
	si.encodePackInfo(enc)
	return si.encodeUnpackInfo(enc)
}

// encodePackInfo emits the pack position, stream count, and packed sizes.
// The pack position is always zero: packed streams start right after the
// signature header, which is where offsets are measured from.
func (si *StreamsInfo) encodePackInfo(enc *encoding.Encoder) {
	enc.PutByte(byte(format.IDPackInfo))
	enc.PutNumber(0)
	enc.PutNumber(uint64(len(si.Folders)))

	enc.PutByte(byte(format.IDSize))
	for i := range si.Folders {
		enc.PutNumber(si.Folders[i].PackSize)
	}

	enc.PutByte(byte(format.IDEnd))
}

// encodeUnpackInfo emits the folder list with coder records, the per-folder
// unpack sizes, and the folder digests.
func (si *StreamsInfo) encodeUnpackInfo(enc *encoding.Encoder) error {
	enc.PutByte(byte(format.IDUnpackInfo))

	enc.PutByte(byte(format.IDFolder))
	enc.PutNumber(uint64(len(si.Folders)))
	enc.PutByte(0) // folder records stored inline, not in an external stream
	for i := range si.Folders {
		if err := encodeCoder(enc, &si.Folders[i]); err != nil {
			return err
		}
	}

	enc.PutByte(byte(format.IDCodersUnpackSize))
	for i := range si.Folders {
		enc.PutNumber(si.Folders[i].UnpackSize)
	}

	enc.PutByte(byte(format.IDCRC))
	enc.PutByte(1) // digests defined for every folder
	for i := range si.Folders {
		enc.PutUint32(si.Folders[i].CRC)
	}

	enc.PutByte(byte(format.IDEnd))
	enc.PutByte(byte(format.IDEnd))

	return nil
}

// encodeCoder emits one folder's coder record. With a single coder there are
// no bind pairs and no packed-stream index list.
func encodeCoder(enc *encoding.Encoder, f *Folder) error {
	idLen := len(f.CoderID)
	if idLen == 0 || idLen > maxCoderIDLen {
		return fmt.Errorf("%w: coder ID length %d", errs.ErrFormat, idLen)
	}

	enc.PutNumber(1) // coders in this folder

	flags := byte(idLen)
	if len(f.Properties) > 0 {
		flags |= 0x20
	}
	enc.PutByte(flags)
	enc.PutBytes(f.CoderID)

	if len(f.Properties) > 0 {
		enc.PutNumber(uint64(len(f.Properties)))
		enc.PutBytes(f.Properties)
	}

	return nil
}
