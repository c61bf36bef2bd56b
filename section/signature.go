package section

import (
	"github.com/arloliu/sevenpack/endian"
	"github.com/arloliu/sevenpack/format"
	"github.com/arloliu/sevenpack/internal/crc"
)

// StartHeader carries the three values patched into the signature header once
// the end header has been written: where the end header starts (relative to
// the end of the signature header), how long it is, and its digest.
type StartHeader struct {
	NextHeaderOffset uint64
	NextHeaderSize   uint64
	NextHeaderCRC    uint32
}

// Encode returns the complete 32-byte signature header: magic, format
// version, the digest of the trailing 20 bytes, then the three next-header
// fields.
func (sh StartHeader) Encode() []byte {
	engine := endian.GetLittleEndianEngine()

	tail := make([]byte, 0, 20)
	tail = engine.AppendUint64(tail, sh.NextHeaderOffset)
	tail = engine.AppendUint64(tail, sh.NextHeaderSize)
	tail = engine.AppendUint32(tail, sh.NextHeaderCRC)

	buf := make([]byte, 0, format.StartHeaderSize)
	buf = append(buf, format.Signature[:]...)
	buf = append(buf, format.VersionMajor, format.VersionMinor)
	buf = engine.AppendUint32(buf, crc.Checksum(tail))
	buf = append(buf, tail...)

	return buf
}
