package format

// Signature is the 6-byte magic at offset 0 of every 7z archive.
var Signature = [6]byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}

// Container format version written into the signature header.
const (
	VersionMajor = 0
	VersionMinor = 4
)

// StartHeaderSize is the fixed size of the signature header reserved at the
// front of the archive. The pack area begins immediately after it, so every
// next-header offset is relative to this boundary.
const StartHeaderSize = 32

// PropertyID identifies a structure or property block inside the end header.
type PropertyID byte

const (
	IDEnd              PropertyID = 0x00
	IDHeader           PropertyID = 0x01
	IDMainStreamsInfo  PropertyID = 0x04
	IDFilesInfo        PropertyID = 0x05
	IDPackInfo         PropertyID = 0x06
	IDUnpackInfo       PropertyID = 0x07
	IDSubStreamsInfo   PropertyID = 0x08
	IDSize             PropertyID = 0x09
	IDCRC              PropertyID = 0x0A
	IDFolder           PropertyID = 0x0B
	IDCodersUnpackSize PropertyID = 0x0C
	IDNumUnpackStream  PropertyID = 0x0D
	IDEmptyStream      PropertyID = 0x0E
	IDEmptyFile        PropertyID = 0x0F
	IDAnti             PropertyID = 0x10
	IDName             PropertyID = 0x11
	IDCTime            PropertyID = 0x12
	IDATime            PropertyID = 0x13
	IDMTime            PropertyID = 0x14
	IDWinAttrib        PropertyID = 0x15
	IDEncodedHeader    PropertyID = 0x17
	IDDummy            PropertyID = 0x19
)
