package section

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sevenpack/encoding"
	"github.com/arloliu/sevenpack/endian"
	"github.com/arloliu/sevenpack/errs"
	"github.com/arloliu/sevenpack/format"
	"github.com/arloliu/sevenpack/internal/crc"
)

func encodeSection(t *testing.T, fill func(enc *encoding.Encoder) error) []byte {
	t.Helper()

	enc := encoding.NewEncoder(endian.GetLittleEndianEngine())
	defer enc.Reset()

	require.NoError(t, fill(enc))

	out := make([]byte, enc.Len())
	copy(out, enc.Bytes())

	return out
}

func TestStreamsInfo_EncodeTo(t *testing.T) {
	si := &StreamsInfo{
		Folders: []Folder{{
			CoderID:    format.CodecLZMA2,
			Properties: []byte{0x16},
			UnpackSize: 13,
			PackSize:   21,
			CRC:        0xAABBCCDD,
		}},
	}

	got := encodeSection(t, si.EncodeTo)

	want := []byte{
		// pack info
		0x06,       // kPackInfo
		0x00,       // pack position
		0x01,       // one packed stream
		0x09, 0x15, // kSize, 21
		0x00, // kEnd
		// unpack info
		0x07,             // kUnpackInfo
		0x0B, 0x01, 0x00, // kFolder, one folder, inline
		0x01,       // one coder
		0x21,       // flags: 1-byte ID, has properties
		0x21,       // LZMA2 coder ID
		0x01, 0x16, // properties length, dictionary byte
		0x0C, 0x0D, // kCodersUnpackSize, 13
		0x0A, 0x01, 0xDD, 0xCC, 0xBB, 0xAA, // kCRC, all defined, digest LE
		0x00, // kEnd (unpack info)
		0x00, // kEnd (streams info)
	}
	require.Equal(t, want, got)
}

func TestStreamsInfo_MultipleFolders(t *testing.T) {
	si := &StreamsInfo{
		Folders: []Folder{
			{CoderID: format.CodecCopy, UnpackSize: 5, PackSize: 5, CRC: 1},
			{CoderID: format.CodecZstd, UnpackSize: 200, PackSize: 150, CRC: 2},
		},
	}

	got := encodeSection(t, si.EncodeTo)

	// Spot-check structure: two pack sizes, a 1-byte copy record with no
	// properties, then a 4-byte zstd ID record.
	require.Equal(t, byte(0x06), got[0])
	require.Equal(t, byte(0x02), got[2], "packed stream count")
	require.Contains(t, string(got), string([]byte{0x01, 0x04, 0x04, 0xF7, 0x11, 0x01}),
		"zstd coder record: one coder, 4-byte ID, no properties")
}

func TestEncodeCoder_RejectsOversizeID(t *testing.T) {
	si := &StreamsInfo{
		Folders: []Folder{{CoderID: make(format.CodecID, 16), UnpackSize: 1, PackSize: 1}},
	}

	enc := encoding.NewEncoder(endian.GetLittleEndianEngine())
	defer enc.Reset()

	require.ErrorIs(t, si.EncodeTo(enc), errs.ErrFormat)
}

func TestFilesInfo_NamesOnly(t *testing.T) {
	fi := &FilesInfo{Files: []File{{Name: "a"}, {Name: "b"}}}

	got := encodeSection(t, fi.EncodeTo)

	want := []byte{
		0x05, // kFilesInfo
		0x02, // two files
		0x11, 0x09, // kName, payload length
		0x00,                   // inline
		'a', 0x00, 0x00, 0x00, // "a"
		'b', 0x00, 0x00, 0x00, // "b"
		0x00, // kEnd
	}
	require.Equal(t, want, got)
}

func TestFilesInfo_EmptyMarkers(t *testing.T) {
	fi := &FilesInfo{Files: []File{
		{Name: "data"},
		{Name: "empty", EmptyStream: true},
	}}

	got := encodeSection(t, fi.EncodeTo)

	require.Equal(t, byte(0x05), got[0])
	require.Equal(t, byte(0x02), got[1])
	// kEmptyStream: second file only -> bit vector 0b01000000.
	require.Equal(t, []byte{0x0E, 0x01, 0x40}, got[2:5])
	// kEmptyFile over the one empty-stream file: all set.
	require.Equal(t, []byte{0x0F, 0x01, 0x80}, got[5:8])
	// Names follow.
	require.Equal(t, byte(0x11), got[8])
}

func TestFilesInfo_MTimeAllDefined(t *testing.T) {
	epoch := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	fi := &FilesInfo{Files: []File{{Name: "f", MTime: epoch, HasMTime: true}}}

	got := encodeSection(t, fi.EncodeTo)

	// Locate the kMTime property after the names block.
	idx := -1
	for i, b := range got {
		if b == byte(format.IDMTime) {
			idx = i
			break
		}
	}
	require.NotEqual(t, -1, idx)

	// Payload: all-defined byte, inline byte, one FILETIME.
	require.Equal(t, byte(10), got[idx+1], "payload length")
	require.Equal(t, byte(1), got[idx+2], "all defined")
	require.Equal(t, byte(0), got[idx+3], "inline")
	ft := binary.LittleEndian.Uint64(got[idx+4 : idx+12])
	require.Equal(t, uint64(116444736000000000), ft, "Unix epoch as FILETIME")
}

func TestFilesInfo_MTimePartiallyDefined(t *testing.T) {
	now := time.Now()
	fi := &FilesInfo{Files: []File{
		{Name: "with", MTime: now, HasMTime: true},
		{Name: "without"},
	}}

	got := encodeSection(t, fi.EncodeTo)

	idx := -1
	for i, b := range got {
		if b == byte(format.IDMTime) {
			idx = i
			break
		}
	}
	require.NotEqual(t, -1, idx)

	// Payload: defined flag 0, bit vector 0b10000000, inline byte, one time.
	require.Equal(t, byte(11), got[idx+1], "payload length")
	require.Equal(t, byte(0), got[idx+2], "not all defined")
	require.Equal(t, byte(0x80), got[idx+3], "defined bit vector")
	require.Equal(t, byte(0), got[idx+4], "inline")
}

func TestHeader_Encode(t *testing.T) {
	h := &Header{
		Streams: &StreamsInfo{
			Folders: []Folder{{CoderID: format.CodecCopy, UnpackSize: 3, PackSize: 3, CRC: 7}},
		},
		Files: FilesInfo{Files: []File{{Name: "x"}}},
	}

	got, err := h.Encode()
	require.NoError(t, err)

	require.Equal(t, byte(format.IDHeader), got[0])
	require.Equal(t, byte(format.IDMainStreamsInfo), got[1])
	require.Equal(t, byte(format.IDEnd), got[len(got)-1])
}

func TestHeader_Encode_EmptyArchive(t *testing.T) {
	h := &Header{}

	got, err := h.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{byte(format.IDHeader), byte(format.IDEnd)}, got)
}

func TestHeader_Encode_OnlyEmptyFiles(t *testing.T) {
	h := &Header{
		Files: FilesInfo{Files: []File{{Name: "e", EmptyStream: true}}},
	}

	got, err := h.Encode()
	require.NoError(t, err)

	// No main streams info between kHeader and kFilesInfo.
	require.Equal(t, byte(format.IDHeader), got[0])
	require.Equal(t, byte(format.IDFilesInfo), got[1])
}

func TestStartHeader_Encode(t *testing.T) {
	sh := StartHeader{
		NextHeaderOffset: 0x1122,
		NextHeaderSize:   0x33,
		NextHeaderCRC:    0x44556677,
	}

	got := sh.Encode()
	require.Len(t, got, format.StartHeaderSize)

	require.Equal(t, format.Signature[:], got[:6])
	require.Equal(t, byte(0), got[6])
	require.Equal(t, byte(4), got[7])

	storedCRC := binary.LittleEndian.Uint32(got[8:12])
	require.Equal(t, crc.Checksum(got[12:32]), storedCRC)

	require.Equal(t, uint64(0x1122), binary.LittleEndian.Uint64(got[12:20]))
	require.Equal(t, uint64(0x33), binary.LittleEndian.Uint64(got[20:28]))
	require.Equal(t, uint32(0x44556677), binary.LittleEndian.Uint32(got[28:32]))
}
