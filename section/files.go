package section

import (
	"time"

	"github.com/arloliu/sevenpack/encoding"
	"github.com/arloliu/sevenpack/format"
)

// filetimeEpochDelta is the number of 100ns ticks between the Windows
// FILETIME epoch (1601-01-01) and the Unix epoch (1970-01-01).
const filetimeEpochDelta = 116444736000000000

// File is one entry of the files info section, in archive order.
type File struct {
	// Name is the archive name, path separators included verbatim.
	Name string

	// EmptyStream marks a zero-byte file, which has no folder behind it.
	EmptyStream bool

	// MTime is the modification time; only meaningful when HasMTime is set.
	MTime    time.Time
	HasMTime bool
}

// FilesInfo is the file table of the end header.
type FilesInfo struct {
	Files []File
}

// EncodeTo appends the files info structure to enc.
//
// Property blocks appear in a fixed order: empty-stream and empty-file bit
// vectors (only when the archive holds empty files), names, then
// modification times (only when at least one entry carries one).
func (fi *FilesInfo) EncodeTo(enc *encoding.Encoder) error {
	enc.PutByte(byte(format.IDFilesInfo))
	enc.PutNumber(uint64(len(fi.Files)))

	fi.encodeEmptyMarkers(enc)
	fi.encodeNames(enc)
	fi.encodeMTimes(enc)

	enc.PutByte(byte(format.IDEnd))

	return nil
}

// putProperty emits one typed property block: type byte, payload length as a
// packed number, then the payload built by fill.
func putProperty(enc *encoding.Encoder, id format.PropertyID, fill func(sub *encoding.Encoder)) {
	sub := encoding.NewEncoder(enc.Engine())
	defer sub.Reset()

	fill(sub)

	enc.PutByte(byte(id))
	enc.PutNumber(uint64(sub.Len()))
	enc.PutBytes(sub.Bytes())
}

func (fi *FilesInfo) encodeEmptyMarkers(enc *encoding.Encoder) {
	emptyCount := 0
	for i := range fi.Files {
		if fi.Files[i].EmptyStream {
			emptyCount++
		}
	}
	if emptyCount == 0 {
		return
	}

	putProperty(enc, format.IDEmptyStream, func(sub *encoding.Encoder) {
		bits := make([]bool, len(fi.Files))
		for i := range fi.Files {
			bits[i] = fi.Files[i].EmptyStream
		}
		sub.PutBitVector(bits)
	})

	// Every empty stream is an empty file: directories are never recorded,
	// so the vector over the empty-stream files is all ones.
	putProperty(enc, format.IDEmptyFile, func(sub *encoding.Encoder) {
		bits := make([]bool, emptyCount)
		for i := range bits {
			bits[i] = true
		}
		sub.PutBitVector(bits)
	})
}

func (fi *FilesInfo) encodeNames(enc *encoding.Encoder) {
	putProperty(enc, format.IDName, func(sub *encoding.Encoder) {
		sub.PutByte(0) // names stored inline, not in an external stream
		for i := range fi.Files {
			sub.PutName(fi.Files[i].Name)
		}
	})
}

func (fi *FilesInfo) encodeMTimes(enc *encoding.Encoder) {
	defined := 0
	for i := range fi.Files {
		if fi.Files[i].HasMTime {
			defined++
		}
	}
	if defined == 0 {
		return
	}

	putProperty(enc, format.IDMTime, func(sub *encoding.Encoder) {
		if defined == len(fi.Files) {
			sub.PutByte(1) // all times defined
		} else {
			sub.PutByte(0)
			bits := make([]bool, len(fi.Files))
			for i := range fi.Files {
				bits[i] = fi.Files[i].HasMTime
			}
			sub.PutBitVector(bits)
		}

		sub.PutByte(0) // times stored inline, not in an external stream
		for i := range fi.Files {
			if fi.Files[i].HasMTime {
				sub.PutUint64(toFiletime(fi.Files[i].MTime))
			}
		}
	})
}

// toFiletime converts t to a Windows FILETIME: 100ns ticks since 1601.
func toFiletime(t time.Time) uint64 {
	return uint64(t.UnixNano()/100 + filetimeEpochDelta)
}
