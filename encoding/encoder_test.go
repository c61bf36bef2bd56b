package encoding

import (
	"testing"

	"github.com/arloliu/sevenpack/endian"
	"github.com/stretchr/testify/require"
)

func encodeNumber(v uint64) []byte {
	e := NewEncoder(endian.GetLittleEndianEngine())
	defer e.Reset()
	e.PutNumber(v)

	out := make([]byte, e.Len())
	copy(out, e.Bytes())

	return out
}

func TestPutNumber(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"max one byte", 127, []byte{0x7F}},
		{"smallest two bytes", 128, []byte{0x80, 0x80}},
		{"max two bytes", 16383, []byte{0xBF, 0xFF}},
		{"smallest three bytes", 16384, []byte{0xC0, 0x00, 0x40}},
		{"2^32", 1 << 32, []byte{0xF1, 0x00, 0x00, 0x00, 0x00}},
		{"2^56-1", 1<<56 - 1, []byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"2^63", 1 << 63, []byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}},
		{"max uint64", ^uint64(0), []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, encodeNumber(tt.value))
		})
	}
}

func TestPutNumber_LeadByteBoundaries(t *testing.T) {
	// Each payload width starts exactly where the previous one runs out.
	for k := 1; k < 8; k++ {
		v := uint64(1) << uint(7*k)
		encoded := encodeNumber(v)
		require.Len(t, encoded, k+1, "value 2^%d", 7*k)

		encodedBelow := encodeNumber(v - 1)
		require.Len(t, encodedBelow, k, "value 2^%d-1", 7*k)
	}
}

func TestPutPrimitives(t *testing.T) {
	e := NewEncoder(endian.GetLittleEndianEngine())
	defer e.Reset()

	e.PutByte(0xAB)
	e.PutUint16(0x0102)
	e.PutUint32(0x03040506)
	e.PutUint64(0x0708090A0B0C0D0E)
	e.PutBytes([]byte{0xFF})

	require.Equal(t, []byte{
		0xAB,
		0x02, 0x01,
		0x06, 0x05, 0x04, 0x03,
		0x0E, 0x0D, 0x0C, 0x0B, 0x0A, 0x09, 0x08, 0x07,
		0xFF,
	}, e.Bytes())
}

func TestPutBitVector(t *testing.T) {
	e := NewEncoder(endian.GetLittleEndianEngine())
	defer e.Reset()

	// Nine bits: 1,0,1 then zeros, last bit set. MSB-first packing.
	bits := make([]bool, 9)
	bits[0], bits[2], bits[8] = true, true, true
	e.PutBitVector(bits)

	require.Equal(t, []byte{0xA0, 0x80}, e.Bytes())
}

func TestPutBitVector_WholeByte(t *testing.T) {
	e := NewEncoder(endian.GetLittleEndianEngine())
	defer e.Reset()

	bits := []bool{true, true, true, true, true, true, true, true}
	e.PutBitVector(bits)
	require.Equal(t, []byte{0xFF}, e.Bytes())
}

func TestPutBitVector_Empty(t *testing.T) {
	e := NewEncoder(endian.GetLittleEndianEngine())
	defer e.Reset()

	e.PutBitVector(nil)
	require.Equal(t, 0, e.Len())
}

func TestPutName(t *testing.T) {
	e := NewEncoder(endian.GetLittleEndianEngine())
	defer e.Reset()

	e.PutName("ab")
	require.Equal(t, []byte{'a', 0x00, 'b', 0x00, 0x00, 0x00}, e.Bytes())
}

func TestPutName_NonASCII(t *testing.T) {
	e := NewEncoder(endian.GetLittleEndianEngine())
	defer e.Reset()

	// U+00E9 fits one code unit; U+1F600 needs a surrogate pair.
	e.PutName("é\U0001F600")
	require.Equal(t, []byte{
		0xE9, 0x00,
		0x3D, 0xD8, 0x00, 0xDE,
		0x00, 0x00,
	}, e.Bytes())
}

func TestPutName_Empty(t *testing.T) {
	e := NewEncoder(endian.GetLittleEndianEngine())
	defer e.Reset()

	e.PutName("")
	require.Equal(t, []byte{0x00, 0x00}, e.Bytes())
}
