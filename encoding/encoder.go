// Package encoding implements the primitive encodings of the 7z end header:
// little-endian integers, the variable-length "packed number", MSB-first bit
// vectors, and UTF-16LE name strings.
//
// The Encoder is pure: it appends to a pooled in-memory buffer and performs
// no I/O. Higher layers hand the finished bytes to the writer core.
package encoding

import (
	"unicode/utf16"

	"github.com/arloliu/sevenpack/endian"
	"github.com/arloliu/sevenpack/internal/pool"
)

// MaxNumberSize is the longest encoded form of a packed number: a lead byte
// plus eight little-endian payload bytes.
const MaxNumberSize = 9

// Encoder appends 7z header primitives to an in-memory buffer.
//
// The encoder uses a pooled byte buffer with amortized growth. Call Reset
// when done to return the buffer to the pool; the encoder must not be used
// afterwards.
//
// Note: The Encoder is NOT safe for concurrent use.
type Encoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewEncoder creates a new Encoder using the specified endian engine.
// The 7z container requires the little-endian engine; the parameter exists so
// the primitives can be exercised under both byte orders.
func NewEncoder(engine endian.EndianEngine) *Encoder {
	return &Encoder{
		engine: engine,
		buf:    pool.GetHeaderBuffer(),
	}
}

// PutByte appends a single byte.
func (e *Encoder) PutByte(b byte) {
	e.buf.MustWriteByte(b)
}

// PutBytes appends raw bytes unchanged.
func (e *Encoder) PutBytes(p []byte) {
	e.buf.MustWrite(p)
}

// PutUint16 appends v in the encoder's byte order.
func (e *Encoder) PutUint16(v uint16) {
	e.buf.B = e.engine.AppendUint16(e.buf.B, v)
}

// PutUint32 appends v in the encoder's byte order.
func (e *Encoder) PutUint32(v uint32) {
	e.buf.B = e.engine.AppendUint32(e.buf.B, v)
}

// PutUint64 appends v in the encoder's byte order.
func (e *Encoder) PutUint64(v uint64) {
	e.buf.B = e.engine.AppendUint64(e.buf.B, v)
}

// PutNumber appends v in the 7z packed-number encoding.
//
// The lead byte carries k leading 1-bits to announce k little-endian payload
// bytes, and its remaining low bits hold the high bits of v. Values below 128
// need one byte; a full uint64 needs MaxNumberSize bytes.
func (e *Encoder) PutNumber(v uint64) {
	var scratch [MaxNumberSize]byte
	var first byte
	mask := byte(0x80)

	var n int
	for n = 0; n < 8; n++ {
		if v < uint64(1)<<uint(7*(n+1)) {
			first |= byte(v >> uint(8*n))
			break
		}
		first |= mask
		mask >>= 1
	}

	scratch[0] = first
	for i := 0; i < n; i++ {
		scratch[1+i] = byte(v >> uint(8*i))
	}

	e.buf.MustWrite(scratch[:1+n])
}

// PutBitVector appends bits packed MSB-first, padding the final byte with
// zero bits.
func (e *Encoder) PutBitVector(bits []bool) {
	var cur byte
	mask := byte(0x80)

	for _, bit := range bits {
		if bit {
			cur |= mask
		}
		mask >>= 1
		if mask == 0 {
			e.buf.MustWriteByte(cur)
			cur = 0
			mask = 0x80
		}
	}

	if mask != 0x80 {
		e.buf.MustWriteByte(cur)
	}
}

// PutName appends name as UTF-16 code units in the encoder's byte order,
// terminated by a zero code unit. Surrogate pairs are emitted for runes
// outside the basic multilingual plane.
func (e *Encoder) PutName(name string) {
	for _, u := range utf16.Encode([]rune(name)) {
		e.buf.B = e.engine.AppendUint16(e.buf.B, u)
	}
	e.buf.B = e.engine.AppendUint16(e.buf.B, 0)
}

// Engine returns the endian engine the encoder was created with.
func (e *Encoder) Engine() endian.EndianEngine {
	return e.engine
}

// Grow pre-allocates space for n more bytes.
func (e *Encoder) Grow(n int) {
	e.buf.Grow(n)
}

// Bytes returns the encoded data.
//
// The returned slice shares the underlying buffer with the encoder. Do not
// use it after calling Reset.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of bytes encoded so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Reset returns the buffer to the pool. The encoder must not be used again.
func (e *Encoder) Reset() {
	if e.buf != nil {
		pool.PutHeaderBuffer(e.buf)
		e.buf = nil
	}
}
