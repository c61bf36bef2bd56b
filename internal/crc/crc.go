// Package crc implements the IEEE CRC-32 digest used by every checksum field
// of the 7z container: the start header check, folder digests, and per-file
// digests.
//
// The package wraps hash/crc32 for the sequential cases and adds Combine,
// which folds the digests of adjacent byte ranges into the digest of their
// concatenation. Combine is what lets worker goroutines checksum their own
// blocks in parallel while the writer still records one digest per file.
package crc

import "hash/crc32"

// Digest accumulates an IEEE CRC-32 incrementally across chunks.
//
// The zero value is ready to use. Digest is not safe for concurrent use; give
// each goroutine its own and merge the results with Combine.
type Digest struct {
	crc uint32
}

// Update adds the bytes of p to the running checksum.
func (d *Digest) Update(p []byte) {
	d.crc = crc32.Update(d.crc, crc32.IEEETable, p)
}

// Sum returns the checksum of all bytes seen so far.
func (d *Digest) Sum() uint32 {
	return d.crc
}

// Checksum returns the IEEE CRC-32 of p.
func Checksum(p []byte) uint32 {
	return crc32.ChecksumIEEE(p)
}

// Combine returns the checksum of the concatenation A||B given crc(A),
// crc(B), and len(B). It uses the GF(2) matrix method from zlib's
// crc32_combine: advancing crc(A) by len(B) zero bytes is a linear operation,
// so it can be applied as a sequence of squared polynomial matrices in
// O(log len(B)) steps.
func Combine(crcA, crcB uint32, lenB int64) uint32 {
	if lenB <= 0 {
		return crcA
	}

	var even, odd [32]uint32

	// Operator matrix for one zero bit: polynomial shift with reduction.
	odd[0] = 0xEDB88320
	row := uint32(1)
	for n := 1; n < 32; n++ {
		odd[n] = row
		row <<= 1
	}

	// Square to two zero bits, then to four; the first squaring in the loop
	// below yields the operator for one zero byte.
	gf2MatrixSquare(&even, &odd)
	gf2MatrixSquare(&odd, &even)

	// Apply len(B) zero bytes to crc(A), squaring the operator each round.
	for {
		gf2MatrixSquare(&even, &odd)
		if lenB&1 != 0 {
			crcA = gf2MatrixTimes(&even, crcA)
		}
		lenB >>= 1
		if lenB == 0 {
			break
		}

		gf2MatrixSquare(&odd, &even)
		if lenB&1 != 0 {
			crcA = gf2MatrixTimes(&odd, crcA)
		}
		lenB >>= 1
		if lenB == 0 {
			break
		}
	}

	return crcA ^ crcB
}

// gf2MatrixTimes multiplies the matrix with the vector over GF(2).
func gf2MatrixTimes(mat *[32]uint32, vec uint32) uint32 {
	var sum uint32
	for i := 0; vec != 0; vec >>= 1 {
		if vec&1 != 0 {
			sum ^= mat[i]
		}
		i++
	}

	return sum
}

// gf2MatrixSquare sets square to mat*mat over GF(2).
func gf2MatrixSquare(square, mat *[32]uint32) {
	for n := 0; n < 32; n++ {
		square[n] = gf2MatrixTimes(mat, mat[n])
	}
}
