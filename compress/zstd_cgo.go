//go:build cgo

package compress

import "github.com/valyala/gozstd"

// Compress compresses the block into one Zstandard frame via libzstd.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}
