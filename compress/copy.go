package compress

import "github.com/arloliu/sevenpack/format"

// CopyCodec stores blocks without compression.
//
// It is useful for payloads that are already compressed or for measuring the
// container overhead without coder cost.
type CopyCodec struct{}

var _ BlockCodec = (*CopyCodec)(nil)

// NewCopyCodec creates a new store codec.
func NewCopyCodec() CopyCodec {
	return CopyCodec{}
}

// ID returns the store coder identifier.
func (c CopyCodec) ID() format.CodecID {
	return format.CodecCopy
}

// Properties returns nil; the store coder carries no properties record.
func (c CopyCodec) Properties() []byte {
	return nil
}

// EndMark reports that stored streams carry no terminator.
func (c CopyCodec) EndMark() bool {
	return false
}

// Compress returns the input data directly without copying.
//
// The returned slice shares the same underlying memory as the input. Callers
// must not modify the input data while the returned slice is in use.
func (c CopyCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}
