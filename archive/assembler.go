package archive

import (
	"fmt"

	"github.com/arloliu/sevenpack/errs"
	"github.com/arloliu/sevenpack/internal/crc"
)

// folderAssembler turns the compressed blocks of one entry into a single
// folder payload.
//
// Codecs that terminate each stream with an end-marker byte (LZMA2) produce
// blocks that only concatenate once the interior markers are stripped: every
// block's marker is removed except the final block's, which terminates the
// folder. The assembler validates that each such block actually ends with
// the marker, tracks the resulting packed size, and folds the per-block
// digests into the folder digest.
type folderAssembler struct {
	endMark bool
	total   int
	seen    int

	packSize uint64
	unpacked uint64
	digest   uint32
}

func newFolderAssembler(ent *entry) *folderAssembler {
	return &folderAssembler{
		endMark: ent.codec.EndMark(),
		total:   ent.blocks,
	}
}

// add accepts the next compressed block in order and returns the bytes to
// append to the folder payload, with any interior end marker removed.
func (a *folderAssembler) add(data []byte, blockCRC uint32, blockLen uint64) ([]byte, error) {
	a.seen++
	final := a.seen == a.total

	if a.endMark {
		if len(data) == 0 || data[len(data)-1] != 0x00 {
			return nil, fmt.Errorf("%w: block %d of %d", errs.ErrMissingEndMark, a.seen-1, a.total)
		}
		if !final {
			data = data[:len(data)-1]
		}
	}

	a.packSize += uint64(len(data))
	a.digest = crc.Combine(a.digest, blockCRC, int64(blockLen))
	a.unpacked += blockLen

	return data, nil
}

// complete reports whether every expected block has been assembled.
func (a *folderAssembler) complete() bool {
	return a.seen == a.total
}
