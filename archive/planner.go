package archive

import (
	"fmt"
	"os"
)

// planEntries resolves the size of every disk entry and tiles all entries
// into the ordered block descriptor list handed to the scheduler.
//
// Disk entries are opened here but not read; workers read their blocks with
// positional reads on the shared handle. Empty entries yield no descriptors —
// they surface only in the file table, never as folders. Callers own the
// opened handles and release them with closeEntries.
func planEntries(entries []*entry) ([]blockDesc, error) {
	var blocks []blockDesc

	for i, ent := range entries {
		if !ent.memory() {
			f, err := os.Open(ent.path)
			if err != nil {
				return nil, fmt.Errorf("open source %q: %w", ent.path, err)
			}
			info, err := f.Stat()
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("stat source %q: %w", ent.path, err)
			}
			ent.file = f
			ent.size = uint64(info.Size())
		}

		ent.blocks = 0
		for offset := uint64(0); offset < ent.size; offset += ent.blockSize {
			length := ent.blockSize
			if rest := ent.size - offset; rest < length {
				length = rest
			}
			blocks = append(blocks, blockDesc{entry: i, offset: offset, length: length})
			ent.blocks++
		}
	}

	return blocks, nil
}

// closeEntries releases the source handles opened by planEntries.
func closeEntries(entries []*entry) {
	for _, ent := range entries {
		if ent.file != nil {
			ent.file.Close()
			ent.file = nil
		}
	}
}
