package archive

import (
	"fmt"
	"runtime"

	"github.com/arloliu/sevenpack/compress"
	"github.com/arloliu/sevenpack/errs"
	"github.com/arloliu/sevenpack/format"
	"github.com/arloliu/sevenpack/internal/options"
)

const (
	// MinBlockSize is the smallest accepted intra-file block size.
	MinBlockSize = 1 << 20

	// DefaultPreset is the compression preset applied when none is given.
	DefaultPreset = 6
)

// WriterConfig holds the writer tunables. Entries capture the codec
// configuration current at their enqueue, so SetCompression only affects
// entries added afterwards.
type WriterConfig struct {
	preset      int
	dictSize    uint32
	blockSize   uint64
	workers     int // 0 selects the logical CPU count
	compression format.CompressionType
	modTimes    bool
}

func newWriterConfig() *WriterConfig {
	return &WriterConfig{
		preset:      DefaultPreset,
		compression: format.CompressionLZMA2,
		modTimes:    true,
	}
}

func (c *WriterConfig) setPreset(preset int) error {
	if preset < 0 || preset > 9 {
		return fmt.Errorf("preset %d out of range 0..9", preset)
	}
	c.preset = preset

	return nil
}

func (c *WriterConfig) setDictSize(size uint32) error {
	if size == 0 {
		return fmt.Errorf("dictionary size must not be zero")
	}
	c.dictSize = size

	return nil
}

func (c *WriterConfig) setBlockSize(size uint64) error {
	if size < MinBlockSize {
		return fmt.Errorf("block size %d below minimum %d", size, MinBlockSize)
	}
	c.blockSize = size

	return nil
}

func (c *WriterConfig) setWorkers(workers int) error {
	if workers < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidWorkerCount, workers)
	}
	c.workers = workers

	return nil
}

func (c *WriterConfig) setCompression(compression format.CompressionType) error {
	switch compression {
	case format.CompressionLZMA2, format.CompressionCopy, format.CompressionZstd, format.CompressionLZ4:
		c.compression = compression
		return nil
	default:
		return fmt.Errorf("invalid compression: %v", compression)
	}
}

// effectiveDictSize resolves the dictionary size after preset defaulting and
// clamping to a representable LZMA2 size.
func (c *WriterConfig) effectiveDictSize() uint32 {
	requested := c.dictSize
	if requested == 0 {
		requested = compress.DictSizeForPreset(c.preset)
	}
	_, effective := compress.EncodeDictSize(requested)

	return effective
}

// effectiveBlockSize resolves the intra-file block size: the configured value
// raised to the dictionary size if needed, or twice the dictionary size with
// a 1 MiB floor when unset.
func (c *WriterConfig) effectiveBlockSize() uint64 {
	dict := uint64(c.effectiveDictSize())

	if c.blockSize != 0 {
		if c.blockSize < dict {
			return dict
		}
		return c.blockSize
	}

	size := 2 * dict
	if size < MinBlockSize {
		size = MinBlockSize
	}

	return size
}

// effectiveWorkers resolves the worker pool size; zero means one worker per
// logical CPU.
func (c *WriterConfig) effectiveWorkers() int {
	if c.workers > 0 {
		return c.workers
	}

	return runtime.NumCPU()
}

// newCodec builds the block codec an entry captures at enqueue.
func (c *WriterConfig) newCodec() (compress.BlockCodec, error) {
	return compress.NewBlockCodec(c.compression, compress.Config{
		Preset:   c.preset,
		DictSize: c.dictSize,
	})
}

// Option represents a functional option for configuring the archive writer.
type Option = options.Option[*WriterConfig]

// WithPreset sets the compression preset, 0 (fastest) through 9 (best).
func WithPreset(preset int) Option {
	return options.New(func(c *WriterConfig) error {
		return c.setPreset(preset)
	})
}

// WithDictSize overrides the preset dictionary size in bytes. The value is
// clamped upward to the nearest size the LZMA2 properties byte can represent.
func WithDictSize(size uint32) Option {
	return options.New(func(c *WriterConfig) error {
		return c.setDictSize(size)
	})
}

// WithBlockSize sets the intra-file block size in bytes. Each block is
// compressed independently, so the block size bounds both parallelism and
// per-worker memory. The default is twice the dictionary size, at least 1 MiB.
func WithBlockSize(size uint64) Option {
	return options.New(func(c *WriterConfig) error {
		return c.setBlockSize(size)
	})
}

// WithWorkers sets the worker pool size. Zero selects one worker per logical
// CPU, which is the default.
func WithWorkers(workers int) Option {
	return options.New(func(c *WriterConfig) error {
		return c.setWorkers(workers)
	})
}

// WithCompression selects the folder coder. The default is LZMA2.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *WriterConfig) error {
		return c.setCompression(compression)
	})
}

// WithModTimes enables or disables recording modification times for entries
// added with AddFile. Enabled by default.
func WithModTimes(enabled bool) Option {
	return options.NoError(func(c *WriterConfig) {
		c.modTimes = enabled
	})
}
