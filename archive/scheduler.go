package archive

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/sevenpack/errs"
	"github.com/arloliu/sevenpack/internal/crc"
)

// jobResult carries one compressed block together with the digest of its
// uncompressed bytes, or the failure that produced neither.
type jobResult struct {
	data []byte
	crc  uint32
	err  error
}

// job pairs a block descriptor with the slot its worker deposits into. The
// queue of jobs in submission order is what restores ordering regardless of
// completion order: the consumer takes jobs from the queue and waits on each
// job's slot in turn.
type job struct {
	desc blockDesc
	done chan jobResult
}

// scheduler owns the fixed worker pool that compresses blocks in parallel.
//
// It knows nothing about the container format and never touches the output
// sink; it hands compressed block bytes back to the single consumer in
// submission order. Lookahead is bounded by the pool size — the feeder blocks
// once the ordered queue is full, so at most a pool's worth of compressed
// blocks is retained ahead of the consumer.
type scheduler struct {
	entries []*entry
	ctx     context.Context
	cancel  context.CancelFunc
	group   *errgroup.Group
	jobs    chan *job
	ordered chan *job
}

// startScheduler launches the worker pool and begins feeding it blocks.
// Callers must consume results with next until it reports completion, then
// call wait; on error they call stop instead.
func startScheduler(parent context.Context, entries []*entry, blocks []blockDesc, workers int) *scheduler {
	ctx, cancel := context.WithCancel(parent)
	group, ctx := errgroup.WithContext(ctx)

	s := &scheduler{
		entries: entries,
		ctx:     ctx,
		cancel:  cancel,
		group:   group,
		jobs:    make(chan *job),
		ordered: make(chan *job, workers),
	}

	for i := 0; i < workers; i++ {
		group.Go(s.worker)
	}
	go s.feed(blocks)

	return s
}

// feed enqueues every block in submission order, first into the ordered
// queue the consumer drains, then to the workers.
func (s *scheduler) feed(blocks []blockDesc) {
	defer close(s.jobs)
	defer close(s.ordered)

	for i := range blocks {
		j := &job{desc: blocks[i], done: make(chan jobResult, 1)}

		select {
		case s.ordered <- j:
		case <-s.ctx.Done():
			return
		}

		select {
		case s.jobs <- j:
		case <-s.ctx.Done():
			return
		}
	}
}

// worker pulls jobs until the queue closes or the scheduler is cancelled.
// Block failures travel through the job's result slot, not the pool error,
// so the consumer surfaces them in submission order.
func (s *scheduler) worker() error {
	for {
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		case j, ok := <-s.jobs:
			if !ok {
				return nil
			}
			j.done <- s.compressBlock(j.desc)
		}
	}
}

// compressBlock reads the block's input bytes and runs the entry's codec on
// them, returning the compressed stream and the digest of the input.
func (s *scheduler) compressBlock(desc blockDesc) jobResult {
	ent := s.entries[desc.entry]

	var src []byte
	if ent.memory() {
		src = ent.data[desc.offset : desc.offset+desc.length]
	} else {
		buf := make([]byte, desc.length)
		if _, err := ent.file.ReadAt(buf, int64(desc.offset)); err != nil {
			return jobResult{err: fmt.Errorf("read block of %q: %w", ent.name, err)}
		}
		src = buf
	}

	digest := crc.Checksum(src)

	data, err := ent.codec.Compress(src)
	if err != nil {
		return jobResult{err: err}
	}

	return jobResult{data: data, crc: digest}
}

// next blocks until the next block in submission order is ready. The
// returned ok is false once every block has been delivered.
func (s *scheduler) next() (desc blockDesc, res jobResult, ok bool) {
	j, open := <-s.ordered
	if !open {
		return blockDesc{}, jobResult{}, false
	}

	select {
	case res = <-j.done:
		return j.desc, res, true
	case <-s.ctx.Done():
		return j.desc, jobResult{err: s.ctx.Err()}, true
	}
}

// wait blocks until the pool drains after successful consumption.
func (s *scheduler) wait() error {
	err := s.group.Wait()
	s.cancel()

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", errs.ErrThreading, err)
	}

	return nil
}

// stop cancels outstanding work and waits for the pool to drain. In-flight
// blocks finish compressing but their outputs are discarded.
func (s *scheduler) stop() {
	s.cancel()
	_ = s.group.Wait()
}
