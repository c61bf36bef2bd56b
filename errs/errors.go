// Package errs defines the sentinel errors shared across the sevenpack
// packages.
//
// Failures surfaced by the module wrap one of these sentinels (or, for I/O
// failures, the underlying error from the sink or the source file), so
// callers can classify them with errors.Is without parsing messages. Option
// validation errors for the preset, dictionary size, block size, and
// compression type are plain errors that wrap no sentinel.
package errs

import "errors"

var (
	// ErrInvalidState indicates an operation was called in a writer state
	// that does not permit it.
	ErrInvalidState = errors.New("operation not allowed in current writer state")

	// ErrWriterFinished indicates the writer already completed successfully
	// and cannot accept further operations.
	ErrWriterFinished = errors.New("writer already finished")

	// ErrWriterPoisoned indicates an earlier failure left the writer, and
	// any partial output, unusable.
	ErrWriterPoisoned = errors.New("writer poisoned by earlier failure")

	// ErrFormat indicates a structure about to be written would violate a
	// container format invariant.
	ErrFormat = errors.New("archive format invariant violated")

	// ErrDuplicateName indicates an entry was enqueued under an archive name
	// that is already taken.
	ErrDuplicateName = errors.New("duplicate archive name")

	// ErrEmptyName indicates an entry was enqueued with an empty archive name.
	ErrEmptyName = errors.New("archive name must not be empty")

	// ErrMissingEndMark indicates a compressed block did not end with the
	// coder's end-of-stream marker, so blocks cannot be concatenated.
	ErrMissingEndMark = errors.New("compressed block missing end marker")

	// ErrCodec indicates the block coder reported a failure.
	ErrCodec = errors.New("block compression failed")

	// ErrThreading indicates a worker pool failure.
	ErrThreading = errors.New("worker pool failure")

	// ErrInvalidWorkerCount indicates a worker count outside the accepted
	// range.
	ErrInvalidWorkerCount = errors.New("worker count must be positive or auto")
)
