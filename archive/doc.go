// Package archive implements the 7z archive writer: a write-only builder
// that compresses enqueued entries block by block on a worker pool and
// assembles the container around the packed payloads.
//
// # Pipeline
//
// Entries are enqueued with AddFile or AddBytes and consumed exactly once by
// Finish. Finish tiles every entry into fixed-size blocks, compresses the
// blocks in parallel, and appends each entry's concatenated stream to the
// sink in enqueue order. The compressed blocks reach the writer in submission
// order regardless of completion order, so archives are laid out
// deterministically no matter how many workers run. Once the pack area is
// complete, the end header is appended and the 32-byte signature header at
// offset 0 — reserved as a zero placeholder at construction — is patched with
// the end header's offset, size, and digest.
//
// # States
//
// A Writer moves through OPEN → FINISHING → DONE, or to POISONED when any
// step of Finish fails. Enqueue and configuration calls are accepted only
// while OPEN; a poisoned writer's partial output is undefined and should be
// discarded by the caller.
//
// # Memory
//
// The archive is never materialized in memory. Resident bytes stay bounded by
// the worker count times the block size: workers hold one input and one
// output block each, and the reorder queue holds at most a pool's worth of
// compressed blocks ahead of the writer.
package archive
