// Package compress provides the block coders used by the archive writer.
//
// Each coder turns one input block into one self-contained compressed stream.
// The writer's stream assembler later concatenates the streams of a file's
// blocks into a single folder payload, which is why every implementation
// must start from fresh coder state per block and must report (via EndMark)
// whether its streams end with a terminator byte that has to be stripped
// between blocks.
//
// # Available coders
//
//   - LZMA2 (default): the 7z native coder; carries a one-byte dictionary
//     descriptor in the folder's properties record and terminates each
//     stream with the 0x00 end chunk.
//   - Copy: stores bytes verbatim.
//   - Zstd: Zstandard frames, as registered by the 7z-zstd fork. Built on
//     libzstd when cgo is available, on the pure-Go implementation
//     otherwise.
//   - LZ4: LZ4 frames, as registered by the 7z-zstd fork.
//
// # Choosing a coder
//
// LZMA2 gives the best ratios and is what stock 7-Zip extracts without
// plugins. Zstd and LZ4 trade ratio for speed and require a 7z-zstd capable
// extractor. Copy is for payloads that are already compressed.
//
// Thread safety: all coders in this package are safe for concurrent use; the
// parallel scheduler shares one instance across its workers.
package compress
