// Package section builds the structures of the 7z end header and the 32-byte
// signature header.
//
// The end header is a tree of tagged sections: the main streams info (pack
// sizes, folder coder records, unpack sizes, folder digests) followed by the
// files info (names, empty-stream markers, optional modification times). The
// writer core collects per-folder and per-file records during the pack phase
// and hands them to this package once the payload bytes are on disk; the
// encoded header is then appended and the signature header patched to point
// at it.
//
// Layout decisions baked in here:
//
//   - One coder and one substream per folder, so folder digests double as
//     file digests and no substreams section is emitted.
//   - Pack stream digests are not emitted; the folder digests are sufficient
//     for extractors to verify content.
//   - The files info section is only emitted when the archive has at least
//     one file.
package section
