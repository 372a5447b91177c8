// Package ignorefile reads and rewrites the managed block of an ignore file.
//
// The managed block is the region between a [StartMarker] line and an
// [EndMarker] line. Everything outside of it belongs to the user: [Merge]
// copies those lines through unchanged and in order, while the block itself is
// replaced (or appended, when the file has none). [ReadStatus] performs the
// inverse, read-only scan.
//
// Both operations are driven by the same two-state [Scanner], which tracks
// whether a line was read [Outside] or [Inside] a block. Only the first block
// in a file is kept; any further blocks are treated as stale content and
// dropped on the next merge.
package ignorefile
