// Package barch implements BARCH, a lossless codec for 8-bit grayscale
// raster images tuned for scanned documents: rows that are entirely white
// cost one lookup-table bit, and runs of four identical white or black
// pixels compress to one or two bits.
//
// The core types are Bitmap (an owned 2D pixel buffer), CompressedBitmap
// (dimensions, a per-row lookup table and the concatenated encoded rows)
// and the Compress/Uncompress drivers that convert between them. Save and
// Load serialize a CompressedBitmap to the BARCH on-disk layout.
//
// The codec itself is single-threaded and fully synchronous. Callers that
// want to transcode several images concurrently must use disjoint Bitmap
// and CompressedBitmap instances per worker.
//
// Archiver is an optional facade that adds structured logging, metrics and
// blob storage of whole archives on top of the pure core.
package barch
