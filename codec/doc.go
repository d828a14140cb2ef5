// Package codec implements the BARCH pixel-block bitstream.
//
// Pixels are consumed four at a time as 32-bit blocks and written with a
// three-symbol prefix code:
//
//	0          four white pixels
//	10         four black pixels
//	11 + 32b   an arbitrary block, emitted MSB-first
//
// Block packing is host-endian so that uniform comparisons and shifts run
// on native register ordering; the prefix code and the MSB-first bit
// emission are endianness-free. Encoder and Decoder are stateful cursors
// over a bitset.BitSet and must be paired within one deployment.
package codec
