// Package bitset implements the word-backed bit container that carries
// encoded BARCH pixel data and the per-row lookup table.
//
// Unlike a general-purpose bitset, the semantics here are part of a file
// format: word size is the host machine word, intra-word numbering is
// MSB-first, reads past the end are lenient and writes past the end grow
// the storage. See BitSet for details.
package bitset
