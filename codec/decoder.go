package codec

import "github.com/hupe1980/barch/bitset"

// Decoder is the exact inverse of Encoder. It borrows the input BitSet and
// reads at a monotonically increasing bit cursor. Reads past the written
// data yield 0 bits, which decode as white blocks; the caller-supplied
// output length bounds consumption, so decoding terminates cleanly inside
// the padding of the final word.
type Decoder struct {
	input *bitset.BitSet
	index uint
}

// NewDecoder creates a Decoder reading from input starting at bit 0.
func NewDecoder(input *bitset.BitSet) *Decoder {
	return &Decoder{input: input}
}

// Decode fills pixels in order, consuming the minimum number of bits
// required. For a tail of 1-3 pixels one final block is read and only its
// leading pixels are copied.
func (d *Decoder) Decode(pixels []byte) {
	for len(pixels) >= 4 {
		block := Split(d.read())
		copy(pixels, block[:])
		pixels = pixels[4:]
	}
	if len(pixels) > 0 {
		block := Split(d.read())
		copy(pixels, block[:len(pixels)])
	}
}

// BitsRead returns the current cursor position.
func (d *Decoder) BitsRead() uint {
	return d.index
}

func (d *Decoder) readBit() bool {
	bit := d.input.Test(d.index)
	d.index++
	return bit
}

func (d *Decoder) read() PixelBlock {
	if !d.readBit() {
		// Bit pattern: 0
		return WhiteBlock
	}
	if !d.readBit() {
		// Bit pattern: 10
		return BlackBlock
	}
	// Bit pattern: 11
	var result PixelBlock
	for mask := PixelBlock(1 << 31); mask != 0; mask >>= 1 {
		if d.readBit() {
			result |= mask
		}
	}
	return result
}
