package codec

import "github.com/hupe1980/barch/bitset"

// Encoder turns pixel sequences into prefix-coded bits. It borrows the
// output BitSet for the duration of a coding session and appends at a
// monotonically increasing bit cursor; the BitSet grows as needed.
type Encoder struct {
	output *bitset.BitSet
	index  uint
}

// NewEncoder creates an Encoder appending to output starting at bit 0.
func NewEncoder(output *bitset.BitSet) *Encoder {
	return &Encoder{output: output}
}

// Encode writes the encoded representation of pixels at the current
// cursor, advancing it. The sequence is consumed in groups of four; a tail
// of 1-3 pixels is padded with black to form the final block. The decoder
// discards the padded tail, so the pad value never round-trips.
func (e *Encoder) Encode(pixels []byte) {
	for len(pixels) >= 4 {
		e.write(Combine(pixels[0], pixels[1], pixels[2], pixels[3]))
		pixels = pixels[4:]
	}
	switch len(pixels) {
	case 1:
		e.write(Combine(pixels[0], black, black, black))
	case 2:
		e.write(Combine(pixels[0], pixels[1], black, black))
	case 3:
		e.write(Combine(pixels[0], pixels[1], pixels[2], black))
	}
}

// BitsWritten returns the current cursor position.
func (e *Encoder) BitsWritten() uint {
	return e.index
}

func (e *Encoder) write0() {
	e.output.Clear(e.index)
	e.index++
}

func (e *Encoder) write1() {
	e.output.Set(e.index)
	e.index++
}

func (e *Encoder) write(block PixelBlock) {
	if block == WhiteBlock {
		e.write0()
		return
	}
	if block == BlackBlock {
		e.write1()
		e.write0()
		return
	}

	e.write1()
	e.write1()
	for mask := PixelBlock(1 << 31); mask != 0; mask >>= 1 {
		if block&mask != 0 {
			e.write1()
		} else {
			e.write0()
		}
	}
}
