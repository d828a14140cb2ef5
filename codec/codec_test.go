package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/barch/bitset"
)

func TestCombineSplitRoundTrip(t *testing.T) {
	tests := [][4]byte{
		{0x00, 0x00, 0x00, 0x00},
		{0xFF, 0xFF, 0xFF, 0xFF},
		{0x01, 0x02, 0x03, 0x04},
		{0xDE, 0xAD, 0xBE, 0xEF},
		{0xFF, 0x00, 0xFF, 0x00},
	}

	for _, px := range tests {
		block := Combine(px[0], px[1], px[2], px[3])
		assert.Equal(t, px, Split(block))
	}
}

func TestUniformBlockConstants(t *testing.T) {
	// The uniform blocks are independent of host byte order.
	assert.Equal(t, WhiteBlock, Combine(0xFF, 0xFF, 0xFF, 0xFF))
	assert.Equal(t, BlackBlock, Combine(0x00, 0x00, 0x00, 0x00))
}

// bitString reads n bits off a bitset as a string of '0'/'1', MSB-first.
func bitString(b *bitset.BitSet, n uint) string {
	s := make([]byte, n)
	for i := uint(0); i < n; i++ {
		if b.Test(i) {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
	}
	return string(s)
}

func TestEncodeTwelvePixelSequence(t *testing.T) {
	// White block, black block, then the non-uniform block [01 01 01 01].
	pixels := []byte{
		0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0x00, 0x00, 0x00,
		0x01, 0x01, 0x01, 0x01,
	}

	out := bitset.New(0)
	enc := NewEncoder(out)
	enc.Encode(pixels)

	require.Equal(t, uint(37), enc.BitsWritten())
	// 0 + 10 + 11 + the 32 bits of 0x01010101 MSB-first. All four bytes of
	// the block are equal, so the packed value is the same on either
	// endianness.
	want := "0" + "10" + "11" + "00000001000000010000000100000001"
	assert.Equal(t, want, bitString(out, enc.BitsWritten()))
}

func TestEncodeWordLayout(t *testing.T) {
	if bitset.WordBits != 64 {
		t.Skip("golden word layout assumes a 64-bit host")
	}

	pixels := []byte{
		0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0x00, 0x00, 0x00,
		0x01, 0x01, 0x01, 0x01,
	}

	out := bitset.New(0)
	NewEncoder(out).Encode(pixels)

	require.Equal(t, uint(1), out.WordCount())
	// 37 payload bits followed by 27 zero pad bits.
	assert.Equal(t, uint64(0b0101100000001000000010000000100000001)<<27, uint64(out.Words()[0]))
}

func TestDecodeRecoversEncodedSequence(t *testing.T) {
	pixels := []byte{
		0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0x00, 0x00, 0x00,
		0x01, 0x01, 0x01, 0x01,
	}

	out := bitset.New(0)
	NewEncoder(out).Encode(pixels)

	decoded := make([]byte, len(pixels))
	dec := NewDecoder(out)
	dec.Decode(decoded)

	assert.Equal(t, pixels, decoded)
	assert.Equal(t, uint(37), dec.BitsRead())
}

func TestEncodeDecodeTailPadding(t *testing.T) {
	tests := []struct {
		name   string
		pixels []byte
	}{
		{"one pixel", []byte{0xAA}},
		{"two pixels", []byte{0xAA, 0xBB}},
		{"three pixels", []byte{0xAA, 0xBB, 0xCC}},
		{"five pixels", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x7F}},
		{"single white", []byte{0xFF}},
		{"single black", []byte{0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := bitset.New(0)
			NewEncoder(out).Encode(tt.pixels)

			decoded := make([]byte, len(tt.pixels))
			NewDecoder(out).Decode(decoded)

			assert.Equal(t, tt.pixels, decoded)
		})
	}
}

func TestEncodeSingleBlackPixel(t *testing.T) {
	// One black pixel pads to a full black block: two bits, "10". The
	// write of the 0 bit is a Clear, so only the set bit allocates.
	out := bitset.New(0)
	enc := NewEncoder(out)
	enc.Encode([]byte{0x00})

	require.Equal(t, uint(2), enc.BitsWritten())
	assert.Equal(t, "10", bitString(out, 2))
	assert.Equal(t, uint(1), out.WordCount())
}

func TestEncodeWhiteRowWritesNoWords(t *testing.T) {
	// A white block is the single bit 0, written via Clear, which never
	// grows the storage. The bit still reads back as 0.
	out := bitset.New(0)
	enc := NewEncoder(out)
	enc.Encode([]byte{0xFF, 0xFF, 0xFF, 0xFF})

	assert.Equal(t, uint(1), enc.BitsWritten())
	assert.Equal(t, uint(0), out.WordCount())
}

func TestEncoderAppendsAcrossCalls(t *testing.T) {
	out := bitset.New(0)
	enc := NewEncoder(out)
	enc.Encode([]byte{0x00, 0x00, 0x00, 0x00}) // 10
	enc.Encode([]byte{0xDE, 0xAD, 0xBE, 0xEF}) // 11 + 32 bits

	require.Equal(t, uint(36), enc.BitsWritten())

	decoded := make([]byte, 8)
	dec := NewDecoder(out)
	dec.Decode(decoded[:4])
	dec.Decode(decoded[4:])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0xDE, 0xAD, 0xBE, 0xEF}, decoded)
}

func TestDecoderReadsPastEndAsWhite(t *testing.T) {
	// An empty bitset is an endless run of 0 bits, i.e. white blocks.
	decoded := make([]byte, 8)
	NewDecoder(bitset.New(0)).Decode(decoded)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, decoded)
}
