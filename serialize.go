package barch

import (
	"io"

	"github.com/hupe1980/barch/bitset"
	"github.com/hupe1980/barch/persistence"
)

// Save writes c to w in the BARCH layout: width, height, the row lookup
// table words, the pixel data word count and the pixel data words. Every
// integer is one host machine word in host byte order.
func Save(w io.Writer, c *CompressedBitmap) error {
	ww := persistence.NewWordWriter(w)
	if err := ww.WriteWord(c.size.width); err != nil {
		return err
	}
	if err := ww.WriteWord(c.size.height); err != nil {
		return err
	}
	if err := ww.WriteWords(c.rowLookupTable.Words()); err != nil {
		return err
	}
	if err := ww.WriteWord(c.pixelData.WordCount()); err != nil {
		return err
	}
	return ww.WriteWords(c.pixelData.Words())
}

// Load reads a CompressedBitmap from r, rejecting invalid dimensions. The
// lookup table word count is derived from the height; the pixel data word
// count is read from the stream, where 0 is valid and yields empty pixel
// data.
func Load(r io.Reader) (*CompressedBitmap, error) {
	wr := persistence.NewWordReader(r)

	width, err := wr.ReadWord()
	if err != nil {
		return nil, err
	}
	height, err := wr.ReadWord()
	if err != nil {
		return nil, err
	}
	result, err := NewCompressedBitmap(width, height)
	if err != nil {
		return nil, err
	}

	// The lookup table is stored as ceil(height/W) whole words; resize to
	// exactly that count before the bulk read.
	lookupWords := (height + bitset.WordBits - 1) / bitset.WordBits
	result.rowLookupTable.UnsafeResize(lookupWords)
	if err := wr.ReadWords(result.rowLookupTable.Words()); err != nil {
		return nil, err
	}

	dataWords, err := wr.ReadWord()
	if err != nil {
		return nil, err
	}
	result.pixelData.UnsafeResize(dataWords)
	if err := wr.ReadWords(result.pixelData.Words()); err != nil {
		return nil, err
	}

	return result, nil
}

// SaveFile writes c to filename with atomic replacement.
func SaveFile(filename string, c *CompressedBitmap) error {
	return persistence.SaveToFile(filename, func(w io.Writer) error {
		return Save(w, c)
	})
}

// LoadFile reads a CompressedBitmap from filename.
func LoadFile(filename string) (*CompressedBitmap, error) {
	var result *CompressedBitmap
	err := persistence.LoadFromFile(filename, func(r io.Reader) error {
		loaded, err := Load(r)
		if err != nil {
			return err
		}
		result = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
