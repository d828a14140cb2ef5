package barch

import "github.com/hupe1980/barch/codec"

// ProgressFunc observes whole-image operations. It is invoked once per row
// before that row is processed and once more with step == total, so a
// height-H operation reports (0, H), (1, H), ..., (H, H). The callback runs
// synchronously and must not touch the bitmap being processed.
type ProgressFunc func(step, total uint)

func noProgress(uint, uint) {}

func isEmptyRow(pixels []byte) bool {
	for _, p := range pixels {
		if p != White {
			return false
		}
	}
	return true
}

// Compress encodes source into a CompressedBitmap. Empty rows (all white)
// leave their lookup bit at 0 and contribute no pixel data; non-empty rows
// set the bit and are appended to the encoded stream in row order.
// A nil progress is allowed.
func Compress(source *Bitmap, progress ProgressFunc) (*CompressedBitmap, error) {
	if progress == nil {
		progress = noProgress
	}

	height := source.Height()
	result, err := NewCompressedBitmap(source.Width(), height)
	if err != nil {
		return nil, err
	}

	rowEncoder := codec.NewEncoder(result.pixelData)
	for y := uint(0); y < height; y++ {
		progress(y, height)
		row, err := source.RowAt(y)
		if err != nil {
			return nil, err
		}
		if isEmptyRow(row) {
			// The lookup bit is already 0.
			continue
		}
		result.rowLookupTable.Set(y)
		rowEncoder.Encode(row)
	}
	progress(height, height)

	return result, nil
}

// Uncompress decodes source into a white Bitmap, filling only the rows the
// lookup table marks non-empty. A nil progress is allowed.
func Uncompress(source *CompressedBitmap, progress ProgressFunc) (*Bitmap, error) {
	if progress == nil {
		progress = noProgress
	}

	height := source.Height()
	result, err := NewBitmap(source.Width(), height, White)
	if err != nil {
		return nil, err
	}

	rowDecoder := codec.NewDecoder(source.pixelData)
	for y := uint(0); y < height; y++ {
		progress(y, height)
		if !source.rowLookupTable.Test(y) {
			// Empty rows are already white.
			continue
		}
		row, err := result.RowAt(y)
		if err != nil {
			return nil, err
		}
		rowDecoder.Decode(row)
	}
	progress(height, height)

	return result, nil
}
