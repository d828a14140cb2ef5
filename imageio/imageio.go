// Package imageio converts between BARCH bitmaps and common raster image
// formats. It is the boundary the codec itself stays out of: the codec
// only ever sees raw grayscale pixel buffers.
//
// PNG, JPEG, GIF and BMP inputs are supported. Inputs must already be
// grayscale; color images are rejected rather than silently flattened.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	// Register the stdlib decoders next to the BMP decoder below.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/bmp"

	"github.com/hupe1980/barch"
)

// ErrNotGrayscale is returned when a decoded image contains color pixels.
var ErrNotGrayscale = errors.New("image is not grayscale")

// Decode reads any registered image format from r into a Bitmap.
func Decode(r io.Reader) (*barch.Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// DecodeFile reads the image at path into a Bitmap.
func DecodeFile(path string) (*barch.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bm, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return bm, nil
}

// FromImage converts img into a Bitmap, requiring every pixel to be gray.
func FromImage(img image.Image) (*barch.Bitmap, error) {
	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	result, err := barch.NewBitmap(width, height, barch.White)
	if err != nil {
		return nil, err
	}

	if gray, ok := img.(*image.Gray); ok {
		for y := uint(0); y < height; y++ {
			row, err := result.RowAt(y)
			if err != nil {
				return nil, err
			}
			offset := gray.PixOffset(bounds.Min.X, bounds.Min.Y+int(y))
			copy(row, gray.Pix[offset:offset+int(width)])
		}
		return result, nil
	}

	for y := 0; y < int(height); y++ {
		row, err := result.RowAt(uint(y))
		if err != nil {
			return nil, err
		}
		for x := 0; x < int(width); x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, b, _ := c.RGBA()
			if r != g || g != b {
				return nil, ErrNotGrayscale
			}
			row[x] = color.GrayModel.Convert(c).(color.Gray).Y
		}
	}
	return result, nil
}

// ToImage converts a Bitmap into an image.Gray sharing no storage.
func ToImage(bm *barch.Bitmap) *image.Gray {
	width := int(bm.Width())
	height := int(bm.Height())

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row, _ := bm.RowAt(uint(y))
		copy(img.Pix[y*img.Stride:y*img.Stride+width], row)
	}
	return img
}

// EncodeBMP writes bm to w in BMP format.
func EncodeBMP(w io.Writer, bm *barch.Bitmap) error {
	return bmp.Encode(w, ToImage(bm))
}

// WriteBMPFile writes bm as a BMP to path. The file must not already
// exist.
func WriteBMPFile(path string, bm *barch.Bitmap) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if err := EncodeBMP(f, bm); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
