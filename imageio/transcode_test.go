package imageio

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/barch"
)

func TestOutputPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("scans", "page-packed.barch"), PackedPath(filepath.Join("scans", "page.png")))
	assert.Equal(t, filepath.Join("scans", "page-unpacked.bmp"), UnpackedPath(filepath.Join("scans", "page.barch")))
}

func TestTranscodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "page.png")

	f, err := os.Create(imgPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, grayImage(32, 24)))
	require.NoError(t, f.Close())

	// Image -> BARCH.
	packed, err := TranscodeFile(imgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "page-packed.barch"), packed)

	// BARCH -> BMP.
	unpacked, err := TranscodeFile(packed, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "page-packed-unpacked.bmp"), unpacked)

	// The unpacked BMP holds the original pixels.
	original, err := DecodeFile(imgPath)
	require.NoError(t, err)
	restored, err := DecodeFile(unpacked)
	require.NoError(t, err)
	assert.True(t, original.Equal(restored))
}

func TestTranscodeRefusesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "page.png")

	f, err := os.Create(imgPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, grayImage(8, 8)))
	require.NoError(t, f.Close())

	_, err = TranscodeFile(imgPath, nil)
	require.NoError(t, err)

	_, err = TranscodeFile(imgPath, nil)
	assert.Error(t, err, "existing output must not be overwritten")
}

func TestTranscodeReportsProgress(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "page.png")

	f, err := os.Create(imgPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, grayImage(4, 6)))
	require.NoError(t, f.Close())

	var calls int
	var last uint
	progress := barch.ProgressFunc(func(step, total uint) {
		calls++
		last = step
	})

	_, err = TranscodeFile(imgPath, progress)
	require.NoError(t, err)
	assert.Equal(t, 7, calls, "height+1 callbacks")
	assert.Equal(t, uint(6), last)
}

func TestTranscodeMissingInput(t *testing.T) {
	_, err := TranscodeFile(filepath.Join(t.TempDir(), "missing.png"), nil)
	assert.Error(t, err)
}
