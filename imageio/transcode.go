package imageio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/barch"
)

// BarchExt is the file extension of BARCH archives.
const BarchExt = ".barch"

// PackedPath returns the output path for encoding path: the same directory
// and base name with a "-packed.barch" suffix.
func PackedPath(path string) string {
	return siblingPath(path, "-packed"+BarchExt)
}

// UnpackedPath returns the output path for decoding path: the same
// directory and base name with a "-unpacked.bmp" suffix.
func UnpackedPath(path string) string {
	return siblingPath(path, "-unpacked.bmp")
}

func siblingPath(path, suffix string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+suffix)
}

// TranscodeFile converts the file at path and returns the output path.
// BARCH inputs are uncompressed to a BMP; image inputs are compressed to a
// BARCH archive. The output must not already exist. A nil progress is
// allowed.
func TranscodeFile(path string, progress barch.ProgressFunc) (string, error) {
	if strings.EqualFold(filepath.Ext(path), BarchExt) {
		return UnpackFile(path, progress)
	}
	return PackFile(path, progress)
}

// PackFile compresses the image at path into a sibling BARCH archive and
// returns its path.
func PackFile(path string, progress barch.ProgressFunc) (string, error) {
	source, err := DecodeFile(path)
	if err != nil {
		return "", err
	}

	compressed, err := barch.Compress(source, progress)
	if err != nil {
		return "", err
	}

	outPath := PackedPath(path)
	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("create %s (already exists?): %w", outPath, err)
	}
	if err := barch.Save(f, compressed); err != nil {
		_ = f.Close()
		_ = os.Remove(outPath)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return outPath, nil
}

// UnpackFile decodes the BARCH archive at path into a sibling BMP and
// returns its path.
func UnpackFile(path string, progress barch.ProgressFunc) (string, error) {
	compressed, err := barch.LoadFile(path)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}

	restored, err := barch.Uncompress(compressed, progress)
	if err != nil {
		return "", err
	}

	outPath := UnpackedPath(path)
	if err := WriteBMPFile(outPath, restored); err != nil {
		return "", err
	}
	return outPath, nil
}
