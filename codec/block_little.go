//go:build 386 || amd64 || amd64p32 || arm || arm64 || loong64 || mips64le || mips64p32le || mipsle || ppc64le || riscv || riscv64 || wasm

package codec

// Combine packs four pixels into a PixelBlock. On little-endian hosts p0
// occupies the most significant byte, so bits 31..24 of the block hold the
// first pixel of the group.
func Combine(p0, p1, p2, p3 byte) PixelBlock {
	result := PixelBlock(p0)
	result = result<<8 | PixelBlock(p1)
	result = result<<8 | PixelBlock(p2)
	result = result<<8 | PixelBlock(p3)
	return result
}

// Split is the inverse of Combine.
func Split(block PixelBlock) [4]byte {
	return [4]byte{
		byte(block >> 24),
		byte(block >> 16),
		byte(block >> 8),
		byte(block),
	}
}
