//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package codec

// Combine packs four pixels into a PixelBlock. On big-endian hosts p0
// occupies the least significant byte, the transposed convention of the
// little-endian variant.
func Combine(p0, p1, p2, p3 byte) PixelBlock {
	result := PixelBlock(p3)
	result = result<<8 | PixelBlock(p2)
	result = result<<8 | PixelBlock(p1)
	result = result<<8 | PixelBlock(p0)
	return result
}

// Split is the inverse of Combine.
func Split(block PixelBlock) [4]byte {
	return [4]byte{
		byte(block),
		byte(block >> 8),
		byte(block >> 16),
		byte(block >> 24),
	}
}
