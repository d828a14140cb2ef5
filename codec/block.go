package codec

// PixelBlock packs four consecutive 8-bit grayscale pixels into one 32-bit
// value. The packing direction depends on host byte order; see Combine.
type PixelBlock = uint32

const (
	white = 0xFF
	black = 0x00

	// WhiteBlock is Combine(white, white, white, white) on any host.
	WhiteBlock PixelBlock = 0xFFFFFFFF
	// BlackBlock is Combine(black, black, black, black) on any host.
	BlackBlock PixelBlock = 0x00000000
)
