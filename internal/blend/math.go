// Package blend implements straight-alpha compositing on 8-bit RGBA pixels.
//
// All arithmetic is integer and rounds to nearest, so repeated renders of
// the same primitives produce bit-identical buffers.
//
// References:
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255, rounding to nearest.
// Valid for x in [0, 255*255+127].
func div255(x uint32) uint32 {
	return (x + 127) / 255
}

// mulDiv255 multiplies two bytes and divides by 255, rounding to nearest.
func mulDiv255(a, b uint8) uint8 {
	return uint8(div255(uint32(a) * uint32(b)))
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x uint8) uint8 {
	return 255 - x
}
