package blend

// Lerp mixes a source channel s into a destination channel d with
// coverage a: s*a + d*(1-a), where a is in [0, 255].
func Lerp(s, d, a uint8) uint8 {
	return uint8(div255(uint32(s)*uint32(a) + uint32(d)*uint32(inv255(a))))
}

// Over composites a straight-alpha source color over the destination
// pixel px (4 bytes, RGBA) in place. The source alpha is the mixing
// weight for color channels; the resulting alpha is sa + da*(1-sa).
func Over(px []uint8, sr, sg, sb, sa uint8) {
	_ = px[3]
	switch sa {
	case 0:
		return
	case 255:
		px[0], px[1], px[2], px[3] = sr, sg, sb, 255
		return
	}
	px[0] = Lerp(sr, px[0], sa)
	px[1] = Lerp(sg, px[1], sa)
	px[2] = Lerp(sb, px[2], sa)
	px[3] = sa + mulDiv255(px[3], inv255(sa))
}
