package core

// RGB is a backend-neutral 24-bit color; terminal and window renderers convert it at draw time
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// RGBFrom converts a parsed config color
func RGBFrom(c [3]uint8) RGB {
	return RGB{R: c[0], G: c[1], B: c[2]}
}

// Blend moves c toward src by alpha, clamped to [0,1]
func (c RGB) Blend(src RGB, alpha float64) RGB {
	alpha = min(max(alpha, 0), 1)
	return RGB{
		R: lerp8(c.R, src.R, alpha),
		G: lerp8(c.G, src.G, alpha),
		B: lerp8(c.B, src.B, alpha),
	}
}

// Scale darkens c toward black; factor 1 keeps it
func (c RGB) Scale(factor float64) RGB {
	return RGBBlack.Blend(c, factor)
}

func lerp8(from, to uint8, t float64) uint8 {
	return uint8(float64(from) + (float64(to)-float64(from))*t)
}
