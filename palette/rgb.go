package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 3-channel color kept in the space it was supplied in, either [0,255] or [0,1]
// Interpolation is linear per channel with no gamma handling; mixing spaces is the caller's error
type RGB struct {
	R, G, B float64
}

// Equal returns true if all channels match exactly
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Valid reports whether every channel is a finite value in [0,255], which covers both supported spaces
func (c RGB) Valid() bool {
	return inByteRange(c.R) && inByteRange(c.G) && inByteRange(c.B)
}

// Lerp is the interp.LerpFunc for colors; t >= 1 returns b exactly
func Lerp(a, b RGB, t float64) RGB {
	if t >= 1 {
		return b
	}
	if t <= 0 {
		return a
	}
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// Blend performs alpha compositing: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if !(alpha > 0) {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: src.R*alpha + dst.R*inv,
		G: src.G*alpha + dst.G*inv,
		B: src.B*alpha + dst.B*inv,
	}
}

// Bytes quantizes a [0,255] color to 8-bit channels with rounding and clamping
func (c RGB) Bytes() (r, g, b uint8) {
	return clampByte(c.R), clampByte(c.G), clampByte(c.B)
}

// Unit converts a [0,255] color to [0,1] channels
func (c RGB) Unit() RGB {
	return RGB{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

// Colorful returns the go-colorful value of a [0,255] color
func (c RGB) Colorful() colorful.Color {
	u := c.Unit()
	return colorful.Color{R: u.R, G: u.G, B: u.B}.Clamped()
}

// Hex formats a [0,255] color as #rrggbb
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// CSS formats a [0,255] color as rgb(r, g, b) with rounded channels
func (c RGB) CSS() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

func (c RGB) String() string {
	return c.CSS()
}

func clampByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
