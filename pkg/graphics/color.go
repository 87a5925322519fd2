package graphics

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// ScaleAlpha returns a copy of the color with its alpha multiplied by
// factor (0-1). Used by gradient cross-fades.
func (c Color) ScaleAlpha(factor float64) Color {
	return c.WithAlpha(c.Alpha() * clamp01(factor))
}

// LerpColor linearly interpolates between two colors per ARGB channel.
func LerpColor(a, b Color, t float64) Color {
	aR, aG, aB, aA := channels(a)
	bR, bG, bB, bA := channels(b)
	return RGBA8(
		lerpByte(aR, bR, t),
		lerpByte(aG, bG, t),
		lerpByte(aB, bB, t),
		lerpByte(aA, bA, t),
	)
}

// LerpColorPerceptual interpolates between two colors in a blend space
// that avoids the desaturated midpoints of channel-wise RGB lerp.
// Alpha is still interpolated linearly; go-colorful works on opaque
// colors only.
func LerpColorPerceptual(a, b Color, t float64) Color {
	ar, ag, ab, aa := a.RGBAF()
	br, bg, bb, ba := b.RGBAF()
	blended := colorful.Color{R: ar, G: ag, B: ab}.
		BlendLuvLCh(colorful.Color{R: br, G: bg, B: bb}, clamp01(t)).
		Clamped()
	return RGBA(
		uint8(math.Round(blended.R*maxByte)),
		uint8(math.Round(blended.G*maxByte)),
		uint8(math.Round(blended.B*maxByte)),
		aa+(ba-aa)*clamp01(t),
	)
}

func channels(c Color) (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
