package graphics

import "fmt"

// BlendMode controls how the gradient layer is composited against the
// child surface. Values follow Skia's SkBlendMode ordering.
type BlendMode int

const (
	BlendModeClear      BlendMode = iota // clear
	BlendModeSrc                         // src
	BlendModeDst                         // dst
	BlendModeSrcOver                     // src_over
	BlendModeDstOver                     // dst_over
	BlendModeSrcIn                       // src_in
	BlendModeDstIn                       // dst_in
	BlendModeSrcOut                      // src_out
	BlendModeDstOut                      // dst_out
	BlendModeSrcATop                     // src_atop
	BlendModeDstATop                     // dst_atop
	BlendModeXor                         // xor
	BlendModePlus                        // plus
	BlendModeModulate                    // modulate
	BlendModeScreen                      // screen
	BlendModeOverlay                     // overlay
	BlendModeDarken                      // darken
	BlendModeLighten                     // lighten
	BlendModeColorDodge                  // color_dodge
	BlendModeColorBurn                   // color_burn
	BlendModeHardLight                   // hard_light
	BlendModeSoftLight                   // soft_light
	BlendModeDifference                  // difference
	BlendModeExclusion                   // exclusion
	BlendModeMultiply                    // multiply
	BlendModeHue                         // hue
	BlendModeSaturation                  // saturation
	BlendModeColor                       // color
	BlendModeLuminosity                  // luminosity
)

var _BlendMode_names = []string{
	"clear", "src", "dst", "src_over", "dst_over",
	"src_in", "dst_in", "src_out", "dst_out",
	"src_atop", "dst_atop", "xor", "plus", "modulate",
	"screen", "overlay", "darken", "lighten",
	"color_dodge", "color_burn", "hard_light", "soft_light",
	"difference", "exclusion", "multiply",
	"hue", "saturation", "color", "luminosity",
}

// String returns a human-readable representation of the blend mode.
func (b BlendMode) String() string {
	if int(b) >= 0 && int(b) < len(_BlendMode_names) {
		return _BlendMode_names[b]
	}
	return fmt.Sprintf("BlendMode(%d)", int(b))
}
