// Package foil implements the shimmer pipeline: it turns a bounded
// pointer signal and a shared roll oscillation into a smoothly
// interpolated gradient, a mask window, and a blend mode, and issues
// one composed paint per frame against an abstract surface.
//
// A [Roll] owns the oscillation shared by a scope; each [Foil] is one
// pipeline instance bound to a [Surface]. The host framework stays
// external: anything that can report a size, resolve a text direction,
// and accept a [PaintCommand] can host a Foil.
package foil

import (
	"fmt"

	"github.com/ArcaneArts/nonsense-foil/pkg/graphics"
)

// TextDirection is the ambient layout direction of the surface.
type TextDirection int

const (
	// DirectionLTR lays the gradient out left-to-right. It is also the
	// fallback when the surface cannot resolve a direction.
	DirectionLTR TextDirection = iota
	// DirectionRTL mirrors the gradient's horizontal motion.
	DirectionRTL
)

// String returns a human-readable representation of the direction.
func (d TextDirection) String() string {
	switch d {
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	default:
		return fmt.Sprintf("TextDirection(%d)", int(d))
	}
}

// Surface is the abstract paint target a Foil composites onto. The
// host owns layout and children; the pipeline only needs geometry, a
// resolvable direction, and a sink for the composed gradient layer.
type Surface interface {
	// Size returns the current surface size in pixels. A zero size
	// means the surface has not been laid out yet; the pipeline skips
	// work until geometry arrives.
	Size() graphics.Size

	// Directionality resolves the ambient text direction. Surfaces
	// without one return DirectionLTR.
	Directionality() TextDirection

	// Paint composites the gradient layer over the surface's child
	// visual. Called at most once per frame, and only when the command
	// differs from the previous frame's.
	Paint(PaintCommand)
}

// PaintCommand is one frame's composed gradient layer: the blended
// gradient shifted by Translation, clipped to MaskRect, composited
// with Blend.
type PaintCommand struct {
	// Gradient is the fully interpolated gradient for this frame.
	Gradient graphics.Gradient

	// Translation shifts the gradient in pixels before painting. It is
	// the roll contribution mapped through the gradient transform.
	Translation graphics.Offset

	// MaskRect is the window through which the gradient is visible.
	MaskRect graphics.Rect

	// Blend composites the gradient against the child visual.
	Blend graphics.BlendMode
}

// Equal reports whether re-issuing the command would repaint identical
// pixels. The compositor uses this to short-circuit redundant paints.
func (p PaintCommand) Equal(other PaintCommand) bool {
	return p.Translation == other.Translation &&
		p.MaskRect == other.MaskRect &&
		p.Blend == other.Blend &&
		p.Gradient.Equal(other.Gradient)
}
