package foil

import "github.com/ArcaneArts/nonsense-foil/pkg/graphics"

// CompositionFrame is the compositor's input for one frame: the
// blended gradient, the two offset pairs per axis (roll-sourced and
// pointer-sourced), and the ambient paint settings.
type CompositionFrame struct {
	Gradient graphics.Gradient

	// RollX/RollY are the oscillation-sourced channels; they move the
	// gradient itself.
	RollX float64
	RollY float64

	// PointerX/PointerY are the pointer-sourced channels; they move
	// the mask window.
	PointerX float64
	PointerY float64

	Blend     graphics.BlendMode
	UseSensor bool
	Transform GradientTransform
	Direction TextDirection
	Size      graphics.Size
}

// Compose maps a frame to its paint command. Pure: same frame in, same
// command out.
//
// A non-zero roll contribution translates the gradient, through the
// frame's transform or the default percent translate; under RTL the
// horizontal motion is mirrored. The pointer contribution instead
// shifts the mask window over the gradient — the parallax that makes
// the shimmer track the finger — unless UseSensor is off, in which
// case the mask pins to the origin no matter what the pointer channels
// hold.
func Compose(frame CompositionFrame) PaintCommand {
	size := frame.Size

	var translation graphics.Offset
	if frame.RollX != 0 || frame.RollY != 0 {
		transform := frame.Transform
		if transform == nil {
			transform = PercentTranslate
		}
		percent := transform(frame.RollX, frame.RollY)
		if frame.Direction == DirectionRTL {
			percent.X = -percent.X
		}
		translation = graphics.Offset{
			X: percent.X * size.Width,
			Y: percent.Y * size.Height,
		}
	}

	var maskX, maskY float64
	if frame.UseSensor {
		maskX = size.Width * frame.PointerX
		maskY = size.Height * frame.PointerY
	}

	return PaintCommand{
		Gradient:    frame.Gradient,
		Translation: translation,
		MaskRect:    graphics.RectFromLTWH(maskX, maskY, size.Width, size.Height),
		Blend:       frame.Blend,
	}
}
