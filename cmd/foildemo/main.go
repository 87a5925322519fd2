// Command foildemo renders a shimmer surface in the terminal.
//
// Each terminal cell acts as one pixel of the abstract paint surface;
// the mouse drives the pointer sensor, and a shared roll scope keeps
// the gradient drifting on its own. Keys: space cycles presets, s
// toggles the sensor mask, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ArcaneArts/nonsense-foil/pkg/animation"
	"github.com/ArcaneArts/nonsense-foil/pkg/foil"
	"github.com/ArcaneArts/nonsense-foil/pkg/foils"
	"github.com/ArcaneArts/nonsense-foil/pkg/graphics"
	"github.com/ArcaneArts/nonsense-foil/pkg/sensors"
)

const frameInterval = 33 * time.Millisecond

func main() {
	var (
		preset     = flag.String("preset", "oilslick", "preset gradient name")
		sheetPath  = flag.String("sheet", "", "optional foils.yaml sheet with extra presets")
		period     = flag.Duration("period", 6*time.Second, "roll oscillation period")
		relative   = flag.Bool("relative", false, "relative pointer mode (origin = first press)")
		noSensor   = flag.Bool("no-sensor", false, "pin the mask to the origin")
		aggressive = flag.Bool("aggressive", false, "aggressive gradient interpolation")
		perceptual = flag.Bool("perceptual", false, "perceptual color blending")
	)
	flag.Parse()

	if err := run(*preset, *sheetPath, *period, *relative, *noSensor, *aggressive, *perceptual); err != nil {
		fmt.Fprintln(os.Stderr, "foildemo:", err)
		os.Exit(1)
	}
}

func run(preset, sheetPath string, period time.Duration, relative, noSensor, aggressive, perceptual bool) error {
	catalog := foils.Catalog()
	if sheetPath != "" {
		extra, err := foils.LoadSheet(sheetPath)
		if err != nil {
			return err
		}
		for name, gradient := range extra {
			catalog[name] = func() graphics.Gradient { return gradient }
		}
	}
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	current := indexOf(names, preset)
	if current < 0 {
		return fmt.Errorf("unknown preset %q (have %v)", preset, names)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	surface := &terminalSurface{screen: screen}

	roll, err := foil.NewRoll(foil.Crinkle{
		Min:        -0.35,
		Max:        0.35,
		Period:     period,
		Reverse:    true,
		IsAnimated: true,
	})
	if err != nil {
		return err
	}
	defer roll.Dispose()

	mode := sensors.Absolute
	if relative {
		mode = sensors.Relative
	}
	shimmer, err := foil.NewFoil(surface, foil.Config{
		Gradient:   catalog[names[current]](),
		UseSensor:  !noSensor,
		SensorMode: mode,
		Aggressive: aggressive,
		Perceptual: perceptual,
		Roll:       roll,
	})
	if err != nil {
		return err
	}
	defer shimmer.Dispose()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			event := screen.PollEvent()
			if event == nil {
				return
			}
			events <- event
		}
	}()

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	useSensor := !noSensor
	buttonDown := false
	last := time.Now()

	for {
		select {
		case event := <-events:
			switch ev := event.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					current = (current + 1) % len(names)
					shimmer.SetGradient(catalog[names[current]]())
				case ev.Rune() == 's':
					useSensor = !useSensor
					shimmer.SetUseSensor(useSensor)
				}
			case *tcell.EventMouse:
				x, y := ev.Position()
				shimmer.HandlePointer(pointerEvent(ev, &buttonDown, x, y))
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-frames.C:
			now := time.Now()
			dt := now.Sub(last)
			last = now
			animation.StepTickers()
			shimmer.Tick(dt)
			shimmer.Composite()
			surface.render(names[current])
		}
	}
}

// pointerEvent maps a tcell mouse event onto the sensor's model using
// the tracked button state: press edge is Down, held motion is Move,
// release edge is Up, and unpressed motion is Hover.
func pointerEvent(ev *tcell.EventMouse, buttonDown *bool, x, y int) sensors.PointerEvent {
	position := graphics.Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5}
	pressed := ev.Buttons()&tcell.Button1 != 0
	var phase sensors.PointerPhase
	switch {
	case pressed && !*buttonDown:
		phase = sensors.PhaseDown
	case pressed:
		phase = sensors.PhaseMove
	case *buttonDown:
		phase = sensors.PhaseUp
	default:
		phase = sensors.PhaseHover
	}
	*buttonDown = pressed
	return sensors.PointerEvent{Phase: phase, Position: position}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// terminalSurface adapts a tcell screen to foil.Surface: one cell per
// pixel, LTR, and a stored paint command replayed on render.
type terminalSurface struct {
	screen  tcell.Screen
	command foil.PaintCommand
	painted bool
}

func (s *terminalSurface) Size() graphics.Size {
	w, h := s.screen.Size()
	return graphics.Size{Width: float64(w), Height: float64(h)}
}

func (s *terminalSurface) Directionality() foil.TextDirection {
	return foil.DirectionLTR
}

func (s *terminalSurface) Paint(command foil.PaintCommand) {
	s.command = command
	s.painted = true
}

// base is the child visual the gradient composites over.
var base = colorful.Color{R: 0.08, G: 0.09, B: 0.12}

func (s *terminalSurface) render(presetName string) {
	if !s.painted {
		return
	}
	w, h := s.screen.Size()
	size := graphics.Size{Width: float64(w), Height: float64(h)}
	cmd := s.command

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			point := graphics.Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			style := tcell.StyleDefault.Background(toTcell(base))
			inMask := point.X >= cmd.MaskRect.Left && point.X < cmd.MaskRect.Right &&
				point.Y >= cmd.MaskRect.Top && point.Y < cmd.MaskRect.Bottom
			if inMask {
				sample := cmd.Gradient.Sample(point, size, cmd.Translation)
				r, g, b, a := sample.RGBAF()
				blended := base.BlendRgb(colorful.Color{R: r, G: g, B: b}, a*0.85)
				style = tcell.StyleDefault.Background(toTcell(blended))
			}
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	status := fmt.Sprintf(" %s | space: next preset, s: sensor, q: quit ", presetName)
	drawText(s.screen, 1, h-1, status)
	s.screen.Show()
}

func toTcell(c colorful.Color) tcell.Color {
	cl := c.Clamped()
	return tcell.NewRGBColor(int32(cl.R*255), int32(cl.G*255), int32(cl.B*255))
}

func drawText(screen tcell.Screen, x, y int, text string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
