package params

import (
	"fmt"
	"math"

	"github.com/ironsheep/collager/internal/grid"
	"github.com/ironsheep/collager/internal/random"
	"github.com/ironsheep/collager/internal/vec"
)

const (
	tau        = 2 * math.Pi
	angleNoise = 0.01
)

// Angle stages a rotation for Position to composite with.
type Angle struct {
	Value *float32
}

// NewAngle draws an angle in [0, 2π), or returns a disabled node.
func NewAngle(src random.Source, enabled bool) Angle {
	if !enabled {
		return Angle{}
	}
	v := random.Range(src, 0, tau)
	return Angle{Value: &v}
}

func (p Angle) Kind() Kind    { return KindAngle }
func (p Angle) Enabled() bool { return p.Value != nil }

func (p Angle) Apply(st State) State {
	if p.Value == nil {
		return st
	}
	v := *p.Value
	st.Angle = &v
	return st
}

// Perturb adds noise of amplitude temperature*0.01 and wraps into [0, 2π).
func (p Angle) Perturb(src random.Source, temperature float32) Parameter {
	if p.Value == nil {
		return p
	}
	v := wrapAngle(*p.Value + random.Noise(src, temperature*angleNoise))
	return Angle{Value: &v}
}

func (p Angle) String() string {
	if p.Value == nil {
		return "angle=off"
	}
	return fmt.Sprintf("angle=%.4f", *p.Value)
}

func wrapAngle(v float32) float32 {
	w := math.Mod(float64(v), tau)
	if w < 0 {
		w += tau
	}
	// float32 rounding can push a value just under 2π up to it
	if r := float32(w); r < float32(tau) {
		return r
	}
	return 0
}

// Position places the overlay on the canvas. Norm is relative to the canvas
// size and may leave [0, 1] between applications; it is clamped on Apply.
type Position struct {
	Norm vec.Point2[float32]
}

// NewPosition draws a normalized position in [0, 1)².
func NewPosition(src random.Source) Position {
	return Position{Norm: vec.Pt(src.Float32(), src.Float32())}
}

func (p Position) Kind() Kind    { return KindPosition }
func (p Position) Enabled() bool { return true }

// Offset converts the normalized position into a pixel offset for an overlay
// of the given size. Each axis is clamped to [0, canvas-overlay], or pinned to
// 0 when the overlay is larger than the canvas.
func (p Position) Offset(canvas, overlay grid.Pos) grid.Pos {
	raw := vec.Convert(p.Norm.Mul(vec.ToFloat32(canvas)), func(v float32) int {
		return int(math.Round(float64(v)))
	})
	limit := canvas.Sub(overlay).Map(func(v int) int { return max(0, v) })

	return raw.Zip(limit, func(v, hi int) int {
		return min(max(v, 0), hi)
	})
}

// Apply composites the staged overlay onto a copy of the canvas. A staged
// angle selects the rotated composite; otherwise the plain one is used.
func (p Position) Apply(st State) State {
	if st.Overlay == nil {
		return st
	}

	offset := p.Offset(st.Canvas.Size(), st.Overlay.Size())
	canvas := st.Canvas.Clone()

	if st.Angle != nil {
		st.Touched = grid.OverlayRotated(canvas, st.Overlay, offset, *st.Angle)
	} else {
		st.Touched = grid.Overlay(canvas, st.Overlay, offset)
	}

	st.Canvas = canvas
	return st
}

// Perturb adds noise of amplitude temperature to each axis. No clamping.
func (p Position) Perturb(src random.Source, temperature float32) Parameter {
	return Position{Norm: vec.Pt(
		p.Norm.X+random.Noise(src, temperature),
		p.Norm.Y+random.Noise(src, temperature),
	)}
}

func (p Position) String() string {
	return fmt.Sprintf("position=(%.3f,%.3f)", p.Norm.X, p.Norm.Y)
}
