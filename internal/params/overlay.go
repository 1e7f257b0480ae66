package params

import (
	"fmt"
	"math"

	"github.com/ironsheep/collager/internal/colorlab"
	"github.com/ironsheep/collager/internal/random"
	"github.com/ironsheep/collager/internal/vec"
)

const (
	scaleMin       = 0.5
	scaleMax       = 1.5
	scaleFloor     = 0.05
	scaleNoise     = 0.5
	hueLightness   = 25
	hueChroma      = 50
	hueNoise       = 20
	alphaFloor     = 0.05
	alphaNoise     = 0.01
	alphaOffsetMax = 1
)

// Index selects which library image the layer uses.
type Index struct {
	Value int
	n     int
}

// NewIndex draws a uniform index in [0, n). n must be positive.
func NewIndex(src random.Source, n int) Index {
	return Index{Value: src.IntN(n), n: n}
}

func (p Index) Kind() Kind    { return KindIndex }
func (p Index) Enabled() bool { return true }

// Apply stages a copy of the selected library image.
func (p Index) Apply(st State) State {
	st.Overlay = st.Library[p.Value].Clone()
	return st
}

// Perturb resamples the index with probability equal to temperature.
func (p Index) Perturb(src random.Source, temperature float32) Parameter {
	if src.Float32() < temperature {
		p.Value = src.IntN(p.n)
	}
	return p
}

func (p Index) String() string {
	return fmt.Sprintf("index=%d", p.Value)
}

// Scale resizes the staged overlay by a per-axis factor.
type Scale struct {
	Factor *vec.Point2[float32]
}

// NewScale draws per-axis factors in [0.5, 1.5), or returns a disabled node.
func NewScale(src random.Source, enabled bool) Scale {
	if !enabled {
		return Scale{}
	}
	f := vec.Pt(random.Range(src, scaleMin, scaleMax), random.Range(src, scaleMin, scaleMax))
	return Scale{Factor: &f}
}

func (p Scale) Kind() Kind    { return KindScale }
func (p Scale) Enabled() bool { return p.Factor != nil }

// Apply resizes the overlay to round(size*factor), never below one pixel.
func (p Scale) Apply(st State) State {
	if p.Factor == nil || st.Overlay == nil {
		return st
	}

	size := vec.ToFloat32(st.Overlay.Size()).Mul(*p.Factor)
	target := vec.Convert(size, func(v float32) int {
		return max(1, int(math.Round(float64(v))))
	})

	resized, err := st.Overlay.ResizedNearest(target)
	if err != nil {
		// target is at least 1x1, so this cannot fail
		return st
	}
	st.Overlay = resized
	return st
}

// Perturb adds noise of amplitude temperature*0.5 per axis, floored at 0.05.
func (p Scale) Perturb(src random.Source, temperature float32) Parameter {
	if p.Factor == nil {
		return p
	}
	amp := temperature * scaleNoise
	f := vec.Pt(
		max(scaleFloor, p.Factor.X+random.Noise(src, amp)),
		max(scaleFloor, p.Factor.Y+random.Noise(src, amp)),
	)
	return Scale{Factor: &f}
}

func (p Scale) String() string {
	if p.Factor == nil {
		return "scale=off"
	}
	return fmt.Sprintf("scale=(%.3f,%.3f)", p.Factor.X, p.Factor.Y)
}

// Hue shifts every staged pixel by a Lab offset.
type Hue struct {
	Offset *colorlab.Lab
}

// NewHue draws L in [-25, 25) and a, b in [-50, 50), or returns a disabled node.
func NewHue(src random.Source, enabled bool) Hue {
	if !enabled {
		return Hue{}
	}
	off := colorlab.Lab{
		L: random.Range(src, -hueLightness, hueLightness),
		A: random.Range(src, -hueChroma, hueChroma),
		B: random.Range(src, -hueChroma, hueChroma),
	}
	return Hue{Offset: &off}
}

func (p Hue) Kind() Kind    { return KindHue }
func (p Hue) Enabled() bool { return p.Offset != nil }

// Apply adds the offset to every overlay pixel. Results are not clamped.
func (p Hue) Apply(st State) State {
	if p.Offset == nil || st.Overlay == nil {
		return st
	}
	px := st.Overlay.Pixels()
	for i := range px {
		px[i].Lab = px[i].Lab.Add(*p.Offset)
	}
	return st
}

// Perturb adds noise of amplitude temperature*20 to each channel.
func (p Hue) Perturb(src random.Source, temperature float32) Parameter {
	if p.Offset == nil {
		return p
	}
	amp := temperature * hueNoise
	off := colorlab.Lab{
		L: p.Offset.L + random.Noise(src, amp),
		A: p.Offset.A + random.Noise(src, amp),
		B: p.Offset.B + random.Noise(src, amp),
	}
	return Hue{Offset: &off}
}

func (p Hue) String() string {
	if p.Offset == nil {
		return "hue=off"
	}
	return fmt.Sprintf("hue=(%.2f,%.2f,%.2f)", p.Offset.L, p.Offset.A, p.Offset.B)
}

// Transparency shifts the alpha of visible overlay pixels.
type Transparency struct {
	Offset *float32
}

// NewTransparency draws an offset in [-1, 1), or returns a disabled node.
func NewTransparency(src random.Source, enabled bool) Transparency {
	if !enabled {
		return Transparency{}
	}
	off := random.Range(src, -alphaOffsetMax, alphaOffsetMax)
	return Transparency{Offset: &off}
}

func (p Transparency) Kind() Kind    { return KindTransparency }
func (p Transparency) Enabled() bool { return p.Offset != nil }

// Apply adds the offset to pixels with alpha above 0.05 and clamps them to
// [0.05, 1]. Pixels at or below the floor stay as they are.
func (p Transparency) Apply(st State) State {
	if p.Offset == nil || st.Overlay == nil {
		return st
	}
	px := st.Overlay.Pixels()
	for i := range px {
		if px[i].Alpha > alphaFloor {
			px[i].Alpha = clampf(px[i].Alpha+*p.Offset, alphaFloor, 1)
		}
	}
	return st
}

// Perturb adds noise of amplitude temperature*0.01, clamped to [-1, 1].
func (p Transparency) Perturb(src random.Source, temperature float32) Parameter {
	if p.Offset == nil {
		return p
	}
	off := clampf(*p.Offset+random.Noise(src, temperature*alphaNoise), -alphaOffsetMax, alphaOffsetMax)
	return Transparency{Offset: &off}
}

func (p Transparency) String() string {
	if p.Offset == nil {
		return "transparency=off"
	}
	return fmt.Sprintf("transparency=%.3f", *p.Offset)
}
