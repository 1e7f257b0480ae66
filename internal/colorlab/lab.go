// Package colorlab provides the perceptual color values the collage search
// operates on.
//
// # Color Representation
//
// Lab is CIE L*a*b* under a D65 white point:
//   - L: lightness, 0 (black) to 100 (white)
//   - A: green (negative) to red (positive), roughly -128 to 127
//   - B: blue (negative) to yellow (positive), roughly -128 to 127
//
// Laba adds a straight (non-premultiplied) alpha in [0, 1].
//
// # Conversion
//
// FromRGB interprets its inputs as linear RGB in [0, 1] and converts through
// XYZ using go-colorful. ToRGB is the inverse and round-trips to within 1e-3
// for every in-gamut color.
//
// # Compositing
//
// Blend applies the Porter-Duff "over" operator directly to the Lab channels.
// This is not colorimetrically exact since Lab is not linear in light.
package colorlab

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/collager/internal/random"
)

// Lab is a color in CIE L*a*b* space with L on a 0-100 scale.
type Lab struct {
	L float32
	A float32
	B float32
}

// Laba is a Lab color with straight alpha.
type Laba struct {
	Lab
	Alpha float32
}

// colorful scales L to [0,1] and a/b by the same factor.
const labScale = 100

// FromRGB converts linear RGB components in [0, 1] to Lab.
func FromRGB(r, g, b float32) Lab {
	l, a, bb := colorful.LinearRgb(float64(r), float64(g), float64(b)).Lab()
	return Lab{
		L: float32(l * labScale),
		A: float32(a * labScale),
		B: float32(bb * labScale),
	}
}

// ToRGB converts back to linear RGB. Out-of-gamut colors produce components
// outside [0, 1]; callers that encode the result must clamp.
func (c Lab) ToRGB() (r, g, b float32) {
	lr, lg, lb := colorful.Lab(
		float64(c.L)/labScale,
		float64(c.A)/labScale,
		float64(c.B)/labScale,
	).LinearRgb()
	return float32(lr), float32(lg), float32(lb)
}

// Distance is the Euclidean distance between two Lab colors (CIE76 delta E).
func Distance(x, y Lab) float32 {
	dl := float64(x.L - y.L)
	da := float64(x.A - y.A)
	db := float64(x.B - y.B)
	return float32(math.Sqrt(dl*dl + da*da + db*db))
}

// Add returns the channel-wise sum of two Lab values.
func (c Lab) Add(o Lab) Lab {
	return Lab{L: c.L + o.L, A: c.A + o.A, B: c.B + o.B}
}

// WithAlpha attaches an alpha value.
func (c Lab) WithAlpha(alpha float32) Laba {
	return Laba{Lab: c, Alpha: alpha}
}

// NoAlpha drops the alpha channel.
func (c Laba) NoAlpha() Lab {
	return c.Lab
}

// Blend composites top over base. A fully transparent result is the zero value.
func Blend(base, top Laba) Laba {
	rest := base.Alpha * (1 - top.Alpha)
	alpha := top.Alpha + rest
	if alpha <= 0 {
		return Laba{}
	}

	mix := func(b, t float32) float32 {
		return (t*top.Alpha + b*rest) / alpha
	}

	return Laba{
		Lab: Lab{
			L: mix(base.L, top.L),
			A: mix(base.A, top.A),
			B: mix(base.B, top.B),
		},
		Alpha: alpha,
	}
}

// Over blends top over c. It lets Laba satisfy the grid compositing
// constraint.
func (c Laba) Over(top Laba) Laba {
	return Blend(c, top)
}

// RandomColor returns a uniformly random in-gamut RGB color converted to Lab.
func RandomColor(src random.Source) Lab {
	return FromRGB(src.Float32(), src.Float32(), src.Float32())
}
