package imaging

import (
	"fmt"
	"image"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/collager/internal/colorlab"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult describes a Lab color the way it will appear in the output
// file.
//
// The collage works in Lab, which is hard to read in logs. ColorResult gives
// the same color in the formats people usually recognize:
//   - Hex: "#RRGGBB" as written by Save
//   - RGB: 8-bit components
//   - HSL: hue in degrees, saturation and lightness in percent
type ColorResult struct {
	Hex string   `json:"hex"`
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// DescribeColor renders c through the same 8-bit quantization as ToNRGBA.
func DescribeColor(c colorlab.Lab) ColorResult {
	r, g, b := c.ToRGB()
	r8, g8, b8 := byteOf(r), byteOf(g), byteOf(b)

	h, s, l := colorful.Color{R: float64(unit(r8)), G: float64(unit(g8)), B: float64(unit(b8))}.Hsl()

	return ColorResult{
		Hex: fmt.Sprintf("#%02X%02X%02X", r8, g8, b8),
		RGB: RGBColor{R: r8, G: g8, B: b8},
		HSL: HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}

// String returns the hex form.
func (c ColorResult) String() string {
	return c.Hex
}

// DominantLab returns the most prominent color of img in Lab space.
//
// The dominant color is found by clustering the image pixels, so it is the
// color of the largest uniform area rather than the average. It is used to
// seed the background search so the first steps start near a plausible
// answer.
func DominantLab(img image.Image) colorlab.Lab {
	c := dominantcolor.Find(img)
	return colorlab.FromRGB(unit(c.R), unit(c.G), unit(c.B))
}
