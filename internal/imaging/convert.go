package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/collager/internal/colorlab"
	"github.com/ironsheep/collager/internal/grid"
)

// LabGrid is an opaque image in Lab space.
type LabGrid = grid.Grid[colorlab.Lab]

// LabaGrid is an image in Lab space with alpha.
type LabaGrid = grid.Grid[colorlab.Laba]

// ToLabGrid converts img to Lab, dropping alpha. The channel values are read
// as linear RGB in [0,1].
func ToLabGrid(img image.Image) (*LabGrid, error) {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	data := make([]colorlab.Lab, 0, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w*4; x += 4 {
			data = append(data, colorlab.FromRGB(unit(row[x]), unit(row[x+1]), unit(row[x+2])))
		}
	}

	return grid.FromRaw(data, w, h)
}

// ToLabaGrid converts img to Lab keeping the straight alpha channel.
func ToLabaGrid(img image.Image) (*LabaGrid, error) {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	data := make([]colorlab.Laba, 0, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w*4; x += 4 {
			lab := colorlab.FromRGB(unit(row[x]), unit(row[x+1]), unit(row[x+2]))
			data = append(data, lab.WithAlpha(unit(row[x+3])))
		}
	}

	return grid.FromRaw(data, w, h)
}

// ToNRGBA renders a Lab canvas back to 8-bit RGBA. Out-of-gamut channels are
// clamped.
func ToNRGBA(canvas *LabaGrid) *image.NRGBA {
	w, h := canvas.Width(), canvas.Height()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	for i, px := range canvas.Pixels() {
		r, g, b := px.ToRGB()
		p := out.Pix[i*4 : i*4+4]
		p[0] = byteOf(r)
		p[1] = byteOf(g)
		p[2] = byteOf(b)
		p[3] = byteOf(px.Alpha)
	}

	return out
}

// FitWithin scales img down so neither side exceeds maxSize, keeping the
// aspect ratio. Images already inside the limit, and a maxSize of zero or
// less, are returned unchanged.
func FitWithin(img image.Image, maxSize int) image.Image {
	if maxSize <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= maxSize && b.Dy() <= maxSize {
		return img
	}
	return imaging.Fit(img, maxSize, maxSize, imaging.CatmullRom)
}

func unit(v uint8) float32 {
	return float32(v) / 255
}

func byteOf(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}
