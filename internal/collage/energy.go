package collage

import (
	"image"

	"github.com/ironsheep/collager/internal/colorlab"
	"github.com/ironsheep/collager/internal/grid"
	"github.com/ironsheep/collager/internal/params"
)

// Target is the Lab image being approximated.
type Target = grid.Grid[colorlab.Lab]

// totalDistance sums the Lab distance between target and canvas over every
// pixel. Both must have the same size.
func totalDistance(target *Target, canvas *params.Image) float64 {
	t := target.Pixels()
	c := canvas.Pixels()

	var sum float64
	for i := range t {
		sum += float64(colorlab.Distance(t[i], c[i].NoAlpha()))
	}
	return sum
}

// scorer caches the per-pixel distances of one base canvas so that a
// candidate that changed only a rectangle can be scored by revisiting it.
type scorer struct {
	target *Target
	base   []float32
	total  float64
}

func newScorer(target *Target, canvas *params.Image) *scorer {
	t := target.Pixels()
	c := canvas.Pixels()

	base := make([]float32, len(t))
	var total float64
	for i := range t {
		base[i] = colorlab.Distance(t[i], c[i].NoAlpha())
		total += float64(base[i])
	}

	return &scorer{target: target, base: base, total: total}
}

// energy scores a canvas that equals the base canvas outside touched.
func (s *scorer) energy(canvas *params.Image, touched image.Rectangle) float32 {
	t := s.target.Pixels()
	c := canvas.Pixels()
	width := s.target.Width()

	var delta float64
	for y := touched.Min.Y; y < touched.Max.Y; y++ {
		row := y * width
		for x := touched.Min.X; x < touched.Max.X; x++ {
			i := row + x
			delta += float64(colorlab.Distance(t[i], c[i].NoAlpha())) - float64(s.base[i])
		}
	}

	return float32(s.total + delta)
}
