package collage

import (
	"github.com/ironsheep/collager/internal/colorlab"
	"github.com/ironsheep/collager/internal/params"
	"github.com/ironsheep/collager/internal/random"
)

// background is a flat color candidate.
type background struct {
	target *Target
	color  colorlab.Lab
}

func (b background) Energy() float32 {
	var sum float64
	for _, px := range b.target.Pixels() {
		sum += float64(colorlab.Distance(px, b.color))
	}
	return float32(sum)
}

// RandomNeighbor moves each channel by up to temperature Lab units.
func (b background) RandomNeighbor(src random.Source, temperature float32) background {
	b.color = colorlab.Lab{
		L: b.color.L + random.Noise(src, temperature),
		A: b.color.A + random.Noise(src, temperature),
		B: b.color.B + random.Noise(src, temperature),
	}
	return b
}

// scene is the shared, read-only context of every layer candidate in one
// layer iteration.
type scene struct {
	library []*params.Image
	canvas  *params.Image
	scorer  *scorer
}

// layer is a parameter-chain candidate.
type layer struct {
	scene *scene
	chain params.Chain
}

func (l layer) Energy() float32 {
	out, touched := l.chain.Apply(l.scene.library, l.scene.canvas)
	return l.scene.scorer.energy(out, touched)
}

func (l layer) RandomNeighbor(src random.Source, temperature float32) layer {
	return layer{scene: l.scene, chain: l.chain.Perturb(src, temperature)}
}
