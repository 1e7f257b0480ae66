package params

import (
	"errors"
	"image"
	"strings"

	"github.com/ironsheep/collager/internal/random"
)

// ErrEmptyLibrary is returned when a chain is built for an empty library.
var ErrEmptyLibrary = errors.New("overlay library is empty")

// Chain is the ordered parameter list of one candidate layer.
type Chain struct {
	params []Parameter
}

// NewChain draws a fresh random chain. Nodes are initialized in chain order;
// disabled nodes draw nothing.
func NewChain(src random.Source, features Features, librarySize int) (Chain, error) {
	if librarySize <= 0 {
		return Chain{}, ErrEmptyLibrary
	}

	return Chain{params: []Parameter{
		NewIndex(src, librarySize),
		NewScale(src, features.Scaling),
		NewHue(src, features.Hue),
		NewTransparency(src, features.Transparency),
		NewAngle(src, features.Rotation),
		NewPosition(src),
	}}, nil
}

// Params returns the nodes in application order.
func (c Chain) Params() []Parameter {
	return c.params
}

// Run threads a state through every node.
func (c Chain) Run(st State) State {
	for _, p := range c.params {
		st = p.Apply(st)
	}
	return st
}

// Apply composites the layer described by the chain onto a copy of canvas.
// It returns the new canvas and the rectangle that differs from the input.
func (c Chain) Apply(library []*Image, canvas *Image) (*Image, image.Rectangle) {
	st := c.Run(State{Library: library, Canvas: canvas})
	return st.Canvas, st.Touched
}

// Perturb returns a chain with every node perturbed once.
func (c Chain) Perturb(src random.Source, temperature float32) Chain {
	next := make([]Parameter, len(c.params))
	for i, p := range c.params {
		next[i] = p.Perturb(src, temperature)
	}
	return Chain{params: next}
}

func (c Chain) String() string {
	parts := make([]string, len(c.params))
	for i, p := range c.params {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
