package params

import (
	"github.com/ironsheep/collager/internal/random"
)

// Kind identifies a Parameter variant.
type Kind int

const (
	KindIndex Kind = iota
	KindScale
	KindHue
	KindTransparency
	KindAngle
	KindPosition
)

func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindScale:
		return "scale"
	case KindHue:
		return "hue"
	case KindTransparency:
		return "transparency"
	case KindAngle:
		return "angle"
	case KindPosition:
		return "position"
	default:
		return "unknown"
	}
}

// Parameter is one node of a Chain.
type Parameter interface {
	// Kind reports which variant this is.
	Kind() Kind

	// Apply transforms the state. It never mutates the library or the input
	// canvas.
	Apply(st State) State

	// Perturb returns a randomly changed copy of the node. The receiver is not
	// modified.
	Perturb(src random.Source, temperature float32) Parameter

	// Enabled reports whether the node holds a value.
	Enabled() bool

	String() string
}

// Features selects the optional nodes for a run.
type Features struct {
	Scaling      bool
	Rotation     bool
	Hue          bool
	Transparency bool
}

// AllFeatures enables every optional node.
func AllFeatures() Features {
	return Features{Scaling: true, Rotation: true, Hue: true, Transparency: true}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
