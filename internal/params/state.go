package params

import (
	"image"

	"github.com/ironsheep/collager/internal/colorlab"
	"github.com/ironsheep/collager/internal/grid"
)

// Image is the pixel type of canvases and library images.
type Image = grid.Grid[colorlab.Laba]

// State is the working context of one chain application. It is created per
// application and discarded afterwards.
type State struct {
	// Library is the read-only set of overlay images.
	Library []*Image

	// Canvas is the image the layer is composited onto. Position replaces it
	// with a composited copy; the input canvas is never written.
	Canvas *Image

	// Overlay is the staged layer image, nil until Index runs. It is private
	// to this application and may be edited in place.
	Overlay *Image

	// Angle is the staged rotation in radians, nil when rotation is off.
	Angle *float32

	// Touched is the canvas rectangle Position wrote to.
	Touched image.Rectangle
}
