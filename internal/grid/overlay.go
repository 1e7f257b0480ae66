package grid

import (
	"image"
	"math"
)

// snap absorbs float32 angle error when a corner should sit on a pixel edge.
const snap = 1e-3

// Blender is implemented by element types that can composite another value
// of the same type on top of themselves.
type Blender[T any] interface {
	Over(top T) T
}

// Overlay composites src onto dst with src's top-left corner at position.
// Destination pixels outside dst are dropped. It returns the rectangle of dst
// that was written, which is empty when the placement misses dst entirely.
func Overlay[T Blender[T]](dst, src *Grid[T], position Pos) image.Rectangle {
	placed := image.Rect(position.X, position.Y, position.X+src.width, position.Y+src.height)
	touched := placed.Intersect(dst.Bounds())

	for y := touched.Min.Y; y < touched.Max.Y; y++ {
		srcRow := (y - position.Y) * src.width
		dstRow := y * dst.width
		for x := touched.Min.X; x < touched.Max.X; x++ {
			d := &dst.data[dstRow+x]
			*d = (*d).Over(src.data[srcRow+x-position.X])
		}
	}

	return touched
}

// OverlayRotated composites src onto dst rotated by angle radians around the
// center of the placement rectangle (position + size/2). Positive angles turn
// counter-clockwise in mathematical orientation, which appears clockwise with
// y pointing down.
//
// Only destination pixels inside the rotated bounding box are visited. Each
// pixel center is inverse-rotated into src's frame, rounded to the nearest
// source pixel, and blended when that pixel exists. The returned rectangle is
// the clipped bounding box.
func OverlayRotated[T Blender[T]](dst, src *Grid[T], position Pos, angle float32) image.Rectangle {
	halfW := float64(src.width) / 2
	halfH := float64(src.height) / 2
	cx := float64(position.X) + halfW
	cy := float64(position.Y) + halfH

	sin, cos := math.Sincos(float64(angle))

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4][2]float64{
		{-halfW, -halfH},
		{halfW, -halfH},
		{-halfW, halfH},
		{halfW, halfH},
	} {
		rx := cx + corner[0]*cos - corner[1]*sin
		ry := cy + corner[0]*sin + corner[1]*cos
		minX = math.Min(minX, rx)
		minY = math.Min(minY, ry)
		maxX = math.Max(maxX, rx)
		maxY = math.Max(maxY, ry)
	}

	box := image.Rect(
		int(math.Floor(minX+snap)), int(math.Floor(minY+snap)),
		int(math.Ceil(maxX-snap)), int(math.Ceil(maxY-snap)),
	)
	touched := box.Intersect(dst.Bounds())

	for y := touched.Min.Y; y < touched.Max.Y; y++ {
		dy := float64(y) + 0.5 - cy
		dstRow := y * dst.width
		for x := touched.Min.X; x < touched.Max.X; x++ {
			dx := float64(x) + 0.5 - cx

			sx := int(math.Round(dx*cos + dy*sin + halfW - 0.5))
			sy := int(math.Round(-dx*sin + dy*cos + halfH - 0.5))
			if sx < 0 || sy < 0 || sx >= src.width || sy >= src.height {
				continue
			}

			d := &dst.data[dstRow+x]
			*d = (*d).Over(src.data[sy*src.width+sx])
		}
	}

	return touched
}
