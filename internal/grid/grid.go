package grid

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/collager/internal/vec"
)

// ErrSizeMismatch is returned when a buffer does not hold exactly
// width*height elements or a dimension is not positive.
var ErrSizeMismatch = errors.New("buffer length does not match dimensions")

// Pos is an integer pixel coordinate or size.
type Pos = vec.Point2[int]

// Grid is a width x height buffer stored row-major.
type Grid[T any] struct {
	width  int
	height int
	data   []T
}

// New creates a grid with every element set to fill.
func New[T any](width, height int, fill T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d: %w", width, height, ErrSizeMismatch)
	}

	data := make([]T, width*height)
	for i := range data {
		data[i] = fill
	}

	return &Grid[T]{width: width, height: height, data: data}, nil
}

// FromRaw wraps an existing row-major buffer. The grid takes ownership of data.
func FromRaw[T any](data []T, width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 || len(data) != width*height {
		return nil, fmt.Errorf("got %d elements for %dx%d: %w", len(data), width, height, ErrSizeMismatch)
	}

	return &Grid[T]{width: width, height: height, data: data}, nil
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }

// Size returns (width, height).
func (g *Grid[T]) Size() Pos {
	return vec.Pt(g.width, g.height)
}

// Bounds returns the grid extent as an image.Rectangle anchored at the origin.
func (g *Grid[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// Pixels exposes the underlying row-major slice.
func (g *Grid[T]) Pixels() []T {
	return g.data
}

// Clone returns a deep copy of the buffer.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{width: g.width, height: g.height, data: data}
}

// Contains reports whether pos is inside the grid.
func (g *Grid[T]) Contains(pos Pos) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < g.width && pos.Y < g.height
}

func (g *Grid[T]) index(pos Pos) int {
	return pos.Y*g.width + pos.X
}

// Get returns the value at pos, or ok=false when pos is out of range.
func (g *Grid[T]) Get(pos Pos) (T, bool) {
	if !g.Contains(pos) {
		var zero T
		return zero, false
	}
	return g.data[g.index(pos)], true
}

// GetMut returns a pointer to the value at pos, or nil when out of range.
func (g *Grid[T]) GetMut(pos Pos) *T {
	if !g.Contains(pos) {
		return nil
	}
	return &g.data[g.index(pos)]
}

// Set stores v at pos. Out-of-range positions are ignored and report false.
func (g *Grid[T]) Set(pos Pos, v T) bool {
	p := g.GetMut(pos)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Map returns a new grid with f applied to every element.
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	data := make([]U, len(g.data))
	for i, v := range g.data {
		data[i] = f(v)
	}
	return &Grid[U]{width: g.width, height: g.height, data: data}
}

// ResizedNearest returns a nearest-neighbor resample of g with exactly the
// requested size. Each destination pixel reads the source at
// floor(dst * oldSize/newSize), clamped to the source. Pixels may be duplicated
// or skipped; nothing is filtered.
func (g *Grid[T]) ResizedNearest(size Pos) (*Grid[T], error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("invalid resize target %dx%d: %w", size.X, size.Y, ErrSizeMismatch)
	}

	scaleX := float64(g.width) / float64(size.X)
	scaleY := float64(g.height) / float64(size.Y)

	data := make([]T, size.X*size.Y)
	for y := 0; y < size.Y; y++ {
		sy := clamp(int(math.Floor(float64(y)*scaleY)), 0, g.height-1)
		row := sy * g.width
		for x := 0; x < size.X; x++ {
			sx := clamp(int(math.Floor(float64(x)*scaleX)), 0, g.width-1)
			data[y*size.X+x] = g.data[row+sx]
		}
	}

	return &Grid[T]{width: size.X, height: size.Y, data: data}, nil
}

// clamp constrains an integer value to the range [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
