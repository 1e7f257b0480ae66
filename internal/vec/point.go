// Package vec provides a small generic 2D vector used for pixel positions,
// sizes, and normalized coordinates.
package vec

// Number is the set of component types a Point2 can hold.
type Number interface {
	~int | ~int32 | ~int64 | ~uint32 | ~float32 | ~float64
}

// Point2 is a pair of components. Arithmetic is component-wise.
type Point2[T Number] struct {
	X T
	Y T
}

// Pt is shorthand for Point2{X: x, Y: y}.
func Pt[T Number](x, y T) Point2[T] {
	return Point2[T]{X: x, Y: y}
}

// Splat returns a point with both components set to v.
func Splat[T Number](v T) Point2[T] {
	return Point2[T]{X: v, Y: v}
}

func (p Point2[T]) Add(o Point2[T]) Point2[T] {
	return Point2[T]{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point2[T]) Sub(o Point2[T]) Point2[T] {
	return Point2[T]{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point2[T]) Mul(o Point2[T]) Point2[T] {
	return Point2[T]{X: p.X * o.X, Y: p.Y * o.Y}
}

// Div divides component-wise. Integer division by zero panics like any Go
// integer division.
func (p Point2[T]) Div(o Point2[T]) Point2[T] {
	return Point2[T]{X: p.X / o.X, Y: p.Y / o.Y}
}

// Scale multiplies both components by s.
func (p Point2[T]) Scale(s T) Point2[T] {
	return Point2[T]{X: p.X * s, Y: p.Y * s}
}

// Map applies f to each component.
func (p Point2[T]) Map(f func(T) T) Point2[T] {
	return Point2[T]{X: f(p.X), Y: f(p.Y)}
}

// Zip combines two points component-wise with f.
func (p Point2[T]) Zip(o Point2[T], f func(a, b T) T) Point2[T] {
	return Point2[T]{X: f(p.X, o.X), Y: f(p.Y, o.Y)}
}

// Area returns X*Y.
func (p Point2[T]) Area() T {
	return p.X * p.Y
}

// Convert maps a point to another component type.
func Convert[T, U Number](p Point2[T], f func(T) U) Point2[U] {
	return Point2[U]{X: f(p.X), Y: f(p.Y)}
}

// ToFloat32 converts each component with a plain float32 conversion.
func ToFloat32[T Number](p Point2[T]) Point2[float32] {
	return Point2[float32]{X: float32(p.X), Y: float32(p.Y)}
}
