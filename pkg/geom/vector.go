// Package geom provides small value types for 2D geometry: vectors,
// axis-aligned rectangles and circles.
//
// All types are generic over Scalar. Trigonometric operations are computed in
// float64 and converted back to the element type, so integer vectors truncate.
package geom

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vec2 is a 2-dimensional vector.
type Vec2[T Scalar] struct {
	X, Y T
}

// NewVec2 creates a vector from its components.
func NewVec2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Zero returns the vector of length 0.
func Zero[T Scalar]() Vec2[T] {
	return Vec2[T]{}
}

// UnitX returns the unit vector in the x direction.
func UnitX[T Scalar]() Vec2[T] {
	return Vec2[T]{X: 1}
}

// UnitY returns the unit vector in the y direction.
func UnitY[T Scalar]() Vec2[T] {
	return Vec2[T]{Y: 1}
}

// FromPolar creates a vector from an angle in radians and a magnitude.
func FromPolar[T Scalar](angle, magnitude T) Vec2[T] {
	sin, cos := math.Sincos(float64(angle))
	m := float64(magnitude)
	return Vec2[T]{X: T(m * cos), Y: T(m * sin)}
}

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// LengthSqr returns the squared length, avoiding the square root.
func (v Vec2[T]) LengthSqr() T {
	return v.Dot(v)
}

// Length returns the euclidean length of the vector.
func (v Vec2[T]) Length() T {
	return T(math.Sqrt(float64(v.LengthSqr())))
}

// Normalize scales v in place to unit length.
// A zero vector ends up with NaN components; callers guard against it.
func (v *Vec2[T]) Normalize() {
	l := math.Sqrt(float64(v.LengthSqr()))
	v.X = T(float64(v.X) / l)
	v.Y = T(float64(v.Y) / l)
}

// Scale returns v multiplied componentwise by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Unit returns a unit vector pointing in the direction of v.
// Like Normalize, the zero vector yields NaN components.
func (v Vec2[T]) Unit() Vec2[T] {
	u := v
	u.Normalize()
	return u
}

// Rotate rotates v in place by angle radians, counter-clockwise in a y-up frame.
func (v *Vec2[T]) Rotate(angle T) {
	sin, cos := math.Sincos(float64(angle))
	x, y := float64(v.X), float64(v.Y)
	v.X = T(x*cos - y*sin)
	v.Y = T(x*sin + y*cos)
}

// Angle returns atan2(x, y): the angle measured from the +y axis towards +x.
func (v Vec2[T]) Angle() T {
	return T(math.Atan2(float64(v.X), float64(v.Y)))
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Equal reports whether both components are within eps of o's.
func (v Vec2[T]) Equal(o Vec2[T], eps float64) bool {
	return math.Abs(float64(v.X)-float64(o.X)) <= eps &&
		math.Abs(float64(v.Y)-float64(o.Y)) <= eps
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("[%v, %v]", v.X, v.Y)
}
