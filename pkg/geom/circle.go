package geom

// Circle is a center point and a radius.
type Circle[T Scalar] struct {
	Center Vec2[T]
	Radius T
}

// NewCircle creates a circle from its center and radius.
func NewCircle[T Scalar](center Vec2[T], radius T) Circle[T] {
	return Circle[T]{Center: center, Radius: radius}
}
