package geom

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Y grows downward, so Bottom is Y+Height.
//
// Width and Height are not checked; intersection results only make sense for
// non-negative extents.
type Rect[T Scalar] struct {
	X, Y          T
	Width, Height T
}

// NewRect creates a rectangle from its top-left corner and extents.
func NewRect[T Scalar](x, y, width, height T) Rect[T] {
	return Rect[T]{X: x, Y: y, Width: width, Height: height}
}

// Left returns the x of the left edge.
func (r Rect[T]) Left() T { return r.X }

// Right returns the x of the right edge, X+Width.
func (r Rect[T]) Right() T { return r.X + r.Width }

// Top returns the y of the top edge.
func (r Rect[T]) Top() T { return r.Y }

// Bottom returns the y of the bottom edge, Y+Height.
func (r Rect[T]) Bottom() T { return r.Y + r.Height }

// TopLeft returns the (Left, Top) corner.
func (r Rect[T]) TopLeft() Vec2[T] { return Vec2[T]{X: r.Left(), Y: r.Top()} }

// TopRight returns the (Right, Top) corner.
func (r Rect[T]) TopRight() Vec2[T] { return Vec2[T]{X: r.Right(), Y: r.Top()} }

// BottomLeft returns the (Left, Bottom) corner.
func (r Rect[T]) BottomLeft() Vec2[T] { return Vec2[T]{X: r.Left(), Y: r.Bottom()} }

// BottomRight returns the (Right, Bottom) corner.
func (r Rect[T]) BottomRight() Vec2[T] { return Vec2[T]{X: r.Right(), Y: r.Bottom()} }

// Center returns the midpoint of the rectangle.
func (r Rect[T]) Center() Vec2[T] {
	return Vec2[T]{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Area returns Width*Height.
func (r Rect[T]) Area() T {
	return r.Width * r.Height
}

// MoveVec translates the rectangle in place by v.
func (r *Rect[T]) MoveVec(v Vec2[T]) {
	r.X += v.X
	r.Y += v.Y
}

// ContainsPoint reports whether p lies inside r. The right and bottom edges
// are exclusive.
func (r Rect[T]) ContainsPoint(p Vec2[T]) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// IntersectArea returns the area shared by r and o, or 0 when they do not
// overlap. Extents are compared before subtracting so unsigned element
// types cannot wrap around.
func (r Rect[T]) IntersectArea(o Rect[T]) T {
	right, left := min(r.Right(), o.Right()), max(r.Left(), o.Left())
	bottom, top := min(r.Bottom(), o.Bottom()), max(r.Top(), o.Top())
	if right < left || bottom < top {
		return 0
	}
	return (right - left) * (bottom - top)
}

// Intersect returns the overlapping rectangle of r and o. The boolean is false
// when they are disjoint. Rectangles sharing only an edge intersect in a
// zero-sized rectangle.
func (r Rect[T]) Intersect(o Rect[T]) (Rect[T], bool) {
	if r.Right() < o.Left() || r.Left() > o.Right() ||
		r.Bottom() < o.Top() || r.Top() > o.Bottom() {
		return Rect[T]{}, false
	}

	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	return Rect[T]{
		X:      x,
		Y:      y,
		Width:  min(r.Right(), o.Right()) - x,
		Height: min(r.Bottom(), o.Bottom()) - y,
	}, true
}
