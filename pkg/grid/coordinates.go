package grid

import "iter"

// Coordinates walks the cells of a width x height area in row-major order:
// every x of row 0, then every x of row 1, and so on.
type Coordinates struct {
	width  int
	height int
	next   int
}

// NewCoordinates starts a walk at (0, 0) over a width x height area.
func NewCoordinates(width, height int) *Coordinates {
	return &Coordinates{width: width, height: height}
}

// Next returns the next coordinate pair. ok is false once the walk is done.
func (c *Coordinates) Next() (x, y int, ok bool) {
	if c.next >= c.width*c.height {
		return 0, 0, false
	}
	x, y = c.next%c.width, c.next/c.width
	c.next++
	return x, y, true
}

// Remaining returns the exact number of pairs Next will still produce.
func (c *Coordinates) Remaining() int {
	return c.width*c.height - c.next
}

// Reset rewinds the walk to (0, 0).
func (c *Coordinates) Reset() {
	c.next = 0
}

// Seq yields the pairs not yet consumed by Next. Each call starts from the
// current position and does not advance c.
func (c *Coordinates) Seq() iter.Seq2[int, int] {
	start := c.next
	width, total := c.width, c.width*c.height
	return func(yield func(int, int) bool) {
		for i := start; i < total; i++ {
			if !yield(i%width, i/width) {
				return
			}
		}
	}
}
