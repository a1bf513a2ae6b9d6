package grid

import (
	"iter"

	"github.com/zeusync/geometry/pkg/sequence"
)

// WrappingGrid addresses a Grid toroidally: a coordinate past one edge
// re-enters from the opposite edge. Any signed (x, y) is valid.
type WrappingGrid[T any] struct {
	inner *Grid[T]
}

// Wrap takes ownership of g. Grids with a zero dimension have nothing to wrap
// onto and are rejected with ErrDegenerateGrid.
func Wrap[T any](g *Grid[T]) (*WrappingGrid[T], error) {
	if g == nil || g.width == 0 || g.height == 0 {
		return nil, ErrDegenerateGrid
	}
	return &WrappingGrid[T]{inner: g}, nil
}

// Unwrap returns the inner grid. The grid is shared, not copied: writes
// through w stay visible in the returned grid and the reverse. Callers that
// want the grid to themselves drop w after unwrapping.
func (w *WrappingGrid[T]) Unwrap() *Grid[T] {
	return w.inner
}

// WrapCoords maps any signed (x, y) into [0, width) x [0, height).
func (w *WrappingGrid[T]) WrapCoords(x, y int) (int, int) {
	return euclidMod(x, w.inner.width), euclidMod(y, w.inner.height)
}

func euclidMod(v, n int) int {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}

// At returns the element at the wrapped position of (x, y).
func (w *WrappingGrid[T]) At(x, y int) T {
	return w.inner.At(w.WrapCoords(x, y))
}

// Ptr returns a pointer to the element at the wrapped position of (x, y).
func (w *WrappingGrid[T]) Ptr(x, y int) *T {
	return w.inner.Ptr(w.WrapCoords(x, y))
}

// Set stores v at the wrapped position of (x, y).
func (w *WrappingGrid[T]) Set(x, y int, v T) {
	wx, wy := w.WrapCoords(x, y)
	w.inner.Set(wx, wy, v)
}

// InBounds is always true: every coordinate wraps onto a cell.
func (w *WrappingGrid[T]) InBounds(_, _ int) bool { return true }

// Neighbors yields the eight Moore neighbours of (x, y), row by row, skipping
// (x, y) itself. On grids narrower than three cells a neighbour may be
// yielded more than once or be the centre cell itself.
func (w *WrappingGrid[T]) Neighbors(x, y int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if !yield(w.At(x+dx, y+dy)) {
					return
				}
			}
		}
	}
}

func (w *WrappingGrid[T]) Width() int                         { return w.inner.Width() }
func (w *WrappingGrid[T]) Height() int                        { return w.inner.Height() }
func (w *WrappingGrid[T]) Len() int                           { return w.inner.Len() }
func (w *WrappingGrid[T]) Iter() iter.Seq[T]                  { return w.inner.Iter() }
func (w *WrappingGrid[T]) IterMut() iter.Seq[*T]              { return w.inner.IterMut() }
func (w *WrappingGrid[T]) Coordinates() *Coordinates          { return w.inner.Coordinates() }
func (w *WrappingGrid[T]) Cells() *sequence.Iterator[Cell[T]] { return w.inner.Cells() }
