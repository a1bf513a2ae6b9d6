// Package grid implements dense, fixed-size 2D containers.
//
// Grid stores width*height elements in one row-major slice: the element at
// (x, y) lives at index x + y*width, so x varies fastest. WrappingGrid
// layers toroidal addressing on top of a Grid.
//
// Neither type is safe for concurrent mutation.
package grid

import (
	"fmt"
	"iter"

	"github.com/zeusync/geometry/pkg/sequence"
)

// Store is the read/write surface shared by Grid and WrappingGrid.
type Store[T any] interface {
	Width() int
	Height() int
	Len() int
	At(x, y int) T
	Ptr(x, y int) *T
	Set(x, y int, v T)
	InBounds(x, y int) bool
	Iter() iter.Seq[T]
	IterMut() iter.Seq[*T]
	Coordinates() *Coordinates
	Cells() *sequence.Iterator[Cell[T]]
}

var (
	_ Store[int] = (*Grid[int])(nil)
	_ Store[int] = (*WrappingGrid[int])(nil)
)

// Cell is one grid element together with its coordinates.
type Cell[T any] struct {
	X, Y  int
	Value T
}

// Grid is a fixed-size, row-major 2D array.
type Grid[T any] struct {
	width  int
	height int
	data   []T
}

// FromElem creates a width x height grid with every cell set to a copy of v.
// Copies are shallow: pointer, slice and map elements share their referents.
func FromElem[T any](width, height int, v T) *Grid[T] {
	g := alloc[T](width, height)
	for i := range g.data {
		g.data[i] = v
	}
	return g
}

// FromFn creates a width x height grid whose cells are produced by fn.
// fn is called exactly once per cell, in row-major order, before FromFn
// returns.
func FromFn[T any](width, height int, fn func(x, y int) T) *Grid[T] {
	g := alloc[T](width, height)
	for i := range g.data {
		g.data[i] = fn(i%width, i/width)
	}
	return g
}

// FromSlice creates a grid backed by data, which must hold exactly
// width*height elements in row-major order. The slice is not copied.
func FromSlice[T any](width, height int, data []T) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeDimension, width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: %dx%d needs %d elements, got %d",
			ErrDimensionMismatch, width, height, width*height, len(data))
	}
	return &Grid[T]{width: width, height: height, data: data}, nil
}

func alloc[T any](width, height int) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", width, height))
	}
	return &Grid[T]{
		width:  width,
		height: height,
		data:   make([]T, width*height),
	}
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }

// Len returns width*height.
func (g *Grid[T]) Len() int { return len(g.data) }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid[T]) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: index (%d, %d) out of range for %dx%d grid", x, y, g.width, g.height))
	}
	return x + y*g.width
}

// At returns the element at (x, y). It panics when (x, y) is out of bounds.
func (g *Grid[T]) At(x, y int) T {
	return g.data[g.index(x, y)]
}

// Ptr returns a pointer to the element at (x, y) for in-place mutation.
// It panics when (x, y) is out of bounds.
func (g *Grid[T]) Ptr(x, y int) *T {
	return &g.data[g.index(x, y)]
}

// Set stores v at (x, y). It panics when (x, y) is out of bounds.
func (g *Grid[T]) Set(x, y int, v T) {
	g.data[g.index(x, y)] = v
}

// Iter yields the elements in row-major order.
func (g *Grid[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// IterMut yields pointers to the elements in row-major order.
func (g *Grid[T]) IterMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.data {
			if !yield(&g.data[i]) {
				return
			}
		}
	}
}

// Coordinates returns a fresh row-major walk over every (x, y) of the grid.
func (g *Grid[T]) Coordinates() *Coordinates {
	return NewCoordinates(g.width, g.height)
}

// Cells returns a queryable iterator over every cell with its coordinates.
func (g *Grid[T]) Cells() *sequence.Iterator[Cell[T]] {
	return sequence.FromSeq(func(yield func(Cell[T]) bool) {
		for i, v := range g.data {
			if !yield(Cell[T]{X: i % g.width, Y: i / g.width, Value: v}) {
				return
			}
		}
	})
}

// Clone returns a grid with a shallow copy of g's elements.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{width: g.width, height: g.height, data: data}
}
