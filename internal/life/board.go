// Package life runs outer-totalistic cellular automata (Conway's Game of Life
// and relatives) on a toroidal board.
package life

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/zeusync/geometry/internal/config"
	"github.com/zeusync/geometry/pkg/geom"
	"github.com/zeusync/geometry/pkg/grid"
)

var ErrEmptyBoard = errors.New("board must have positive width and height")

// Rule is a birth/survive neighbour-count rule, e.g. B3/S23.
type Rule struct {
	birth   [9]bool
	survive [9]bool
}

func NewRule(r config.Rule) Rule {
	var out Rule
	for _, n := range r.Birth {
		if n >= 0 && n <= 8 {
			out.birth[n] = true
		}
	}
	for _, n := range r.Survive {
		if n >= 0 && n <= 8 {
			out.survive[n] = true
		}
	}
	return out
}

// Next returns the state of a cell given its state and live neighbour count.
func (r Rule) Next(alive bool, neighbours int) bool {
	if alive {
		return r.survive[neighbours]
	}
	return r.birth[neighbours]
}

func (r Rule) String() string {
	s := []byte{'B'}
	for n, ok := range r.birth {
		if ok {
			s = append(s, byte('0'+n))
		}
	}
	s = append(s, '/', 'S')
	for n, ok := range r.survive {
		if ok {
			s = append(s, byte('0'+n))
		}
	}
	return string(s)
}

// Board is a generation of cells on a torus.
type Board struct {
	cells *grid.WrappingGrid[bool]
	rule  Rule
}

// NewBoard returns an empty width x height board.
func NewBoard(width, height int, rule Rule) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyBoard, width, height)
	}
	cells, err := grid.Wrap(grid.FromElem(width, height, false))
	if err != nil {
		return nil, err
	}
	return &Board{cells: cells, rule: rule}, nil
}

func (b *Board) Width() int  { return b.cells.Width() }
func (b *Board) Height() int { return b.cells.Height() }

// Bounds is the board area as a rectangle at the origin.
func (b *Board) Bounds() geom.Rect[int] {
	return geom.NewRect(0, 0, b.Width(), b.Height())
}

// Alive reports the state of (x, y), wrapping at the edges.
func (b *Board) Alive(x, y int) bool {
	return b.cells.At(x, y)
}

// SetAlive sets the state of (x, y), wrapping at the edges.
func (b *Board) SetAlive(x, y int, alive bool) {
	b.cells.Set(x, y, alive)
}

// Fill sets every cell of r that lies on the board. Parts of r outside the
// board are dropped, not wrapped. Rectangles with a negative extent set
// nothing. It returns the number of cells set.
func (b *Board) Fill(r geom.Rect[int]) int {
	clip, ok := b.Bounds().Intersect(r)
	if !ok || clip.Width <= 0 || clip.Height <= 0 {
		return 0
	}
	for y := clip.Top(); y < clip.Bottom(); y++ {
		for x := clip.Left(); x < clip.Right(); x++ {
			b.cells.Set(x, y, true)
		}
	}
	return clip.Area()
}

// Stamp sets each offset, translated by origin, wrapping at the edges.
func (b *Board) Stamp(origin geom.Vec2[int], offsets []geom.Vec2[int]) {
	for _, o := range offsets {
		p := origin.Add(o)
		b.cells.Set(p.X, p.Y, true)
	}
}

// Population counts live cells.
func (b *Board) Population() int {
	return b.cells.Cells().Filter(func(c grid.Cell[bool]) bool { return c.Value }).Count()
}

// LiveCells returns the coordinates of live cells in row-major order.
func (b *Board) LiveCells() []geom.Vec2[int] {
	var out []geom.Vec2[int]
	for c := range b.cells.Cells().Filter(func(c grid.Cell[bool]) bool { return c.Value }).Seq() {
		out = append(out, geom.NewVec2(c.X, c.Y))
	}
	return out
}

func (b *Board) neighbours(x, y int) int {
	n := 0
	for alive := range b.cells.Neighbors(x, y) {
		if alive {
			n++
		}
	}
	return n
}

// Step returns the next generation. The receiver is left untouched.
func (b *Board) Step() *Board {
	next := grid.FromFn(b.Width(), b.Height(), func(x, y int) bool {
		return b.rule.Next(b.cells.At(x, y), b.neighbours(x, y))
	})
	// dimensions are unchanged, so Wrap cannot fail
	cells, _ := grid.Wrap(next)
	return &Board{cells: cells, rule: b.rule}
}

// Fingerprint hashes the board state.
func (b *Board) Fingerprint() uint64 {
	return grid.Fingerprint[bool](b.cells, grid.EncodeBool)
}

// Equal reports whether both boards hold the same cells.
func (b *Board) Equal(o *Board) bool {
	return b.Width() == o.Width() && b.Height() == o.Height() &&
		slices.Equal(slices.Collect(b.cells.Iter()), slices.Collect(o.cells.Iter()))
}

// Render writes one line per row, '#' for live and '.' for dead cells.
func (b *Board) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	c := b.cells.Coordinates()
	for x, y, ok := c.Next(); ok; x, y, ok = c.Next() {
		ch := byte('.')
		if b.cells.At(x, y) {
			ch = '#'
		}
		_ = bw.WriteByte(ch)
		if x == b.Width()-1 {
			_ = bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
