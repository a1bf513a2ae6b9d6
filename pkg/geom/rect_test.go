package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_Edges(t *testing.T) {
	r := NewRect(2.0, 3.0, 10.0, 4.0)

	assert.Equal(t, 2.0, r.Left())
	assert.Equal(t, 12.0, r.Right())
	assert.Equal(t, 3.0, r.Top())
	assert.Equal(t, 7.0, r.Bottom())
	assert.Equal(t, 40.0, r.Area())

	assert.Equal(t, NewVec2(2.0, 3.0), r.TopLeft())
	assert.Equal(t, NewVec2(12.0, 3.0), r.TopRight())
	assert.Equal(t, NewVec2(2.0, 7.0), r.BottomLeft())
	assert.Equal(t, NewVec2(12.0, 7.0), r.BottomRight())
	assert.Equal(t, NewVec2(7.0, 5.0), r.Center())
}

func TestRect_MoveVec(t *testing.T) {
	r := NewRect(0.0, 0.0, 5.0, 5.0)
	r.MoveVec(NewVec2(1.5, -2.0))

	assert.Equal(t, NewRect(1.5, -2.0, 5.0, 5.0), r)
}

func TestRect_ContainsPoint(t *testing.T) {
	r := NewRect(0, 0, 4, 4)

	assert.True(t, r.ContainsPoint(NewVec2(0, 0)))
	assert.True(t, r.ContainsPoint(NewVec2(3, 3)))
	assert.False(t, r.ContainsPoint(NewVec2(4, 0)))
	assert.False(t, r.ContainsPoint(NewVec2(0, -1)))
}

func TestRect_IntersectArea(t *testing.T) {
	a := NewRect(0.0, 0.0, 10.0, 10.0)

	tests := []struct {
		name string
		b    Rect[float64]
		want float64
	}{
		{name: "self", b: a, want: 100},
		{name: "disjoint on x", b: NewRect(20.0, 0.0, 10.0, 10.0), want: 0},
		{name: "disjoint on y", b: NewRect(0.0, 20.0, 10.0, 10.0), want: 0},
		{name: "corner overlap", b: NewRect(5.0, 5.0, 10.0, 10.0), want: 25},
		{name: "contained", b: NewRect(2.0, 2.0, 3.0, 4.0), want: 12},
		{name: "touching edge", b: NewRect(10.0, 0.0, 10.0, 10.0), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.IntersectArea(tt.b))
			assert.Equal(t, tt.want, tt.b.IntersectArea(a))
		})
	}
}

func TestRect_IntersectAreaUnsigned(t *testing.T) {
	a := NewRect[uint](0, 0, 10, 10)

	assert.Equal(t, uint(0), a.IntersectArea(NewRect[uint](20, 0, 10, 10)))
	assert.Equal(t, uint(0), a.IntersectArea(NewRect[uint](0, 20, 10, 10)))
	assert.Equal(t, uint(0), NewRect[uint](20, 20, 10, 10).IntersectArea(a))
	assert.Equal(t, uint(25), a.IntersectArea(NewRect[uint](5, 5, 10, 10)))
	assert.Equal(t, uint8(4), NewRect[uint8](250, 0, 4, 4).IntersectArea(NewRect[uint8](250, 0, 2, 2)))
}

func TestRect_Intersect(t *testing.T) {
	a := NewRect(0.0, 0.0, 10.0, 10.0)

	got, ok := a.Intersect(NewRect(5.0, 5.0, 10.0, 10.0))
	require.True(t, ok)
	assert.Equal(t, NewRect(5.0, 5.0, 5.0, 5.0), got)

	got, ok = a.Intersect(NewRect(-5.0, 2.0, 8.0, 3.0))
	require.True(t, ok)
	assert.Equal(t, NewRect(0.0, 2.0, 3.0, 3.0), got)

	got, ok = a.Intersect(NewRect(10.0, 0.0, 5.0, 5.0))
	require.True(t, ok, "shared edge still intersects")
	assert.Equal(t, 0.0, got.Area())

	_, ok = a.Intersect(NewRect(20.0, 0.0, 10.0, 10.0))
	assert.False(t, ok)

	_, ok = a.Intersect(NewRect(0.0, -11.0, 10.0, 10.0))
	assert.False(t, ok)
}

func TestCircle(t *testing.T) {
	c := NewCircle(NewVec2(1.0, 2.0), 3.0)
	assert.Equal(t, NewVec2(1.0, 2.0), c.Center)
	assert.Equal(t, 3.0, c.Radius)
}
