package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestVec2_Constructors(t *testing.T) {
	assert.Equal(t, Vec2[float64]{X: 1, Y: 2}, NewVec2(1.0, 2.0))
	assert.Equal(t, Vec2[int]{}, Zero[int]())
	assert.Equal(t, Vec2[float32]{X: 1}, UnitX[float32]())
	assert.Equal(t, Vec2[float32]{Y: 1}, UnitY[float32]())
}

func TestVec2_Arithmetic(t *testing.T) {
	a := NewVec2(1.0, 2.0)
	b := NewVec2(3.0, 4.0)

	assert.Equal(t, NewVec2(4.0, 6.0), a.Add(b))
	assert.Equal(t, NewVec2(-2.0, -2.0), a.Sub(b))
	assert.Equal(t, NewVec2(-1.0, -2.0), a.Neg())
	assert.Equal(t, NewVec2(2.5, 5.0), a.Scale(2.5))
	assert.Equal(t, NewVec2(4, 6), NewVec2(1, 2).Add(NewVec2(3, 4)))
}

func TestVec2_DotAndLength(t *testing.T) {
	assert.Equal(t, 0.0, UnitX[float64]().Dot(UnitY[float64]()))
	assert.Equal(t, 11.0, NewVec2(1.0, 2.0).Dot(NewVec2(3.0, 4.0)))

	v := NewVec2(3.0, 4.0)
	assert.Equal(t, 25.0, v.LengthSqr())
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 5, NewVec2(3, 4).Length())
	assert.Equal(t, 0.0, Zero[float64]().Length())
}

func TestVec2_Normalize(t *testing.T) {
	v := NewVec2(3.0, 4.0)
	v.Normalize()
	assert.InDelta(t, 0.6, v.X, eps)
	assert.InDelta(t, 0.8, v.Y, eps)
	assert.InDelta(t, 1.0, v.Length(), eps)

	z := Zero[float64]()
	z.Normalize()
	assert.True(t, math.IsNaN(z.X))
	assert.True(t, math.IsNaN(z.Y))
}

func TestVec2_Unit(t *testing.T) {
	v := NewVec2(0.0, -7.0)
	u := v.Unit()

	assert.True(t, u.Equal(NewVec2(0.0, -1.0), eps), "got %v", u)
	assert.Equal(t, NewVec2(0.0, -7.0), v, "Unit must not modify the receiver")

	u = NewVec2(10.0, 10.0).Unit()
	assert.InDelta(t, 1.0, u.Length(), eps)

	assert.True(t, math.IsNaN(Zero[float64]().Unit().X))
}

func TestVec2_Rotate(t *testing.T) {
	tests := []struct {
		name  string
		in    Vec2[float64]
		angle float64
		want  Vec2[float64]
	}{
		{name: "quarter turn of x", in: UnitX[float64](), angle: math.Pi / 2, want: UnitY[float64]()},
		{name: "half turn", in: NewVec2(1.0, 2.0), angle: math.Pi, want: NewVec2(-1.0, -2.0)},
		{name: "full turn", in: NewVec2(3.0, -4.0), angle: 2 * math.Pi, want: NewVec2(3.0, -4.0)},
		{name: "zero angle", in: NewVec2(3.0, -4.0), angle: 0, want: NewVec2(3.0, -4.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.in
			v.Rotate(tt.angle)
			assert.True(t, v.Equal(tt.want, 1e-9), "got %v want %v", v, tt.want)
		})
	}
}

func TestVec2_FromPolar(t *testing.T) {
	v := FromPolar(math.Pi/2, 2.0)
	assert.True(t, v.Equal(NewVec2(0.0, 2.0), eps), "got %v", v)

	v = FromPolar(0.0, 3.0)
	assert.True(t, v.Equal(NewVec2(3.0, 0.0), eps), "got %v", v)
}

func TestVec2_Angle(t *testing.T) {
	// measured from +y toward +x
	assert.InDelta(t, 0.0, UnitY[float64]().Angle(), eps)
	assert.InDelta(t, math.Pi/2, UnitX[float64]().Angle(), eps)
	assert.InDelta(t, math.Pi, NewVec2(0.0, -1.0).Angle(), eps)
	assert.InDelta(t, -math.Pi/2, NewVec2(-1.0, 0.0).Angle(), eps)
}

func TestVec2_String(t *testing.T) {
	assert.Equal(t, "[1, 2]", NewVec2(1, 2).String())
	assert.Equal(t, "[1.5, -2]", NewVec2(1.5, -2.0).String())
}

func TestLerpVec2(t *testing.T) {
	a := NewVec2(0.0, 10.0)
	b := NewVec2(10.0, 20.0)

	assert.Equal(t, a, LerpVec2(a, b, 0, nil))
	assert.Equal(t, b, LerpVec2(a, b, 1, nil))
	assert.Equal(t, NewVec2(5.0, 15.0), LerpVec2(a, b, 0.5, Lerp[float64]))

	var calls [][2]float64
	stepped := LerpVec2(a, b, 0.3, func(x, y float64, tt float64) float64 {
		require.Equal(t, 0.3, tt)
		calls = append(calls, [2]float64{x, y})
		return y
	})
	assert.Equal(t, b, stepped)
	assert.Equal(t, [][2]float64{{0, 10}, {10, 20}}, calls)
}

func TestLerp_Integer(t *testing.T) {
	assert.Equal(t, 5, Lerp(0, 10, 0.5))
	assert.Equal(t, NewVec2(2, 4), LerpVec2(NewVec2(0, 0), NewVec2(4, 8), 0.5, nil))
}
