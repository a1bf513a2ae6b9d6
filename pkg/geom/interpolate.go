package geom

// Interpolator blends two endpoint values by a parameter t in [0, 1].
// t = 0 yields a, t = 1 yields b.
type Interpolator[T any] func(a, b T, t float64) T

// Lerp is the linear Interpolator for scalars.
func Lerp[T Scalar](a, b T, t float64) T {
	return T(float64(a) + (float64(b)-float64(a))*t)
}

// LerpVec2 interpolates a and b componentwise with interp.
// A nil interp falls back to Lerp.
func LerpVec2[T Scalar](a, b Vec2[T], t float64, interp Interpolator[T]) Vec2[T] {
	if interp == nil {
		interp = Lerp[T]
	}
	return Vec2[T]{
		X: interp(a.X, b.X, t),
		Y: interp(a.Y, b.Y, t),
	}
}
