package grid

import "errors"

var (
	ErrDegenerateGrid    = errors.New("grid has zero width or height")
	ErrNegativeDimension = errors.New("grid dimensions must not be negative")
	ErrDimensionMismatch = errors.New("data length does not match grid dimensions")
)
