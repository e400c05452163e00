package mobius

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Axis selects the direction a Gradient differentiates along.
type Axis int

const (
	// AlongRows differentiates down each column (row index varies).
	AlongRows Axis = iota
	// AlongCols differentiates across each row (column index varies).
	AlongCols
)

func (a Axis) String() string {
	switch a {
	case AlongRows:
		return "rows"
	case AlongCols:
		return "cols"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Gradient estimates the partial derivative of the sampled field m along
// axis, with samples spaced h apart.
//
// Interior samples use the centred difference
//
//	(f[k+1] - f[k-1]) / 2h
//
// and the first and last samples use the one-sided differences
//
//	(f[1] - f[0]) / h    (f[n-1] - f[n-2]) / h
//
// The axis being differentiated needs at least two samples and h must be
// non-zero.
func Gradient(m mat.Matrix, h float64, axis Axis) (*mat.Dense, error) {
	if h == 0 {
		return nil, fmt.Errorf("gradient spacing must be non-zero: %w", ErrInvalidParameter)
	}

	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)

	switch axis {
	case AlongCols:
		if cols < 2 {
			return nil, fmt.Errorf("gradient along cols needs ≥ 2 columns, got %d: %w", cols, ErrInvalidParameter)
		}
		for i := 0; i < rows; i++ {
			out.Set(i, 0, (m.At(i, 1)-m.At(i, 0))/h)
			for j := 1; j < cols-1; j++ {
				out.Set(i, j, (m.At(i, j+1)-m.At(i, j-1))/(2*h))
			}
			out.Set(i, cols-1, (m.At(i, cols-1)-m.At(i, cols-2))/h)
		}
	case AlongRows:
		if rows < 2 {
			return nil, fmt.Errorf("gradient along rows needs ≥ 2 rows, got %d: %w", rows, ErrInvalidParameter)
		}
		for j := 0; j < cols; j++ {
			out.Set(0, j, (m.At(1, j)-m.At(0, j))/h)
			for i := 1; i < rows-1; i++ {
				out.Set(i, j, (m.At(i+1, j)-m.At(i-1, j))/(2*h))
			}
			out.Set(rows-1, j, (m.At(rows-1, j)-m.At(rows-2, j))/h)
		}
	default:
		return nil, fmt.Errorf("unknown gradient axis %v: %w", axis, ErrInvalidParameter)
	}

	return out, nil
}
