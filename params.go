package mobius

import (
	"fmt"
	"math"
)

// Params describes one Möbius strip discretization.
type Params struct {
	R float64 // Distance from the centre to the midline of the strip
	W float64 // Strip width
	N int     // Mesh resolution (samples per parameter axis)
}

// DefaultParams returns the parameters of the reference run:
// R = 5, W = 2, N = 200.
func DefaultParams() Params {
	return Params{
		R: 5,
		W: 2,
		N: 200,
	}
}

// Validate checks R > 0, W > 0 and N ≥ 2.
// NaN and infinite values are rejected as well.
func (p Params) Validate() error {
	if !(p.R > 0) || math.IsInf(p.R, 0) {
		return fmt.Errorf("radius R = %v must be a finite value > 0: %w", p.R, ErrInvalidParameter)
	}
	if !(p.W > 0) || math.IsInf(p.W, 0) {
		return fmt.Errorf("width W = %v must be a finite value > 0: %w", p.W, ErrInvalidParameter)
	}
	if p.N < 2 {
		return fmt.Errorf("resolution N = %d must be ≥ 2: %w", p.N, ErrInvalidParameter)
	}
	return nil
}

// String formats the parameters for logs and reports.
func (p Params) String() string {
	return fmt.Sprintf("R=%g W=%g N=%d", p.R, p.W, p.N)
}
