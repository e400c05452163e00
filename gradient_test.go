package mobius

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// field samples f(i, j) on an rows×cols lattice.
func field(rows, cols int, f func(i, j int) float64) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, f(i, j))
		}
	}
	return m
}

// TestGradient_Linear verifies every difference scheme is exact on a plane.
func TestGradient_Linear(t *testing.T) {
	const h = 0.25
	// f(x, y) = 3x + 2y with x = i·h, y = j·h
	m := field(6, 7, func(i, j int) float64 {
		return 3*float64(i)*h + 2*float64(j)*h
	})

	gCols, err := Gradient(m, h, AlongCols)
	if err != nil {
		t.Fatalf("Gradient along cols failed: %v", err)
	}
	gRows, err := Gradient(m, h, AlongRows)
	if err != nil {
		t.Fatalf("Gradient along rows failed: %v", err)
	}

	for i := 0; i < 6; i++ {
		for j := 0; j < 7; j++ {
			if d := gCols.At(i, j); math.Abs(d-2) > 1e-12 {
				t.Errorf("∂f/∂y at (%d,%d) = %v, want 2", i, j, d)
			}
			if d := gRows.At(i, j); math.Abs(d-3) > 1e-12 {
				t.Errorf("∂f/∂x at (%d,%d) = %v, want 3", i, j, d)
			}
		}
	}
}

// TestGradient_Quadratic verifies centred interior and one-sided edges.
func TestGradient_Quadratic(t *testing.T) {
	const n = 8
	// f = j², h = 1: interior derivative is exactly 2j
	m := field(3, n, func(i, j int) float64 { return float64(j * j) })

	g, err := Gradient(m, 1, AlongCols)
	if err != nil {
		t.Fatalf("Gradient failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 1; j < n-1; j++ {
			if d := g.At(i, j); d != float64(2*j) {
				t.Errorf("interior (%d,%d) = %v, want %d", i, j, d, 2*j)
			}
		}
		if d := g.At(i, 0); d != 1 {
			t.Errorf("first column = %v, want forward difference 1", d)
		}
		if d := g.At(i, n-1); d != float64(2*n-3) {
			t.Errorf("last column = %v, want backward difference %d", d, 2*n-3)
		}
	}
}

// TestGradient_Sine compares against the analytic derivative of sin.
func TestGradient_Sine(t *testing.T) {
	const n = 401
	h := 2 * math.Pi / float64(n-1)
	m := field(n, 2, func(i, j int) float64 { return math.Sin(float64(i) * h) })

	g, err := Gradient(m, h, AlongRows)
	if err != nil {
		t.Fatalf("Gradient failed: %v", err)
	}

	var worst float64
	for i := 1; i < n-1; i++ {
		worst = math.Max(worst, math.Abs(g.At(i, 0)-math.Cos(float64(i)*h)))
	}
	// Centred differences are second order: error ≈ h²/6.
	if worst > h*h {
		t.Errorf("interior error %.3g exceeds h² = %.3g", worst, h*h)
	}
	t.Logf("✓ max interior error %.3g (h = %.4g)", worst, h)
}

func TestGradient_TwoSamples(t *testing.T) {
	m := mat.NewDense(2, 1, []float64{1, 4})

	g, err := Gradient(m, 0.5, AlongRows)
	if err != nil {
		t.Fatalf("Gradient failed: %v", err)
	}
	if g.At(0, 0) != 6 || g.At(1, 0) != 6 {
		t.Errorf("got %v, %v; want 6, 6", g.At(0, 0), g.At(1, 0))
	}
}

func TestGradient_Errors(t *testing.T) {
	m := mat.NewDense(3, 1, []float64{1, 2, 3})

	if _, err := Gradient(m, 0, AlongRows); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero spacing: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := Gradient(m, 1, AlongCols); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("single column: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := Gradient(m, 1, Axis(7)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("unknown axis: expected ErrInvalidParameter, got %v", err)
	}
}
