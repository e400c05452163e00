package mobius

import (
	"errors"
	"math"
	"testing"
)

func TestNewGrid_Shape(t *testing.T) {
	for _, n := range []int{2, 3, 17, 200} {
		g, err := NewGrid(Params{R: 5, W: 2, N: n})
		if err != nil {
			t.Fatalf("NewGrid(N=%d) failed: %v", n, err)
		}

		if len(g.U1) != n || len(g.V1) != n {
			t.Errorf("N=%d: len(u)=%d len(v)=%d", n, len(g.U1), len(g.V1))
		}
		for name, m := range map[string]interface{ Dims() (int, int) }{"U": g.U, "V": g.V} {
			if r, c := m.Dims(); r != n || c != n {
				t.Errorf("N=%d: %s is %d×%d", n, name, r, c)
			}
		}
		if g.Size() != n {
			t.Errorf("N=%d: Size() = %d", n, g.Size())
		}
	}
}

func TestNewGrid_Values(t *testing.T) {
	g, err := NewGrid(Params{R: 5, W: 2, N: 5})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	wantU := []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi}
	wantV := []float64{-1, -0.5, 0, 0.5, 1}
	for k := range wantU {
		if math.Abs(g.U1[k]-wantU[k]) > 1e-12 {
			t.Errorf("u[%d] = %v, want %v", k, g.U1[k], wantU[k])
		}
		if math.Abs(g.V1[k]-wantV[k]) > 1e-12 {
			t.Errorf("v[%d] = %v, want %v", k, g.V1[k], wantV[k])
		}
	}

	// Row index walks v, column index walks u.
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if g.U.At(i, j) != g.U1[j] {
				t.Errorf("U[%d][%d] = %v, want u[%d] = %v", i, j, g.U.At(i, j), j, g.U1[j])
			}
			if g.V.At(i, j) != g.V1[i] {
				t.Errorf("V[%d][%d] = %v, want v[%d] = %v", i, j, g.V.At(i, j), i, g.V1[i])
			}
		}
	}

	if math.Abs(g.Du-math.Pi/2) > 1e-15 {
		t.Errorf("Du = %v, want π/2", g.Du)
	}
	if g.Dv != 0.5 {
		t.Errorf("Dv = %v, want 0.5", g.Dv)
	}
}

func TestNewGrid_StrictlyIncreasing(t *testing.T) {
	g, err := NewGrid(Params{R: 1, W: 3, N: 64})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	for k := 1; k < len(g.U1); k++ {
		if g.U1[k] <= g.U1[k-1] {
			t.Fatalf("u not increasing at %d: %v ≤ %v", k, g.U1[k], g.U1[k-1])
		}
		if math.Abs((g.U1[k]-g.U1[k-1])-g.Du) > 1e-12 {
			t.Errorf("u step %d = %v, want %v", k, g.U1[k]-g.U1[k-1], g.Du)
		}
		if math.Abs((g.V1[k]-g.V1[k-1])-g.Dv) > 1e-12 {
			t.Errorf("v step %d = %v, want %v", k, g.V1[k]-g.V1[k-1], g.Dv)
		}
	}
}

func TestNewGrid_InvalidParameter(t *testing.T) {
	cases := []Params{
		{R: 5, W: 2, N: 1},
		{R: 5, W: 2, N: 0},
		{R: 0, W: 2, N: 10},
		{R: 5, W: -1, N: 10},
		{R: math.NaN(), W: 2, N: 10},
		{R: 5, W: math.Inf(1), N: 10},
	}

	for _, p := range cases {
		if _, err := NewGrid(p); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("NewGrid(%v): expected ErrInvalidParameter, got %v", p, err)
		}
	}
}
