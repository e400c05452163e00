package mobius

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Grid is the (u, v) sample lattice of a strip.
//
// Row index i walks v, column index j walks u:
//
//	U[i][j] = U1[j]    V[i][j] = V1[i]
type Grid struct {
	U1 []float64 // N samples over [0, 2π], inclusive
	V1 []float64 // N samples over [-W/2, W/2], inclusive

	U *mat.Dense // N×N
	V *mat.Dense // N×N

	Du float64 // 2π / (N-1)
	Dv float64 // W / (N-1)
}

// NewGrid builds the parameter lattice for p.
func NewGrid(p Params) (Grid, error) {
	if err := p.Validate(); err != nil {
		return Grid{}, err
	}

	n := p.N
	u := floats.Span(make([]float64, n), 0, 2*math.Pi)
	v := floats.Span(make([]float64, n), -p.W/2, p.W/2)

	uData := make([]float64, n*n)
	vData := make([]float64, n*n)
	for i := 0; i < n; i++ {
		row := i * n
		copy(uData[row:row+n], u)
		for j := 0; j < n; j++ {
			vData[row+j] = v[i]
		}
	}

	return Grid{
		U1: u,
		V1: v,
		U:  mat.NewDense(n, n, uData),
		V:  mat.NewDense(n, n, vData),
		Du: 2 * math.Pi / float64(n-1),
		Dv: p.W / float64(n-1),
	}, nil
}

// Size returns N.
func (g Grid) Size() int {
	return len(g.U1)
}
