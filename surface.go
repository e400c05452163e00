package mobius

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Points holds the embedded surface, one matrix per coordinate.
// Cell (i, j) is the image of (U[i][j], V[i][j]).
type Points struct {
	X *mat.Dense
	Y *mat.Dense
	Z *mat.Dense
}

// Evaluate maps every grid cell through the strip embedding:
//
//	X = (R + V·cos(U/2))·cos(U)
//	Y = (R + V·cos(U/2))·sin(U)
//	Z = V·sin(U/2)
func Evaluate(g Grid, r float64) Points {
	rows, cols := g.U.Dims()
	x := mat.NewDense(rows, cols, nil)
	y := mat.NewDense(rows, cols, nil)
	z := mat.NewDense(rows, cols, nil)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p := Embed(r, g.U.At(i, j), g.V.At(i, j))
			x.Set(i, j, p.X)
			y.Set(i, j, p.Y)
			z.Set(i, j, p.Z)
		}
	}

	return Points{X: x, Y: y, Z: z}
}

// Embed returns the point of a strip of radius r at parameters (u, v).
func Embed(r, u, v float64) r3.Vec {
	sinHalf, cosHalf := math.Sincos(u / 2)
	sin, cos := math.Sincos(u)
	radial := r + v*cosHalf
	return r3.Vec{
		X: radial * cos,
		Y: radial * sin,
		Z: v * sinHalf,
	}
}

// At returns the surface point in cell (i, j).
func (p Points) At(i, j int) r3.Vec {
	return r3.Vec{X: p.X.At(i, j), Y: p.Y.At(i, j), Z: p.Z.At(i, j)}
}

// Dims returns the mesh shape.
func (p Points) Dims() (rows, cols int) {
	return p.X.Dims()
}
