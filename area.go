package mobius

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// TangentField holds the finite-difference partials of the embedding.
//
// Xu, Yu, Zu are ∂r/∂u (differentiated across columns, spacing Du).
// Xv, Yv, Zv are ∂r/∂v (differentiated down rows, spacing Dv).
type TangentField struct {
	Xu, Yu, Zu *mat.Dense
	Xv, Yv, Zv *mat.Dense
}

// EstimateTangents differentiates each coordinate matrix in both
// parameter directions.
func EstimateTangents(pts Points, du, dv float64) (TangentField, error) {
	var (
		tf  TangentField
		err error
	)

	partials := []struct {
		dst  **mat.Dense
		src  *mat.Dense
		h    float64
		axis Axis
	}{
		{&tf.Xu, pts.X, du, AlongCols},
		{&tf.Yu, pts.Y, du, AlongCols},
		{&tf.Zu, pts.Z, du, AlongCols},
		{&tf.Xv, pts.X, dv, AlongRows},
		{&tf.Yv, pts.Y, dv, AlongRows},
		{&tf.Zv, pts.Z, dv, AlongRows},
	}

	for _, p := range partials {
		*p.dst, err = Gradient(p.src, p.h, p.axis)
		if err != nil {
			return TangentField{}, fmt.Errorf("tangent along %v: %w", p.axis, err)
		}
	}

	return tf, nil
}

// Ru returns ∂r/∂u in cell (i, j).
func (tf TangentField) Ru(i, j int) r3.Vec {
	return r3.Vec{X: tf.Xu.At(i, j), Y: tf.Yu.At(i, j), Z: tf.Zu.At(i, j)}
}

// Rv returns ∂r/∂v in cell (i, j).
func (tf TangentField) Rv(i, j int) r3.Vec {
	return r3.Vec{X: tf.Xv.At(i, j), Y: tf.Yv.At(i, j), Z: tf.Zv.At(i, j)}
}

// AreaDensity returns |∂r/∂u × ∂r/∂v| for every cell.
func AreaDensity(tf TangentField) *mat.Dense {
	rows, cols := tf.Xu.Dims()
	dA := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dA.Set(i, j, r3.Norm(r3.Cross(tf.Ru(i, j), tf.Rv(i, j))))
		}
	}
	return dA
}

// SurfaceArea integrates the area density over the grid as a Riemann sum:
//
//	A ≈ Σ |r_u × r_v| · du · dv
//
// Cells are summed row-major, left to right, so the result is
// reproducible bit for bit.
func SurfaceArea(pts Points, du, dv float64) (float64, error) {
	tf, err := EstimateTangents(pts, du, dv)
	if err != nil {
		return 0, err
	}

	dA := AreaDensity(tf)
	rows, cols := dA.Dims()

	var sum float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum += dA.At(i, j)
		}
	}

	return sum * du * dv, nil
}
