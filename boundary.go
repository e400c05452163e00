package mobius

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// BoundaryRow returns the points of mesh row i in order of increasing u.
//
// Rows 0 and N-1 are the v = -W/2 and v = +W/2 parameter edges. Because
// of the half twist they are two halves of the strip's single physical
// edge.
func BoundaryRow(pts Points, i int) ([]r3.Vec, error) {
	rows, cols := pts.Dims()
	if i < 0 || i >= rows {
		return nil, fmt.Errorf("row %d outside mesh with %d rows: %w", i, rows, ErrInvalidParameter)
	}

	row := make([]r3.Vec, cols)
	for j := range row {
		row[j] = pts.At(i, j)
	}
	return row, nil
}

// PolylineLength sums the Euclidean distances between consecutive points.
// When closed is true the segment from the last point back to the first
// is included.
func PolylineLength(points []r3.Vec, closed bool) float64 {
	if len(points) < 2 {
		return 0
	}

	var length float64
	for k := 1; k < len(points); k++ {
		length += r3.Norm(r3.Sub(points[k], points[k-1]))
	}
	if closed {
		length += r3.Norm(r3.Sub(points[0], points[len(points)-1]))
	}
	return length
}

// EdgeLength approximates the strip's boundary length as the sum of the
// open polylines along rows 0 and N-1.
//
// The rows are not closed: at u = 2π each row ends where the other one
// begins, so a closing segment would bridge the strip's width instead of
// following its edge.
func EdgeLength(pts Points) (float64, error) {
	rows, cols := pts.Dims()
	if rows < 2 || cols < 2 {
		return 0, fmt.Errorf("edge length needs a mesh of at least 2×2, got %d×%d: %w", rows, cols, ErrInvalidParameter)
	}

	var total float64
	for _, i := range []int{0, rows - 1} {
		row, err := BoundaryRow(pts, i)
		if err != nil {
			return 0, err
		}
		total += PolylineLength(row, false)
	}
	return total, nil
}
