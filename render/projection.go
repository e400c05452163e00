package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// camera projects 3-D points onto a view plane looking at the origin
// from elevation and azimuth given in degrees.
type camera struct {
	right   r3.Vec // screen x
	up      r3.Vec // screen y, pointing up
	forward r3.Vec // towards the viewer
}

func newCamera(elevation, azimuth float64) camera {
	e := elevation * math.Pi / 180
	a := azimuth * math.Pi / 180
	sinE, cosE := math.Sincos(e)
	sinA, cosA := math.Sincos(a)

	return camera{
		right:   r3.Vec{X: -sinA, Y: cosA},
		up:      r3.Vec{X: -cosA * sinE, Y: -sinA * sinE, Z: cosE},
		forward: r3.Vec{X: cosA * cosE, Y: sinA * cosE, Z: sinE},
	}
}

// project returns view-plane coordinates and the depth of p.
// Larger depth is closer to the viewer.
func (c camera) project(p r3.Vec) (x, y, depth float64) {
	return r3.Dot(p, c.right), r3.Dot(p, c.up), r3.Dot(p, c.forward)
}

// viewport maps view-plane coordinates into a pixel rectangle, keeping
// the aspect ratio and flipping y.
type viewport struct {
	scale  float64
	cx, cy float64 // view-plane centre
	px, py float64 // pixel centre
}

func newViewport(minX, maxX, minY, maxY, left, top, width, height float64) viewport {
	spanX := maxX - minX
	spanY := maxY - minY
	scale := 1.0
	switch {
	case spanX > 0 && spanY > 0:
		scale = math.Min(width/spanX, height/spanY)
	case spanX > 0:
		scale = width / spanX
	case spanY > 0:
		scale = height / spanY
	}

	return viewport{
		scale: scale,
		cx:    (minX + maxX) / 2,
		cy:    (minY + maxY) / 2,
		px:    left + width/2,
		py:    top + height/2,
	}
}

func (v viewport) pixel(x, y float64) (float64, float64) {
	return v.px + (x-v.cx)*v.scale, v.py - (y-v.cy)*v.scale
}
