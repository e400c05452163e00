// Package render rasterizes a strip mesh as a shaded 3-D surface plot.
//
// Cells are drawn back to front as filled quadrilaterals coloured by
// their mean height, with thin mesh edges on top, using gogpu/gg's
// software renderer:
//
//	mesh, _ := model.Mesh()
//	err := render.SavePNG("strip.png", mesh, render.DefaultOptions())
//
// Options are cosmetic; they never feed back into the numerical results.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/alexshd/mobius"
)

// Options controls the appearance of a plot.
type Options struct {
	Width     int     // Image width in pixels
	Height    int     // Image height in pixels
	Elevation float64 // Camera elevation in degrees
	Azimuth   float64 // Camera azimuth in degrees
	Colormap  string  // viridis, plasma or gray
	Alpha     float64 // Face opacity in [0, 1]
	EdgeColor string  // Mesh edge colour as hex; empty disables edges
	EdgeWidth float64 // Mesh edge width in pixels
	Title     string
	XLabel    string
	YLabel    string
	ZLabel    string
}

// DefaultOptions returns a 1000×700 viridis plot seen from elevation 30°,
// azimuth 60°.
func DefaultOptions() Options {
	return Options{
		Width:     1000,
		Height:    700,
		Elevation: 30,
		Azimuth:   60,
		Colormap:  "viridis",
		Alpha:     0.85,
		EdgeColor: "#000000",
		EdgeWidth: 0.4,
		Title:     "3D Möbius Strip",
		XLabel:    "X",
		YLabel:    "Y",
		ZLabel:    "Z",
	}
}

// Validate checks the image size and opacity.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("image size %dx%d must be positive", o.Width, o.Height)
	}
	if o.Alpha < 0 || o.Alpha > 1 {
		return fmt.Errorf("alpha %v outside [0, 1]", o.Alpha)
	}
	if _, err := LookupColormap(o.Colormap); err != nil {
		return err
	}
	return nil
}

const (
	marginTop    = 60.0
	marginSide   = 40.0
	marginBottom = 40.0
)

var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// quad is one mesh cell in pixel space.
type quad struct {
	xs, ys [4]float64
	depth  float64
	height float64 // mean z, for colouring
}

// Draw renders mesh into a new gg context. The caller owns the context
// and should Close it.
func Draw(mesh mobius.Mesh, opts Options) (*gg.Context, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	rows, cols := mesh.Dims()
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("render: mesh %d×%d has no cells: %w", rows, cols, mobius.ErrInvalidParameter)
	}
	cmap, err := LookupColormap(opts.Colormap)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	cam := newCamera(opts.Elevation, opts.Azimuth)

	// Project every vertex once.
	sx := mat.NewDense(rows, cols, nil)
	sy := mat.NewDense(rows, cols, nil)
	depth := mat.NewDense(rows, cols, nil)
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p := r3.Vec{X: mesh.X.At(i, j), Y: mesh.Y.At(i, j), Z: mesh.Z.At(i, j)}
			x, y, d := cam.project(p)
			sx.Set(i, j, x)
			sy.Set(i, j, y)
			depth.Set(i, j, d)
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
			minZ, maxZ = math.Min(minZ, p.Z), math.Max(maxZ, p.Z)
		}
	}

	vp := newViewport(minX, maxX, minY, maxY,
		marginSide, marginTop,
		float64(opts.Width)-2*marginSide, float64(opts.Height)-marginTop-marginBottom)

	quads := make([]quad, 0, (rows-1)*(cols-1))
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			var q quad
			corners := [4][2]int{{i, j}, {i, j + 1}, {i + 1, j + 1}, {i + 1, j}}
			for k, c := range corners {
				q.xs[k], q.ys[k] = vp.pixel(sx.At(c[0], c[1]), sy.At(c[0], c[1]))
				q.depth += depth.At(c[0], c[1]) / 4
				q.height += mesh.Z.At(c[0], c[1]) / 4
			}
			quads = append(quads, q)
		}
	}

	// Painter's algorithm: farthest first.
	sort.SliceStable(quads, func(a, b int) bool { return quads[a].depth < quads[b].depth })

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(gg.White)

	var edge gg.RGBA
	drawEdges := opts.EdgeColor != "" && opts.EdgeWidth > 0
	if drawEdges {
		edge = gg.Hex(opts.EdgeColor)
		dc.SetLineWidth(opts.EdgeWidth)
	}

	zSpan := maxZ - minZ
	for _, q := range quads {
		t := 0.5
		if zSpan > 0 {
			t = (q.height - minZ) / zSpan
		}
		face := cmap(t)

		dc.MoveTo(q.xs[0], q.ys[0])
		for k := 1; k < 4; k++ {
			dc.LineTo(q.xs[k], q.ys[k])
		}
		dc.ClosePath()

		dc.SetRGBA(face.R, face.G, face.B, opts.Alpha)
		if !drawEdges {
			if err := dc.Fill(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("render: fill cell: %w", err)
			}
			continue
		}
		if err := dc.FillPreserve(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("render: fill cell: %w", err)
		}
		dc.SetRGBA(edge.R, edge.G, edge.B, edge.A)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("render: stroke cell: %w", err)
		}
	}

	if err := drawAxes(dc, cam, vp, mesh, opts); err != nil {
		dc.Close()
		return nil, err
	}
	if err := drawLabels(dc, opts); err != nil {
		dc.Close()
		return nil, err
	}

	mobius.Logger().Debug("surface rendered",
		"cells", len(quads),
		"size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"colormap", opts.Colormap)
	return dc, nil
}

// drawAxes draws the three coordinate axes from the bounding box corner
// nearest the data minimum.
func drawAxes(dc *gg.Context, cam camera, vp viewport, mesh mobius.Mesh, opts Options) error {
	lo := r3.Vec{X: mat.Min(mesh.X), Y: mat.Min(mesh.Y), Z: mat.Min(mesh.Z)}
	hi := r3.Vec{X: mat.Max(mesh.X), Y: mat.Max(mesh.Y), Z: mat.Max(mesh.Z)}

	axes := []struct {
		end   r3.Vec
		label string
	}{
		{r3.Vec{X: hi.X, Y: lo.Y, Z: lo.Z}, opts.XLabel},
		{r3.Vec{X: lo.X, Y: hi.Y, Z: lo.Z}, opts.YLabel},
		{r3.Vec{X: lo.X, Y: lo.Y, Z: hi.Z}, opts.ZLabel},
	}

	ox, oy, _ := cam.project(lo)
	x0, y0 := vp.pixel(ox, oy)

	dc.SetRGB(0.3, 0.3, 0.3)
	dc.SetLineWidth(1)
	for _, a := range axes {
		ex, ey, _ := cam.project(a.end)
		x1, y1 := vp.pixel(ex, ey)
		dc.MoveTo(x0, y0)
		dc.LineTo(x1, y1)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("render: axis %s: %w", a.label, err)
		}
	}

	if opts.XLabel == "" && opts.YLabel == "" && opts.ZLabel == "" {
		return nil
	}
	src, err := fontSource()
	if err != nil {
		return fmt.Errorf("render: load font: %w", err)
	}
	dc.SetFont(src.Face(14))
	for _, a := range axes {
		if a.label == "" {
			continue
		}
		ex, ey, _ := cam.project(a.end)
		x1, y1 := vp.pixel(ex, ey)
		dc.DrawStringAnchored(a.label, x1, y1, 0.5, 0.5)
	}
	return nil
}

func drawLabels(dc *gg.Context, opts Options) error {
	if opts.Title == "" {
		return nil
	}
	src, err := fontSource()
	if err != nil {
		return fmt.Errorf("render: load font: %w", err)
	}
	dc.SetFont(src.Face(22))
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawStringAnchored(opts.Title, float64(opts.Width)/2, marginTop/2, 0.5, 0.5)
	return nil
}

// Surface renders mesh and writes it to w as PNG.
func Surface(w io.Writer, mesh mobius.Mesh, opts Options) error {
	dc, err := Draw(mesh, opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG renders mesh into the PNG file at path.
func SavePNG(path string, mesh mobius.Mesh, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := Surface(f, mesh, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
