package mobius

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gonum.org/v1/gonum/mat"
)

// State records which stages of a Model have run.
//
// A fresh Model is StateUninitialized. GenerateMesh sets
// StateMeshGenerated; SurfaceArea and EdgeLength then add
// StateAreaComputed and StateEdgeComputed independently of each other.
type State uint8

const (
	StateUninitialized State = 0
	StateMeshGenerated State = 1 << (iota - 1)
	StateAreaComputed
	StateEdgeComputed
)

// Has reports whether every flag in f is set.
func (s State) Has(f State) bool {
	return s&f == f
}

func (s State) String() string {
	if s == StateUninitialized {
		return "uninitialized"
	}
	var parts []string
	if s.Has(StateMeshGenerated) {
		parts = append(parts, "mesh")
	}
	if s.Has(StateAreaComputed) {
		parts = append(parts, "area")
	}
	if s.Has(StateEdgeComputed) {
		parts = append(parts, "edge")
	}
	return strings.Join(parts, "+")
}

// Mesh is a read-only view of the embedded surface for renderers.
// The matrices are copies; changing them does not affect the Model.
type Mesh struct {
	X mat.Matrix
	Y mat.Matrix
	Z mat.Matrix
}

// Dims returns the mesh shape.
func (m Mesh) Dims() (rows, cols int) {
	return m.X.Dims()
}

// Results are the two scalar estimates of a strip.
type Results struct {
	Params      Params
	SurfaceArea float64
	EdgeLength  float64
}

// Model owns one parameter set and memoizes what is derived from it.
//
// Parameters are fixed at construction; use WithParams for a different
// strip. The memoized values are guarded by a mutex, so a Model can be
// shared between readers.
type Model struct {
	params Params

	mu     sync.Mutex
	state  State
	grid   Grid
	points Points
	area   float64
	edge   float64
}

// NewModel validates p and returns an uninitialized Model.
func NewModel(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("new model: %w", err)
	}
	return &Model{params: p}, nil
}

// WithParams returns a new, uninitialized Model for p. The receiver is
// left untouched together with its memoized results.
func (m *Model) WithParams(p Params) (*Model, error) {
	return NewModel(p)
}

// Params returns the parameters the Model was built with.
func (m *Model) Params() Params {
	return m.params
}

// State returns the stages completed so far.
func (m *Model) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// GenerateMesh builds the parameter grid and the surface points.
// Calling it again is a no-op.
func (m *Model) GenerateMesh() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Has(StateMeshGenerated) {
		return nil
	}

	start := time.Now()
	g, err := NewGrid(m.params)
	if err != nil {
		return fmt.Errorf("generate mesh: %w", err)
	}

	m.grid = g
	m.points = Evaluate(g, m.params.R)
	m.state |= StateMeshGenerated

	Logger().Debug("mesh generated",
		"params", m.params.String(),
		"cells", m.params.N*m.params.N,
		"elapsed", time.Since(start))
	return nil
}

// SurfaceArea returns the estimated surface area, computing it on the
// first call. It fails with ErrPrecomputeRequired before GenerateMesh.
func (m *Model) SurfaceArea() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.Has(StateMeshGenerated) {
		return 0, fmt.Errorf("surface area: %w", ErrPrecomputeRequired)
	}
	if m.state.Has(StateAreaComputed) {
		return m.area, nil
	}

	start := time.Now()
	area, err := SurfaceArea(m.points, m.grid.Du, m.grid.Dv)
	if err != nil {
		return 0, fmt.Errorf("surface area: %w", err)
	}

	m.area = area
	m.state |= StateAreaComputed

	Logger().Debug("surface area computed",
		"params", m.params.String(),
		"area", area,
		"elapsed", time.Since(start))
	return area, nil
}

// EdgeLength returns the estimated boundary length, computing it on the
// first call. It fails with ErrPrecomputeRequired before GenerateMesh.
func (m *Model) EdgeLength() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.Has(StateMeshGenerated) {
		return 0, fmt.Errorf("edge length: %w", ErrPrecomputeRequired)
	}
	if m.state.Has(StateEdgeComputed) {
		return m.edge, nil
	}

	edge, err := EdgeLength(m.points)
	if err != nil {
		return 0, fmt.Errorf("edge length: %w", err)
	}

	m.edge = edge
	m.state |= StateEdgeComputed

	Logger().Debug("edge length computed", "params", m.params.String(), "edge", edge)
	return edge, nil
}

// Mesh returns copies of the X, Y and Z matrices.
// It fails with ErrPrecomputeRequired before GenerateMesh.
func (m *Model) Mesh() (Mesh, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.Has(StateMeshGenerated) {
		return Mesh{}, fmt.Errorf("mesh: %w", ErrPrecomputeRequired)
	}

	return Mesh{
		X: mat.DenseCopyOf(m.points.X),
		Y: mat.DenseCopyOf(m.points.Y),
		Z: mat.DenseCopyOf(m.points.Z),
	}, nil
}

// Results generates the mesh if needed and returns both estimates.
func (m *Model) Results() (Results, error) {
	if err := m.GenerateMesh(); err != nil {
		return Results{}, err
	}
	area, err := m.SurfaceArea()
	if err != nil {
		return Results{}, err
	}
	edge, err := m.EdgeLength()
	if err != nil {
		return Results{}, err
	}
	return Results{Params: m.params, SurfaceArea: area, EdgeLength: edge}, nil
}

// Compute runs the whole pipeline for p.
func Compute(p Params) (Results, error) {
	m, err := NewModel(p)
	if err != nil {
		return Results{}, err
	}
	return m.Results()
}
