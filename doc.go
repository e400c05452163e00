// Package mobius estimates the surface area and edge length of a
// discretized Möbius strip.
//
// # Overview
//
// The strip of radius R and width W is sampled on an N×N parameter grid
// and mapped into 3-space. Two scalars are derived from the samples:
//
//   - Surface area: a Riemann sum of |∂r/∂u × ∂r/∂v| with the partials
//     estimated by finite differences.
//   - Edge length: the summed lengths of the two boundary polylines
//     v = -W/2 and v = +W/2.
//
// # Architecture
//
// The package components, leaf first:
//
//   - grid.go       - (u, v) sample lattice
//   - surface.go    - parametric embedding
//   - gradient.go   - finite-difference gradient of a sampled field
//   - area.go       - tangent field, area density, area integral
//   - boundary.go   - boundary rows and polyline length
//   - model.go      - Model: memoized pipeline for one parameter set
//   - convergence.go - resolution study
//   - assertions.go - test helpers for numerical properties
//
// Rendering lives in the render sub-package, file configuration in config
// and the command line in cmd/mobius.
//
// # Quick Start
//
//	m, err := mobius.NewModel(mobius.Params{R: 5, W: 2, N: 200})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := m.GenerateMesh(); err != nil {
//	    log.Fatal(err)
//	}
//
//	area, _ := m.SurfaceArea()  // ≈ 63.5623
//	edge, _ := m.EdgeLength()   // ≈ 63.1490
//
// Or in one call:
//
//	res, err := mobius.Compute(mobius.DefaultParams())
//
// # The Parametrization
//
//	x(u, v) = (R + v·cos(u/2))·cos(u)
//	y(u, v) = (R + v·cos(u/2))·sin(u)
//	z(u, v) = v·sin(u/2)
//
// with u ∈ [0, 2π] and v ∈ [-W/2, W/2]. Grid rows walk v, columns walk u.
//
// # Model Lifecycle
//
// A Model is fixed to one parameter set. Its state moves from
// StateUninitialized to StateMeshGenerated on GenerateMesh; SurfaceArea
// and EdgeLength then memoize their results independently. Asking for a
// result before GenerateMesh fails with ErrPrecomputeRequired; the mesh is
// never generated implicitly except by Results and Compute. For other
// parameters build a new Model with WithParams.
//
// # Accuracy
//
// Both the differencing and the Riemann sum are first order near the
// parameter boundary, so the area error shrinks roughly like 1/N:
//
//	N=100: 64.1746
//	N=200: 63.5623
//	N=400: 63.2515
//
// Each doubling halves the step. Use RunConvergence to check this for
// other parameters.
//
// # Edge Length
//
// The strip has one physical edge. On the grid it appears as rows 0 and
// N-1, each covering half of it. They are measured as open polylines: at
// u = 2π each row ends at the start of the other, so closing a row would
// add a chord of length W instead of following the edge.
//
// # Logging
//
// The package is silent by default. Install a logger with SetLogger:
//
//	mobius.SetLogger(slog.Default())
package mobius
