package mobius

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// ConvergenceConfig controls a resolution study.
type ConvergenceConfig struct {
	Resolutions []int // Mesh resolutions to evaluate (default: [100, 200, 400])
	MaxWorkers  int   // Resolutions evaluated at once (0 = GOMAXPROCS)
}

// DefaultConvergenceConfig returns the three-step doubling study.
func DefaultConvergenceConfig() ConvergenceConfig {
	return ConvergenceConfig{
		Resolutions: []int{100, 200, 400},
		MaxWorkers:  0,
	}
}

// Estimate is the outcome of one resolution.
type Estimate struct {
	N           int
	SurfaceArea float64
	EdgeLength  float64
	AreaDelta   float64 // Change from the previous resolution (0 for the first)
	EdgeDelta   float64
	Elapsed     time.Duration
}

// RunConvergence evaluates the strip described by base at every resolution
// in cfg, replacing base.N. Results are sorted by increasing N.
//
// Resolutions run concurrently; each one is computed by the same
// deterministic pipeline, so the numbers equal those of a sequential run.
func RunConvergence(ctx context.Context, base Params, cfg ConvergenceConfig) ([]Estimate, error) {
	if len(cfg.Resolutions) == 0 {
		return nil, fmt.Errorf("convergence study needs at least one resolution: %w", ErrInvalidParameter)
	}

	resolutions := append([]int(nil), cfg.Resolutions...)
	sort.Ints(resolutions)

	workers := cfg.MaxWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	estimates := make([]Estimate, len(resolutions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for idx, n := range resolutions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			p := base
			p.N = n

			start := time.Now()
			res, err := Compute(p)
			if err != nil {
				return fmt.Errorf("failed at N=%d: %w", n, err)
			}

			estimates[idx] = Estimate{
				N:           n,
				SurfaceArea: res.SurfaceArea,
				EdgeLength:  res.EdgeLength,
				Elapsed:     time.Since(start),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for k := 1; k < len(estimates); k++ {
		estimates[k].AreaDelta = estimates[k].SurfaceArea - estimates[k-1].SurfaceArea
		estimates[k].EdgeDelta = estimates[k].EdgeLength - estimates[k-1].EdgeLength
	}

	for _, e := range estimates {
		Logger().Info("resolution evaluated",
			"n", e.N,
			"area", e.SurfaceArea,
			"edge", e.EdgeLength,
			"area_delta", e.AreaDelta,
			"elapsed", e.Elapsed)
	}

	return estimates, nil
}

// IsConverging reports whether the area estimates move in one direction
// with strictly shrinking steps. At least three estimates are needed.
func IsConverging(estimates []Estimate) bool {
	if len(estimates) < 3 {
		return false
	}

	sign := math.Signbit(estimates[1].AreaDelta)
	for k := 2; k < len(estimates); k++ {
		prev, curr := estimates[k-1].AreaDelta, estimates[k].AreaDelta
		if math.Signbit(curr) != sign {
			return false
		}
		if math.Abs(curr) >= math.Abs(prev) {
			return false
		}
	}
	return true
}
