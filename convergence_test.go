package mobius

import (
	"context"
	"errors"
	"testing"
)

// TestRunConvergence_Default verifies area estimates settle as N doubles.
func TestRunConvergence_Default(t *testing.T) {
	estimates, err := RunConvergence(context.Background(), DefaultParams(), DefaultConvergenceConfig())
	if err != nil {
		t.Fatalf("RunConvergence failed: %v", err)
	}

	if len(estimates) != 3 {
		t.Fatalf("expected 3 estimates, got %d", len(estimates))
	}

	AssertConverging(t, estimates)
	PrintAnalysis(t, estimates)

	// Halving: each step is about half the previous one.
	ratio := estimates[1].AreaDelta / estimates[2].AreaDelta
	if ratio < 1.5 || ratio > 2.5 {
		t.Errorf("step ratio %.3f, expected ≈ 2 for a first-order estimate", ratio)
	}
}

func TestRunConvergence_SortsAndMatchesSequential(t *testing.T) {
	cfg := ConvergenceConfig{Resolutions: []int{80, 20, 40}, MaxWorkers: 3}
	base := Params{R: 3, W: 1, N: 2}

	estimates, err := RunConvergence(context.Background(), base, cfg)
	if err != nil {
		t.Fatalf("RunConvergence failed: %v", err)
	}

	for k, n := range []int{20, 40, 80} {
		if estimates[k].N != n {
			t.Fatalf("estimate %d has N=%d, want %d", k, estimates[k].N, n)
		}

		p := base
		p.N = n
		res, err := Compute(p)
		if err != nil {
			t.Fatalf("Compute failed: %v", err)
		}
		if res.SurfaceArea != estimates[k].SurfaceArea || res.EdgeLength != estimates[k].EdgeLength {
			t.Errorf("N=%d: concurrent (%v, %v) != sequential (%v, %v)", n,
				estimates[k].SurfaceArea, estimates[k].EdgeLength, res.SurfaceArea, res.EdgeLength)
		}
	}

	if estimates[0].AreaDelta != 0 {
		t.Errorf("first estimate delta = %v, want 0", estimates[0].AreaDelta)
	}
	if want := estimates[2].SurfaceArea - estimates[1].SurfaceArea; estimates[2].AreaDelta != want {
		t.Errorf("delta = %v, want %v", estimates[2].AreaDelta, want)
	}
}

func TestRunConvergence_Errors(t *testing.T) {
	if _, err := RunConvergence(context.Background(), DefaultParams(), ConvergenceConfig{}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("no resolutions: expected ErrInvalidParameter, got %v", err)
	}

	cfg := ConvergenceConfig{Resolutions: []int{10, 1}}
	if _, err := RunConvergence(context.Background(), DefaultParams(), cfg); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("N=1: expected ErrInvalidParameter, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunConvergence(ctx, DefaultParams(), DefaultConvergenceConfig()); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context: expected context.Canceled, got %v", err)
	}
}

func TestIsConverging(t *testing.T) {
	cases := []struct {
		name   string
		deltas []float64
		want   bool
	}{
		{"shrinking down", []float64{0, -0.6, -0.3, -0.15}, true},
		{"shrinking up", []float64{0, 0.4, 0.1}, true},
		{"sign flip", []float64{0, -0.6, 0.3}, false},
		{"growing", []float64{0, -0.1, -0.3}, false},
		{"too short", []float64{0, -0.1}, false},
	}

	for _, tc := range cases {
		estimates := make([]Estimate, len(tc.deltas))
		for k, d := range tc.deltas {
			estimates[k].AreaDelta = d
		}
		if got := IsConverging(estimates); got != tc.want {
			t.Errorf("%s: IsConverging = %v, want %v", tc.name, got, tc.want)
		}
	}
}
