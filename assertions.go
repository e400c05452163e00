package mobius

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// AssertionConfig contains tolerances for numerical properties.
type AssertionConfig struct {
	// Relative deviation allowed against a reference value
	RelTolerance float64

	// Absolute tolerance for comparisons near zero
	AbsTolerance float64
}

// DefaultAssertionConfig returns a 1% relative tolerance, the accuracy the
// finite-difference estimates are expected to hold at N ≥ 200.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		RelTolerance: 0.01,
		AbsTolerance: 1e-9,
	}
}

// AssertApprox verifies got is within tolerance of want.
//
//	|got - want| ≤ max(RelTolerance·|want|, AbsTolerance)
func AssertApprox(t *testing.T, name string, got, want float64, cfg AssertionConfig) {
	t.Helper()

	tol := math.Max(cfg.RelTolerance*math.Abs(want), cfg.AbsTolerance)
	if diff := math.Abs(got - want); diff > tol {
		t.Errorf("%s: got %.4f, want %.4f (|Δ| = %.4g > %.4g)", name, got, want, diff, tol)
		return
	}

	t.Logf("✓ %s: %.4f ≈ %.4f", name, got, want)
}

// AssertFiniteNonNegative verifies v is a finite value ≥ 0.
func AssertFiniteNonNegative(t *testing.T, name string, v float64) {
	t.Helper()

	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Errorf("%s is not finite: %v", name, v)
		return
	}
	if v < 0 {
		t.Errorf("%s is negative: %v", name, v)
	}
}

// AssertConverging verifies successive area estimates move monotonically
// with shrinking steps.
//
// Mathematical property:
//
//	sign(A(n_k) - A(n_{k-1})) is constant and |ΔA| decreases in k
func AssertConverging(t *testing.T, estimates []Estimate) {
	t.Helper()

	if len(estimates) < 3 {
		t.Fatalf("need at least 3 estimates to judge convergence, got %d", len(estimates))
	}

	if !IsConverging(estimates) {
		var lines []string
		for _, e := range estimates {
			lines = append(lines, fmt.Sprintf("  N=%d: area=%.6f ΔA=%+.6f", e.N, e.SurfaceArea, e.AreaDelta))
		}
		t.Errorf("Area estimates do not converge:\n%s", strings.Join(lines, "\n"))
		return
	}

	last := estimates[len(estimates)-1]
	t.Logf("✓ Converging: N=%d area=%.4f (last step %+.4f)", last.N, last.SurfaceArea, last.AreaDelta)
}

// PrintAnalysis writes a convergence table to the test log.
func PrintAnalysis(t *testing.T, estimates []Estimate) {
	t.Helper()

	t.Logf("\n=== Convergence ===")
	t.Logf("  N      Area          ΔArea        Edge          ΔEdge")
	t.Logf("  -----  ------------  -----------  ------------  -----------")
	for _, e := range estimates {
		t.Logf("  %-5d  %12.4f  %+11.4f  %12.4f  %+11.4f",
			e.N, e.SurfaceArea, e.AreaDelta, e.EdgeLength, e.EdgeDelta)
	}

	for k := 2; k < len(estimates); k++ {
		prev, curr := estimates[k-1].AreaDelta, estimates[k].AreaDelta
		if curr == 0 {
			continue
		}
		t.Logf("  step ratio N=%d: %.3f", estimates[k].N, prev/curr)
	}
}
