package report

import (
	"strings"
	"testing"

	"github.com/san-kum/polysolve/internal/analysis"
	"github.com/san-kum/polysolve/internal/equation"
	"github.com/san-kum/polysolve/internal/solve"
)

func renderFor(t *testing.T, degree int, coeffs []float64) string {
	t.Helper()
	eq, err := equation.New(degree, coeffs)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return Render(eq, solve.Roots(eq), analysis.Analyze(eq))
}

func TestRender_Linear(t *testing.T) {
	out := renderFor(t, 1, []float64{2, -4})

	for _, want := range []string{"Linear Equation", "2x - 4 = 0", "Solutions", "x = +2.000", "Details", "slope", "y-intercept"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRender_QuadraticComplex(t *testing.T) {
	out := renderFor(t, 2, []float64{1, 2, 5})

	for _, want := range []string{"Quadratic Equation", "complex conjugate pair", "x1 = -1.000 + 2.000i", "x2 = -1.000 - 2.000i", "concavity = upwards", "min = (-1.000, 4.000)"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRender_QuadraticRepeated(t *testing.T) {
	out := renderFor(t, 2, []float64{1, 2, 1})

	if !strings.Contains(out, "x = -1.000 (repeated)") {
		t.Errorf("expected repeated-root line:\n%s", out)
	}
}

func TestRender_CubicBranches(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		want   []string
	}{
		{"three real", []float64{1, -6, 11, -6}, []string{"three real roots", "x1 = +1.000", "x2 = +2.000", "x3 = +3.000", "inflection point = (2.000, 0.000)"}},
		{"one real", []float64{1, 0, 0, -8}, []string{"one real root", "x = +2.000"}},
		{"double root", []float64{1, 0, -3, 2}, []string{"repeated root", "x1 = -2.000", "x2 = +1.000"}},
		{"triple root", []float64{1, -3, 3, -1}, []string{"repeated root", "x = +1.000 (repeated)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderFor(t, 3, tt.coeffs)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("report missing %q:\n%s", want, out)
				}
			}
		})
	}
}
