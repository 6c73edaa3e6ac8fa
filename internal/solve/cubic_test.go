package solve

import (
	"math"
	"testing"
)

func TestRoots_CubicThreeReal(t *testing.T) {
	// (x-1)(x-2)(x-3), negative discriminant branch.
	rs := Roots(mustEquation(t, 3, []float64{1, -6, 11, -6}))

	if rs.Case != CaseThreeReal {
		t.Errorf("expected case %v, got %v", CaseThreeReal, rs.Case)
	}
	if len(rs.Real) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(rs.Real))
	}
	for i, want := range []float64{1, 2, 3} {
		if math.Abs(rs.Real[i]-want) > 1e-6 {
			t.Errorf("root[%d] = %v, want %v", i, rs.Real[i], want)
		}
	}
}

func TestRoots_CubicOneReal(t *testing.T) {
	// x³ - 8: positive discriminant, only the real root is reported.
	rs := Roots(mustEquation(t, 3, []float64{1, 0, 0, -8}))

	if rs.Case != CaseOneReal {
		t.Errorf("expected case %v, got %v", CaseOneReal, rs.Case)
	}
	if len(rs.Real) != 1 || math.Abs(rs.Real[0]-2) > tol {
		t.Errorf("expected root 2, got %v", rs.Real)
	}
	if rs.Pair != nil {
		t.Error("cubic solve must not report the complex pair")
	}
}

func TestRoots_CubicDoubleRoot(t *testing.T) {
	// (x-1)²(x+2) = x³ - 3x + 2: zero discriminant, two distinct values.
	rs := Roots(mustEquation(t, 3, []float64{1, 0, -3, 2}))

	if rs.Case != CaseRepeatedReal {
		t.Errorf("expected case %v, got %v", CaseRepeatedReal, rs.Case)
	}
	if len(rs.Real) != 2 {
		t.Fatalf("expected 2 distinct values, got %v", rs.Real)
	}
	if math.Abs(rs.Real[0]+2) > tol || math.Abs(rs.Real[1]-1) > tol {
		t.Errorf("expected {-2, 1}, got %v", rs.Real)
	}
}

func TestRoots_CubicTripleRoot(t *testing.T) {
	// (x-1)³: p and q both vanish; the triple root is reported once.
	rs := Roots(mustEquation(t, 3, []float64{1, -3, 3, -1}))

	if rs.Case != CaseRepeatedReal {
		t.Errorf("expected case %v, got %v", CaseRepeatedReal, rs.Case)
	}
	if len(rs.Real) != 1 || math.Abs(rs.Real[0]-1) > tol {
		t.Errorf("expected single root 1, got %v", rs.Real)
	}
}

func TestRoots_CubicResiduals(t *testing.T) {
	// Every reported root must satisfy the original polynomial, for each
	// discriminant branch and with a non-unit leading coefficient.
	tests := [][]float64{
		{1, -6, 11, -6},  // Δ < 0
		{1, 0, 0, -8},    // Δ > 0
		{1, 0, -3, 2},    // Δ = 0, double root
		{1, -3, 3, -1},   // Δ = 0, triple root
		{2, -4, -10, 12}, // scaled, three real
		{-1, 0, 0, 8},    // negative leading
		{3, 1, 1, 1},     // one real, awkward coefficients
	}

	for _, coeffs := range tests {
		eq := mustEquation(t, 3, coeffs)
		rs := Roots(eq)
		if len(rs.Real) == 0 {
			t.Errorf("Roots(%v) reported no real roots", coeffs)
		}
		for _, x := range rs.Real {
			if residual := math.Abs(eq.Eval(x)); residual > 1e-6 {
				t.Errorf("Roots(%v): root %v has residual %v", coeffs, x, residual)
			}
		}
	}
}

func TestRoots_CubicRootsSorted(t *testing.T) {
	rs := Roots(mustEquation(t, 3, []float64{1, 0, -7, 6})) // roots -3, 1, 2

	for i := 1; i < len(rs.Real); i++ {
		if rs.Real[i-1] > rs.Real[i] {
			t.Fatalf("roots not sorted: %v", rs.Real)
		}
	}
}
