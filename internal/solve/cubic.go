package solve

import (
	"math"
	"sort"

	"github.com/san-kum/polysolve/internal/equation"
)

// solveCubic handles a·x³ + b·x² + c·x + d = 0 by Cardano's method.
//
// The substitution x = t − b/(3a) removes the quadratic term, giving
// t³ + p·t + q = 0. The sign of Δ = (q/2)² + (p/3)³ picks the branch:
// one real root (real cube roots), repeated real roots (the cube-root
// formula collapses), or three distinct real roots, computed
// trigonometrically to avoid cube roots of complex numbers.
func solveCubic(eq *equation.Equation) RootSet {
	cf := eq.Coefficients()
	a, b, c, d := cf[0], cf[1], cf[2], cf[3]

	shift := -b / (3 * a)
	p := (3*a*c - b*b) / (3 * a * a)
	q := (2*b*b*b - 9*a*b*c + 27*a*a*d) / (27 * a * a * a)
	delta := q*q/4 + p*p*p/27

	switch {
	case delta > eps:
		// One real root; the conjugate pair is not part of the contract.
		r := math.Sqrt(delta)
		t := math.Cbrt(-q/2+r) + math.Cbrt(-q/2-r)
		return RootSet{Case: CaseOneReal, Real: []float64{t + shift}}

	case delta < -eps:
		// Casus irreducibilis: three distinct real roots.
		s := math.Sqrt(-p / 3)
		arg := 3 * q / (p * s)
		// Clamp against rounding drift just outside [-1, 1].
		if arg > 1 {
			arg = 1
		} else if arg < -1 {
			arg = -1
		}
		theta := math.Acos(arg) / 3

		roots := make([]float64, 3)
		for k := 0; k < 3; k++ {
			roots[k] = 2*s*math.Cos(theta-2*math.Pi*float64(k)/3) + shift
		}
		sort.Float64s(roots)
		return RootSet{Case: CaseThreeReal, Real: roots}

	default:
		// Δ ≈ 0: the cube-root formula collapses to at most two distinct
		// values, t = 2·∛(−q/2) and t = −∛(−q/2). When p ≈ q ≈ 0 the two
		// coincide in a triple root, reported once.
		u := math.Cbrt(-q / 2)
		t1, t2 := 2*u, -u
		if math.Abs(t1-t2) <= eps {
			return RootSet{Case: CaseRepeatedReal, Real: []float64{t1 + shift}}
		}
		x1, x2 := t1+shift, t2+shift
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		return RootSet{Case: CaseRepeatedReal, Real: []float64{x1, x2}}
	}
}
