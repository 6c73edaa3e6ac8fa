package solve

import (
	"math"

	"github.com/san-kum/polysolve/internal/equation"
)

// solveQuadratic handles a·x² + b·x + c = 0 via the quadratic formula,
// branching on the discriminant cached at construction time.
func solveQuadratic(eq *equation.Equation) RootSet {
	c := eq.Coefficients()
	a, b := c[0], c[1]
	delta := eq.Discriminant()

	switch {
	case delta > eps:
		r := math.Sqrt(delta)
		x1 := (-b - r) / (2 * a)
		x2 := (-b + r) / (2 * a)
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		return RootSet{Case: CaseTwoReal, Real: []float64{x1, x2}}

	case delta < -eps:
		// Build the conjugate pair from its real and imaginary parts;
		// sqrt only ever sees the positive −Δ.
		re := -b / (2 * a)
		im := math.Abs(math.Sqrt(-delta) / (2 * a))
		return RootSet{Case: CaseComplexPair, Pair: &ConjugatePair{Re: re, Im: im}}

	default:
		return RootSet{Case: CaseRepeatedReal, Real: []float64{-b / (2 * a)}}
	}
}
