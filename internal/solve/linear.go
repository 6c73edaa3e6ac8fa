package solve

import "github.com/san-kum/polysolve/internal/equation"

// solveLinear handles a·x + b = 0. The validator guarantees a != 0, so
// there is no error path.
func solveLinear(eq *equation.Equation) RootSet {
	c := eq.Coefficients()
	return RootSet{Case: CaseOneReal, Real: []float64{-c[1] / c[0]}}
}
