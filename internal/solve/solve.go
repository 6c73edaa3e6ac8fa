package solve

import (
	"fmt"

	"github.com/san-kum/polysolve/internal/equation"
)

// eps guards discriminant comparisons against zero. Rounding noise from the
// depression/discriminant arithmetic must not flip an equation into the
// wrong branch.
const eps = 1e-12

// Roots solves a validated equation. It never fails: validation already
// ruled out every degenerate input, so each kind-specific solver is total.
func Roots(eq *equation.Equation) RootSet {
	switch eq.Kind() {
	case equation.Linear:
		return solveLinear(eq)
	case equation.Quadratic:
		return solveQuadratic(eq)
	case equation.Cubic:
		return solveCubic(eq)
	default:
		panic(fmt.Sprintf("solve: unknown equation kind %v", eq.Kind()))
	}
}
