// Package equation defines the validated polynomial equation entity shared
// by the solver and analysis layers.
//
// An [Equation] is constructed once via [New], which enforces the structural
// invariants (coefficient count matches the degree, leading coefficient
// non-zero) and is immutable afterwards:
//
//	eq, err := equation.New(2, []float64{1, -3, 2})
//	if err != nil {
//	    // *equation.ShapeError or *equation.DegeneracyError
//	}
//	fmt.Println(eq) // x^2 - 3x + 2 = 0
//
// The quadratic discriminant is computed at construction and cached, so both
// solving and analysis see the same value.
package equation
