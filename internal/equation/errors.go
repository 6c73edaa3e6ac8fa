package equation

import "fmt"

// ShapeError reports a coefficient sequence whose length does not match
// degree + 1.
type ShapeError struct {
	Degree int
	Got    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("degree %d equation takes %d coefficients, got %d", e.Degree, e.Degree+1, e.Got)
}

// DegeneracyError reports a zero leading coefficient: the polynomial would
// not genuinely have the claimed degree. The caller may re-submit at a lower
// degree; no automatic demotion happens here.
type DegeneracyError struct {
	Degree int
}

func (e *DegeneracyError) Error() string {
	return fmt.Sprintf("leading coefficient must be non-zero for a degree %d equation", e.Degree)
}
