package equation

import "fmt"

// Kind identifies which solving and analysis behavior applies.
type Kind int

const (
	Linear Kind = iota
	Quadratic
	Cubic
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Degree returns the polynomial degree the kind stands for.
func (k Kind) Degree() int { return int(k) + 1 }

// KindForDegree maps a degree in {1, 2, 3} to its kind.
func KindForDegree(degree int) (Kind, bool) {
	switch degree {
	case 1:
		return Linear, true
	case 2:
		return Quadratic, true
	case 3:
		return Cubic, true
	default:
		return 0, false
	}
}

// Equation is a validated polynomial equation a_n·x^n + ... + a_0 = 0.
// Coefficients are ordered highest power first. Instances are immutable
// after construction.
type Equation struct {
	kind   Kind
	coeffs []float64
	delta  float64 // quadratic discriminant, cached at construction
}

// New validates degree and coefficients and builds an Equation. The
// coefficient slice is copied, so the caller may reuse it.
func New(degree int, coeffs []float64) (*Equation, error) {
	kind, ok := KindForDegree(degree)
	if !ok {
		return nil, fmt.Errorf("unsupported degree: %d", degree)
	}
	if len(coeffs) != degree+1 {
		return nil, &ShapeError{Degree: degree, Got: len(coeffs)}
	}
	if coeffs[0] == 0 {
		return nil, &DegeneracyError{Degree: degree}
	}

	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	eq := &Equation{kind: kind, coeffs: c}
	if kind == Quadratic {
		eq.delta = c[1]*c[1] - 4*c[0]*c[2]
	}
	return eq, nil
}

func (e *Equation) Kind() Kind  { return e.kind }
func (e *Equation) Degree() int { return e.kind.Degree() }

// Coefficients returns a copy of the coefficient sequence, highest power
// first.
func (e *Equation) Coefficients() []float64 {
	c := make([]float64, len(e.coeffs))
	copy(c, e.coeffs)
	return c
}

// Discriminant returns the cached b² − 4ac. Only meaningful for quadratic
// equations; zero otherwise.
func (e *Equation) Discriminant() float64 { return e.delta }

// Eval evaluates the polynomial at x using Horner's scheme.
func (e *Equation) Eval(x float64) float64 {
	v := e.coeffs[0]
	for _, c := range e.coeffs[1:] {
		v = v*x + c
	}
	return v
}
