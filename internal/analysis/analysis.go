// Package analysis derives per-kind analytical facts from a validated
// equation: slope and intercept for a line, vertex for a parabola,
// inflection point for a cubic. Pure functions of the coefficients, no
// state.
package analysis

import (
	"fmt"

	"github.com/san-kum/polysolve/internal/equation"
)

// Line describes a degree-1 equation's graph.
type Line struct {
	Slope     float64
	Intercept float64
}

// Vertex is the turning point of a parabola, plus the qualitative facts
// that follow from the sign of the leading coefficient.
type Vertex struct {
	X, Y      float64
	Concavity string // "upwards" or "downwards"
	Extremum  string // "min" or "max"
}

// Point is a plain coordinate, used for the cubic's inflection point.
type Point struct {
	X, Y float64
}

// Result carries the facts for exactly one kind; the matching field is
// non-nil. Consumers switch on Kind and must handle every case.
type Result struct {
	Kind       equation.Kind
	Line       *Line
	Vertex     *Vertex
	Inflection *Point
}

// Analyze computes the derived facts for a validated equation. It never
// fails; an unknown kind is a construction bug and panics.
func Analyze(eq *equation.Equation) Result {
	c := eq.Coefficients()

	switch eq.Kind() {
	case equation.Linear:
		return Result{Kind: equation.Linear, Line: &Line{Slope: c[0], Intercept: c[1]}}

	case equation.Quadratic:
		// y comes from evaluating the polynomial at the vertex, not a
		// closed-form shortcut, so it always agrees with Eval.
		x := -c[1] / (2 * c[0])
		v := &Vertex{X: x, Y: eq.Eval(x), Concavity: "upwards", Extremum: "min"}
		if c[0] < 0 {
			v.Concavity, v.Extremum = "downwards", "max"
		}
		return Result{Kind: equation.Quadratic, Vertex: v}

	case equation.Cubic:
		x := -c[1] / (3 * c[0])
		return Result{Kind: equation.Cubic, Inflection: &Point{X: x, Y: eq.Eval(x)}}

	default:
		panic(fmt.Sprintf("analysis: unknown equation kind %v", eq.Kind()))
	}
}
