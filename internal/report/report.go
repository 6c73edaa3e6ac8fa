// Package report formats a solved equation into a terminal report: the
// equation type, the rendered equation, a Solutions section, and a Details
// section. It performs no numeric computation; everything it prints comes
// from the equation, solve, and analysis packages.
package report

import (
	"fmt"
	"strings"

	"github.com/san-kum/polysolve/internal/analysis"
	"github.com/san-kum/polysolve/internal/equation"
	"github.com/san-kum/polysolve/internal/solve"
)

var titles = map[equation.Kind]string{
	equation.Linear:    "Linear Equation",
	equation.Quadratic: "Quadratic Equation",
	equation.Cubic:     "Cubic Equation",
}

// Render lays out the full report for one solved equation.
func Render(eq *equation.Equation, roots solve.RootSet, facts analysis.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(titles[eq.Kind()]))
	b.WriteByte('\n')
	b.WriteString(equationStyle.Render(eq.String()))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Solutions"))
	b.WriteByte('\n')
	b.WriteString(caseStyle.Render(roots.Case.String()))
	b.WriteByte('\n')
	for _, line := range solutionLines(roots) {
		b.WriteString(rootStyle.Render(line))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(sectionStyle.Render("Details"))
	b.WriteByte('\n')
	for _, line := range detailLines(facts) {
		b.WriteString(detailStyle.Render(line))
		b.WriteByte('\n')
	}

	return b.String()
}

func solutionLines(roots solve.RootSet) []string {
	switch roots.Case {
	case solve.CaseOneReal:
		return []string{fmt.Sprintf("x = %+.3f", roots.Real[0])}

	case solve.CaseRepeatedReal:
		if len(roots.Real) == 1 {
			return []string{fmt.Sprintf("x = %+.3f (repeated)", roots.Real[0])}
		}
		lines := make([]string, len(roots.Real))
		for i, x := range roots.Real {
			lines[i] = fmt.Sprintf("x%d = %+.3f", i+1, x)
		}
		return lines

	case solve.CaseTwoReal, solve.CaseThreeReal:
		lines := make([]string, len(roots.Real))
		for i, x := range roots.Real {
			lines[i] = fmt.Sprintf("x%d = %+.3f", i+1, x)
		}
		return lines

	case solve.CaseComplexPair:
		return []string{
			fmt.Sprintf("x1 = %+.3f + %.3fi", roots.Pair.Re, roots.Pair.Im),
			fmt.Sprintf("x2 = %+.3f - %.3fi", roots.Pair.Re, roots.Pair.Im),
		}

	default:
		panic(fmt.Sprintf("report: unhandled root case %v", roots.Case))
	}
}

func detailLines(facts analysis.Result) []string {
	switch facts.Kind {
	case equation.Linear:
		return []string{
			fmt.Sprintf("slope       = %.3f", facts.Line.Slope),
			fmt.Sprintf("y-intercept = %.3f", facts.Line.Intercept),
		}

	case equation.Quadratic:
		v := facts.Vertex
		return []string{
			fmt.Sprintf("concavity = %s", v.Concavity),
			fmt.Sprintf("%s = (%.3f, %.3f)", v.Extremum, v.X, v.Y),
		}

	case equation.Cubic:
		p := facts.Inflection
		return []string{
			fmt.Sprintf("inflection point = (%.3f, %.3f)", p.X, p.Y),
		}

	default:
		panic(fmt.Sprintf("report: unhandled analysis kind %v", facts.Kind))
	}
}
