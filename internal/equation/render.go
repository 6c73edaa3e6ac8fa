package equation

import (
	"math"
	"strconv"
	"strings"
)

// String renders the equation in standard form, e.g. "x^2 - 3x + 2 = 0".
// Zero-coefficient terms are omitted, signs fold into the separators, and a
// coefficient of magnitude 1 on a variable term drops the digit ("-x^2",
// not "-1x^2").
func (e *Equation) String() string {
	var b strings.Builder
	degree := e.Degree()

	for i, c := range e.coeffs {
		if c == 0 {
			continue
		}
		power := degree - i

		if b.Len() == 0 {
			if c < 0 {
				b.WriteByte('-')
			}
		} else if c < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}

		mag := math.Abs(c)
		if mag != 1 || power == 0 {
			b.WriteString(strconv.FormatFloat(mag, 'g', -1, 64))
		}
		switch {
		case power == 1:
			b.WriteByte('x')
		case power > 1:
			b.WriteString("x^")
			b.WriteString(strconv.Itoa(power))
		}
	}

	b.WriteString(" = 0")
	return b.String()
}
