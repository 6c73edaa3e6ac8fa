package solve

// Case tags the qualitative outcome of a solve.
type Case int

const (
	CaseOneReal Case = iota
	CaseTwoReal
	CaseRepeatedReal
	CaseComplexPair
	CaseThreeReal
)

func (c Case) String() string {
	switch c {
	case CaseOneReal:
		return "one real root"
	case CaseTwoReal:
		return "two real roots"
	case CaseRepeatedReal:
		return "repeated root"
	case CaseComplexPair:
		return "complex conjugate pair"
	case CaseThreeReal:
		return "three real roots"
	default:
		return "unknown"
	}
}

// ConjugatePair is a complex-conjugate root pair Re ± Im·i, held as explicit
// real and imaginary parts. Im is always positive.
type ConjugatePair struct {
	Re float64
	Im float64
}

// RootSet is the value returned by a solve: the real roots in ascending
// order, an optional conjugate pair, and the case tag describing them. It
// has no identity; callers own it.
type RootSet struct {
	Case Case
	Real []float64
	Pair *ConjugatePair
}
