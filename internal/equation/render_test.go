package equation

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		degree   int
		coeffs   []float64
		expected string
	}{
		{"linear", 1, []float64{2, -4}, "2x - 4 = 0"},
		{"linear no constant", 1, []float64{1, 0}, "x = 0"},
		{"negative leading", 1, []float64{-1, 1}, "-x + 1 = 0"},
		{"quadratic", 2, []float64{1, -3, 2}, "x^2 - 3x + 2 = 0"},
		{"repeated quadratic", 2, []float64{1, 2, 1}, "x^2 + 2x + 1 = 0"},
		{"implicit one omitted", 2, []float64{1, 1, 1}, "x^2 + x + 1 = 0"},
		{"negative one keeps sign", 2, []float64{-1, 0, 4}, "-x^2 + 4 = 0"},
		{"cubic sparse", 3, []float64{1, 0, 0, -8}, "x^3 - 8 = 0"},
		{"cubic full", 3, []float64{1, -6, 11, -6}, "x^3 - 6x^2 + 11x - 6 = 0"},
		{"fractional", 1, []float64{1.5, 0.5}, "1.5x + 0.5 = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := New(tt.degree, tt.coeffs)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if got := eq.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
