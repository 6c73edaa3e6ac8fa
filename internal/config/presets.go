package config

import "sort"

// Presets maps equation kind → preset name → equation.
var Presets = map[string]map[string]*EquationConfig{
	"linear": {
		"simple": {Degree: 1, Coefficients: []float64{2, -4}},
		"steep":  {Degree: 1, Coefficients: []float64{10, 1}},
	},
	"quadratic": {
		"factored": {Degree: 2, Coefficients: []float64{1, -3, 2}},
		"repeated": {Degree: 2, Coefficients: []float64{1, 2, 1}},
		"complex":  {Degree: 2, Coefficients: []float64{1, 2, 5}},
		"golden":   {Degree: 2, Coefficients: []float64{1, -1, -1}},
	},
	"cubic": {
		"factored":  {Degree: 3, Coefficients: []float64{1, -6, 11, -6}},
		"cardano":   {Degree: 3, Coefficients: []float64{1, 0, 0, -8}},
		"double":    {Degree: 3, Coefficients: []float64{1, 0, -3, 2}},
		"triple":    {Degree: 3, Coefficients: []float64{1, -3, 3, -1}},
		"depressed": {Degree: 3, Coefficients: []float64{1, 0, -7, 6}},
	},
}

// GetPreset returns the named preset for a kind, or nil.
func GetPreset(kind, name string) *EquationConfig {
	group, ok := Presets[kind]
	if !ok {
		return nil
	}
	return group[name]
}

// FindPreset looks a name up across all kinds, first match in kind order.
// Use GetPreset when the kind is known, since names repeat across kinds.
func FindPreset(name string) *EquationConfig {
	for _, kind := range []string{"linear", "quadratic", "cubic"} {
		if cfg := GetPreset(kind, name); cfg != nil {
			return cfg
		}
	}
	return nil
}

// ListPresets returns the sorted preset names for a kind.
func ListPresets(kind string) []string {
	group, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
