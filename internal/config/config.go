// Package config loads and saves batch solve files and ships a set of named
// preset equations.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// EquationConfig describes one equation to solve.
type EquationConfig struct {
	Label        string    `yaml:"label,omitempty"`
	Degree       int       `yaml:"degree"`
	Coefficients []float64 `yaml:"coefficients"`
}

// Config is a batch file: a list of equations solved in order.
type Config struct {
	Equations []EquationConfig `yaml:"equations"`
}

// DefaultConfig returns a sample batch with one equation per degree.
func DefaultConfig() *Config {
	return &Config{
		Equations: []EquationConfig{
			{Label: "line", Degree: 1, Coefficients: []float64{2, 3}},
			{Label: "parabola", Degree: 2, Coefficients: []float64{1, 2, 1}},
			{Label: "cubic", Degree: 3, Coefficients: []float64{1, -6, 11, -6}},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
