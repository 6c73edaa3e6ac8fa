// Package history persists solved equations under a data directory so past
// solves can be listed and re-exported. The numeric core stays free of I/O;
// only the CLI writes here.
package history

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/polysolve/internal/analysis"
	"github.com/san-kum/polysolve/internal/equation"
	"github.com/san-kum/polysolve/internal/solve"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// PairRecord mirrors solve.ConjugatePair for serialization.
type PairRecord struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// Record is one persisted solve.
type Record struct {
	ID           string             `json:"id"`
	Timestamp    time.Time          `json:"timestamp"`
	Kind         string             `json:"kind"`
	Degree       int                `json:"degree"`
	Coefficients []float64          `json:"coefficients"`
	Equation     string             `json:"equation"`
	Case         string             `json:"case"`
	Roots        []float64          `json:"roots,omitempty"`
	Pair         *PairRecord        `json:"conjugate_pair,omitempty"`
	Facts        map[string]float64 `json:"facts"`
	Concavity    string             `json:"concavity,omitempty"`
}

func factsOf(res analysis.Result) (map[string]float64, string) {
	switch res.Kind {
	case equation.Linear:
		return map[string]float64{
			"slope":     res.Line.Slope,
			"intercept": res.Line.Intercept,
		}, ""
	case equation.Quadratic:
		return map[string]float64{
			"vertex_x": res.Vertex.X,
			"vertex_y": res.Vertex.Y,
		}, res.Vertex.Concavity
	case equation.Cubic:
		return map[string]float64{
			"inflection_x": res.Inflection.X,
			"inflection_y": res.Inflection.Y,
		}, ""
	default:
		panic(fmt.Sprintf("history: unknown analysis kind %v", res.Kind))
	}
}

// Save writes one solve as <kind>_<nanos>/solve.json and returns the id.
func (s *Store) Save(eq *equation.Equation, roots solve.RootSet, facts analysis.Result) (string, error) {
	id := fmt.Sprintf("%s_%d", eq.Kind(), time.Now().UnixNano())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	factMap, concavity := factsOf(facts)
	rec := Record{
		ID:           id,
		Timestamp:    time.Now(),
		Kind:         eq.Kind().String(),
		Degree:       eq.Degree(),
		Coefficients: eq.Coefficients(),
		Equation:     eq.String(),
		Case:         roots.Case.String(),
		Roots:        roots.Real,
		Facts:        factMap,
		Concavity:    concavity,
	}
	if roots.Pair != nil {
		rec.Pair = &PairRecord{Re: roots.Pair.Re, Im: roots.Pair.Im}
	}

	f, err := os.Create(filepath.Join(dir, "solve.json"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Load(id string) (*Record, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "solve.json"))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", id, err)
	}
	rec := &Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("load %s: %w", id, err)
	}
	return rec, nil
}

// List returns all saved records, oldest first.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var records []Record
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		rec, err := s.Load(e.Name())
		if err != nil {
			continue // skip corrupt entries
		}
		records = append(records, *rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}

// ExportJSON re-emits one record as indented JSON.
func ExportJSON(w io.Writer, rec *Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
