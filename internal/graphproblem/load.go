package graphproblem

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File is the YAML form of a graph problem:
//
//	start: A
//	goals: [D]
//	edges:
//	  - {from: A, to: B, cost: 1}
//	  - {from: B, to: D, cost: 1, action: east}
//	heuristic:
//	  B: 1
type File struct {
	Start     string             `yaml:"start" validate:"required"`
	Goals     []string           `yaml:"goals" validate:"required,min=1,dive,required"`
	Edges     []Edge             `yaml:"edges" validate:"dive"`
	Heuristic map[string]float64 `yaml:"heuristic" validate:"dive,gte=0"`
}

// Edge is one directed edge.
type Edge struct {
	From   string  `yaml:"from" validate:"required"`
	To     string  `yaml:"to" validate:"required"`
	Action string  `yaml:"action"`
	Cost   float64 `yaml:"cost" validate:"gte=0"`
}

var fileValidate = validator.New()

// Build validates the file and constructs the problem.
func (f *File) Build() (*Problem, error) {
	if err := fileValidate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid graph problem: %w", err)
	}
	p := New(f.Start, f.Goals...)
	for _, edge := range f.Edges {
		p.AddEdge(edge.From, edge.To, edge.Action, edge.Cost)
	}
	for state, estimate := range f.Heuristic {
		p.SetEstimate(state, estimate)
	}
	return p, nil
}

// Load decodes and validates a YAML graph problem. Unknown fields are rejected.
func Load(r io.Reader) (*Problem, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var f File
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode graph problem: %w", err)
	}
	return f.Build()
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Problem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Load(file)
}
