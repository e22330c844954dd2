package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/newton"
)

// Scene is the YAML description of a render. Zero fields keep the
// defaults of newton.DefaultConfig.
type Scene struct {
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	Center  []float64  `yaml:"center"`
	Scale   float64    `yaml:"scale"`
	Roots   []RootSpec `yaml:"roots"`
	Solver  SolverSpec `yaml:"solver"`
	Shading *bool      `yaml:"shading"`
	Light   []float64  `yaml:"light"`
	Blur    *int       `yaml:"blur"`
	Workers int        `yaml:"workers"`
	Frames  int        `yaml:"frames"`
	Spin    float64    `yaml:"spin"`
	Output  string     `yaml:"output"`
}

// SolverSpec holds the iteration constants of a scene.
type SolverSpec struct {
	Iterations int     `yaml:"iterations"`
	Damping    float64 `yaml:"damping"`
	Epsilon    float64 `yaml:"epsilon"`
	Stride     int     `yaml:"stride"`
	Vectorized *bool   `yaml:"vectorized"`
}

// RootSpec is one group of roots. Layout is "ring", "spiral" or "point".
type RootSpec struct {
	Layout string    `yaml:"layout"`
	Count  int       `yaml:"count"`
	Radius float64   `yaml:"radius"`
	Phase  float64   `yaml:"phase"`
	At     []float64 `yaml:"at"`
}

var errBadScene = errors.New("invalid scene")

// LoadScene reads a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	return ParseScene(data)
}

// ParseScene decodes a YAML scene. Unknown keys are rejected.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", errBadScene, err)
	}
	return &s, nil
}

// Apply overlays the non-zero fields of s onto cfg.
func (s *Scene) Apply(cfg *newton.Config) error {
	if s.Width != 0 {
		cfg.Cols = s.Width
	}
	if s.Height != 0 {
		cfg.Rows = s.Height
	}
	if s.Center != nil {
		c, err := point(s.Center)
		if err != nil {
			return fmt.Errorf("center: %w", err)
		}
		cfg.Center = c
	}
	if s.Scale != 0 {
		cfg.Scale = s.Scale
	}
	if len(s.Roots) > 0 {
		roots, err := expandRoots(s.Roots)
		if err != nil {
			return err
		}
		cfg.Roots = roots
	}

	if s.Solver.Iterations != 0 {
		cfg.MaxIter = s.Solver.Iterations
	}
	if s.Solver.Damping != 0 {
		cfg.Damping = s.Solver.Damping
	}
	if s.Solver.Epsilon != 0 {
		cfg.Epsilon = s.Solver.Epsilon
	}
	if s.Solver.Stride != 0 {
		cfg.Stride = s.Solver.Stride
	}
	if s.Solver.Vectorized != nil {
		cfg.Vectorized = *s.Solver.Vectorized
	}

	if s.Shading != nil {
		cfg.Shading = *s.Shading
	}
	if s.Light != nil {
		if len(s.Light) != 3 {
			return fmt.Errorf("%w: light needs 3 components, got %d", errBadScene, len(s.Light))
		}
		cfg.Light = [3]float64(s.Light)
	}
	if s.Blur != nil {
		cfg.BlurRadius = *s.Blur
	}
	if s.Workers != 0 {
		cfg.Workers = s.Workers
	}
	return nil
}

func expandRoots(specs []RootSpec) ([]complex128, error) {
	var roots []complex128
	for i, rs := range specs {
		radius := rs.Radius
		if radius == 0 {
			radius = 1
		}
		switch rs.Layout {
		case "ring":
			roots = append(roots, newton.Ring(rs.Count, radius, rs.Phase)...)
		case "spiral":
			roots = append(roots, newton.Spiral(rs.Count, radius, rs.Phase)...)
		case "point":
			p, err := point(rs.At)
			if err != nil {
				return nil, fmt.Errorf("roots[%d]: %w", i, err)
			}
			roots = append(roots, p)
		default:
			return nil, fmt.Errorf("%w: roots[%d]: unknown layout %q", errBadScene, i, rs.Layout)
		}
	}
	return roots, nil
}

func point(v []float64) (complex128, error) {
	if len(v) != 2 {
		return 0, fmt.Errorf("%w: point needs [re, im], got %v", errBadScene, v)
	}
	return complex(v[0], v[1]), nil
}
