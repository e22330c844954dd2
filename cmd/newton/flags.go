package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/gogpu/newton"
)

// renderFlags are the command-line knobs shared by render and poly.
// Flags given explicitly override the scene file.
type renderFlags struct {
	scene string

	cols, rows         int
	centerRe, centerIm float64
	scale              float64

	layout string
	count  int
	radius float64
	phase  float64

	iterations int
	damping    float64
	epsilon    float64
	stride     int
	scalar     bool

	workers     int
	rowsPerTask int
	blur        int
	light       []float64
	flat        bool

	frames int
	spin   float64
	out    string
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	d := newton.DefaultConfig()

	fs.StringVar(&f.scene, "scene", "", "YAML scene file")

	fs.IntVar(&f.cols, "width", d.Cols, "image width in pixels")
	fs.IntVar(&f.rows, "height", d.Rows, "image height in pixels")
	fs.Float64Var(&f.centerRe, "center-re", real(d.Center), "real part of the view centre")
	fs.Float64Var(&f.centerIm, "center-im", imag(d.Center), "imaginary part of the view centre")
	fs.Float64Var(&f.scale, "scale", d.Scale, "half-extent of the view along the larger dimension")

	fs.StringVar(&f.layout, "layout", "ring", "root layout: ring or spiral")
	fs.IntVar(&f.count, "roots", len(d.Roots), "number of roots")
	fs.Float64Var(&f.radius, "radius", 1, "radius of the root layout")
	fs.Float64Var(&f.phase, "phase", 0, "angle of the first root in radians")

	fs.IntVar(&f.iterations, "iterations", d.MaxIter, "Newton step cap per pixel")
	fs.Float64Var(&f.damping, "damping", d.Damping, "Newton step multiplier")
	fs.Float64Var(&f.epsilon, "epsilon", d.Epsilon, "convergence radius, compared to the squared distance")
	fs.IntVar(&f.stride, "stride", d.Stride, "steps between convergence checks")
	fs.BoolVar(&f.scalar, "scalar", false, "disable the 8-lane iteration path")

	fs.IntVar(&f.workers, "workers", d.Workers, "worker goroutines (0 = GOMAXPROCS)")
	fs.IntVar(&f.rowsPerTask, "rows-per-task", d.RowsPerTask, "rows per scheduled task")
	fs.IntVar(&f.blur, "blur", d.BlurRadius, "gradient blur radius")
	fs.Float64SliceVar(&f.light, "light", d.Light[:], "light direction x,y,z")
	fs.BoolVar(&f.flat, "flat", false, "flat basin colours without shading")

	fs.IntVar(&f.frames, "frames", 1, "number of frames to render")
	fs.Float64Var(&f.spin, "spin", 0, "root rotation per frame in radians")
	fs.StringVarP(&f.out, "out", "o", "newton.png", "output file or printf pattern for frames")
}

// job builds the render job: defaults, then the scene file, then every
// flag set on the command line.
func (f *renderFlags) job(fs *pflag.FlagSet) (*Job, error) {
	cfg := newton.DefaultConfig()
	job := &Job{Frames: 1, Output: f.out}

	sceneRoots := false
	if f.scene != "" {
		s, err := LoadScene(f.scene)
		if err != nil {
			return nil, err
		}
		if err := s.Apply(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", f.scene, err)
		}
		sceneRoots = len(s.Roots) > 0
		if s.Frames != 0 {
			job.Frames = s.Frames
		}
		job.Spin = s.Spin
		if s.Output != "" {
			job.Output = s.Output
		}
	}

	var err error
	layoutChanged, shapeChanged := false, false
	fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Cols = f.cols
		case "height":
			cfg.Rows = f.rows
		case "center-re":
			cfg.Center = complex(f.centerRe, imag(cfg.Center))
		case "center-im":
			cfg.Center = complex(real(cfg.Center), f.centerIm)
		case "scale":
			cfg.Scale = f.scale
		case "layout", "roots":
			layoutChanged = true
		case "radius", "phase":
			shapeChanged = true
		case "iterations":
			cfg.MaxIter = f.iterations
		case "damping":
			cfg.Damping = f.damping
		case "epsilon":
			cfg.Epsilon = f.epsilon
		case "stride":
			cfg.Stride = f.stride
		case "scalar":
			cfg.Vectorized = !f.scalar
		case "workers":
			cfg.Workers = f.workers
		case "rows-per-task":
			cfg.RowsPerTask = f.rowsPerTask
		case "blur":
			cfg.BlurRadius = f.blur
		case "light":
			if len(f.light) != 3 {
				err = fmt.Errorf("--light needs 3 components, got %d", len(f.light))
				return
			}
			cfg.Light = [3]float64(f.light)
		case "flat":
			cfg.Shading = !f.flat
		case "frames":
			job.Frames = f.frames
		case "spin":
			job.Spin = f.spin
		case "out":
			job.Output = f.out
		}
	})
	if err != nil {
		return nil, err
	}

	// Radius and phase alone reshape the default ring but leave the root
	// groups of a scene alone.
	if layoutChanged || (shapeChanged && !sceneRoots) {
		switch f.layout {
		case "ring":
			cfg.Roots = newton.Ring(f.count, f.radius, f.phase)
		case "spiral":
			cfg.Roots = newton.Spiral(f.count, f.radius, f.phase)
		default:
			return nil, fmt.Errorf("unknown layout %q", f.layout)
		}
	}
	if job.Frames < 1 {
		return nil, fmt.Errorf("--frames must be at least 1, got %d", job.Frames)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	job.Config = cfg
	return job, nil
}

