package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/newton"
)

// Job is a sequence of frames. Frame k renders Config with its roots
// rotated by k*Spin radians.
type Job struct {
	Config newton.Config
	Frames int
	Spin   float64
	Output string
}

// FramePath returns the output path of frame k. A pattern containing a
// '%' verb is formatted with k. Otherwise single-frame jobs use the
// pattern as is and multi-frame jobs get a zero-padded frame number
// inserted before the extension.
func (j *Job) FramePath(k int) string {
	if strings.Contains(j.Output, "%") {
		return fmt.Sprintf(j.Output, k)
	}
	if j.Frames <= 1 {
		return j.Output
	}
	ext := filepath.Ext(j.Output)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(j.Output, ext), k, ext)
}

// Run renders and saves every frame, reporting progress to w.
func (j *Job) Run(ctx context.Context, w io.Writer) error {
	if _, err := newton.FormatFromPath(j.FramePath(0)); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	base := j.Config.Roots

	for k := range j.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}

		cfg := j.Config
		cfg.Roots = newton.Rotate(base, float64(k)*j.Spin)
		path := j.FramePath(k)

		start := time.Now()
		if err := renderFrame(cfg, path, progressPrinter(p, w, k, j.Frames)); err != nil {
			return fmt.Errorf("frame %d: %w", k, err)
		}
		p.Fprintf(w, "\rframe %d/%d: %dx%d pixels written to %s in %v\n",
			k+1, j.Frames, cfg.Cols, cfg.Rows, path, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func renderFrame(cfg newton.Config, path string, progress newton.ProgressFunc) error {
	r, err := newton.NewRenderer(cfg, newton.WithProgress(progress))
	if err != nil {
		return err
	}
	defer r.Close()

	img, err := r.Render()
	if err != nil {
		return err
	}
	return img.Save(path)
}

// progressPrinter reports whole-percent steps of a frame. Calls arrive
// from worker goroutines.
func progressPrinter(p *message.Printer, w io.Writer, frame, frames int) newton.ProgressFunc {
	var mu sync.Mutex
	last := -1
	return func(done, total int) {
		pct := done * 100 / total
		mu.Lock()
		defer mu.Unlock()
		if pct <= last {
			return
		}
		last = pct
		p.Fprintf(w, "\rframe %d/%d: %d of %d rows (%d%%)", frame+1, frames, done, total, pct)
	}
}
