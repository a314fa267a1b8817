// Package charts validates, draws and displays labeled multi-series charts.
package charts

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/CarlosSanchess/benchcharts/src/chartspec"
	"github.com/CarlosSanchess/benchcharts/src/logging"
	"github.com/CarlosSanchess/benchcharts/src/render"
)

// Display shows one rendered chart and blocks until it is dismissed.
type Display interface {
	Show(ctx context.Context, title string, img image.Image, redraw render.RedrawFunc) error
}

// Renderer draws charts with a backend and hands them to a Display.
// It holds no per-chart state; concurrent use is safe if the Display is.
type Renderer struct {
	backend render.Backend
	display Display
	size    chartspec.Size // override; zero fields defer to the chart
}

// New returns a Renderer. display may be nil when only Export is used.
func New(backend render.Backend, display Display) *Renderer {
	if backend == nil {
		backend = render.ChartBackend{}
	}
	return &Renderer{backend: backend, display: display}
}

// WithSize returns a copy of r that renders at size, per dimension, instead of
// the chart's own size.
func (r *Renderer) WithSize(size chartspec.Size) *Renderer {
	cp := *r
	cp.size = size
	return &cp
}

// SizeFor resolves the pixel size used for spec.
func (r *Renderer) SizeFor(spec *chartspec.ChartSpec) chartspec.Size {
	return r.size.Or(spec.Size()).Or(render.DefaultSize)
}

// Render validates spec, draws it and displays it. It blocks until the chart
// window is closed or ctx is done. A *chartspec.ValidationError is returned
// before anything is drawn when spec is malformed.
func (r *Renderer) Render(ctx context.Context, spec *chartspec.ChartSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if r.display == nil {
		return fmt.Errorf("render %q: no display", spec.Title())
	}
	start := time.Now()
	img, err := r.backend.Image(spec, r.SizeFor(spec))
	if err != nil {
		return fmt.Errorf("render %q: %w", spec.Title(), err)
	}
	logging.TimeTrack(start, fmt.Sprintf("[charts] draw %q with %s", spec.Title(), r.backend.Name()))
	redraw := func(size chartspec.Size) (image.Image, error) {
		return r.backend.Image(spec, size)
	}
	if err := r.display.Show(ctx, spec.Title(), img, redraw); err != nil {
		return fmt.Errorf("display %q: %w", spec.Title(), err)
	}
	return nil
}

// RenderAll renders specs one after another, stopping at the first error.
// All specs are validated before the first window opens.
func (r *Renderer) RenderAll(ctx context.Context, specs []*chartspec.ChartSpec) error {
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	for i, s := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		logging.Infof("[charts] showing %d/%d: %s", i+1, len(specs), s.Title())
		if err := r.Render(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// Export writes spec to dir as <slug of title>.<ext> and returns the path.
// dir is created when missing.
func (r *Renderer) Export(spec *chartspec.ChartSpec, dir string, format render.Format) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export %q: %w", spec.Title(), err)
	}
	p := filepath.Join(dir, render.FileName(spec.Title(), format))
	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("export %q: %w", spec.Title(), err)
	}
	if err := r.backend.Encode(f, spec, r.SizeFor(spec), format); err != nil {
		f.Close()
		_ = os.Remove(p)
		return "", fmt.Errorf("export %q: %w", spec.Title(), err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export %q: %w", spec.Title(), err)
	}
	logging.Debugf("[charts] wrote %s", p)
	return p, nil
}

// ExportAll exports every spec and returns the written paths in order.
// All specs are validated before anything is written. Two charts with the
// same slug would overwrite each other, so that is an error.
func (r *Renderer) ExportAll(specs []*chartspec.ChartSpec, dir string, format render.Format) ([]string, error) {
	seen := make(map[string]string, len(specs))
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		name := render.FileName(s.Title(), format)
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("charts %q and %q both export to %s", prev, s.Title(), name)
		}
		seen[name] = s.Title()
	}
	paths := make([]string, 0, len(specs))
	for _, s := range specs {
		p, err := r.Export(s, dir, format)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
