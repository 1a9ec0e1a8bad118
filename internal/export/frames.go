package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"

	_ "github.com/gogpu/gg-pdf"
	_ "github.com/gogpu/gg-svg"

	"goatlas/internal/atlas"
	"goatlas/internal/render"
	"goatlas/internal/world"
)

// Frames renders every cataloged projection to its own image file at
// <out>/<id>.<format>. PNG rasterizes directly; svg and pdf replay a
// recorded frame through the registered vector backends.
func Frames(catalog []atlas.Descriptor, w *world.Boundaries, opts Options) error {
	view := opts.view()
	saved := *view
	defer func() { *view = saved }()

	if err := checkFormat(opts.format()); err != nil {
		return err
	}
	if err := os.MkdirAll(opts.outDir(), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	for _, desc := range catalog {
		if _, err := view.SelectProjection(desc.ID); err != nil {
			return fmt.Errorf("export: frame %s: %w", desc.ID, err)
		}
		if _, err := Frame(desc, w, *view, opts); err != nil {
			return err
		}
	}
	return nil
}

// Frame captures a single projection under the given view and returns the
// written path. This is the handler behind the interactive export key.
func Frame(desc atlas.Descriptor, w *world.Boundaries, view atlas.ViewState, opts Options) (string, error) {
	format := opts.format()
	if err := checkFormat(format); err != nil {
		return "", err
	}
	if err := os.MkdirAll(opts.outDir(), 0o755); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	f := &atlas.Factory{World: w, Home: opts.Home}
	cfg, err := f.Build(desc, float64(opts.width()), float64(opts.height()), view)
	if err != nil {
		return "", fmt.Errorf("export: frame %s: %w", desc.ID, err)
	}
	frame := render.Compose(cfg, w, view, render.Options{Theme: opts.Theme, Home: opts.Home})

	path := filepath.Join(opts.outDir(), desc.ID+"."+format)
	if format == "png" {
		ctx := gg.NewContext(opts.width(), opts.height())
		if err := render.Paint(ctx, frame); err != nil {
			return "", fmt.Errorf("export: frame %s: %w", desc.ID, err)
		}
		if err := ctx.SavePNG(path); err != nil {
			return "", fmt.Errorf("export: frame %s: %w", desc.ID, err)
		}
		return path, nil
	}

	rec := recording.NewRecorder(opts.width(), opts.height())
	if err := render.Paint(recCanvas{rec}, frame); err != nil {
		return "", fmt.Errorf("export: frame %s: %w", desc.ID, err)
	}
	backend, err := recording.NewBackend(format)
	if err != nil {
		return "", fmt.Errorf("export: frame %s: %w", desc.ID, err)
	}
	if err := rec.FinishRecording().Playback(backend); err != nil {
		return "", fmt.Errorf("export: frame %s: %w", desc.ID, err)
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return "", fmt.Errorf("export: frame %s: backend %q cannot write files", desc.ID, format)
	}
	if err := fb.SaveToFile(path); err != nil {
		return "", fmt.Errorf("export: frame %s: %w", desc.ID, err)
	}
	return path, nil
}

func checkFormat(format string) error {
	switch format {
	case "png", "svg", "pdf":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
