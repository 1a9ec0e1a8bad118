// Package export drives the render pipeline headlessly: a multi-page PDF
// atlas over the whole catalog, or one image file per projection.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/gogpu/gg"

	"goatlas/internal/atlas"
	"goatlas/internal/render"
	"goatlas/internal/world"
)

// ErrUnsupportedFormat rejects frame formats outside png, svg, pdf.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// Options configures an export run. The zero value renders 1024x768 frames
// with the default theme into the working directory.
type Options struct {
	// View is the session view state. Export runs mutate it while iterating
	// and restore it before returning; nil uses a fresh default.
	View   *atlas.ViewState
	Home   string
	W, H   int
	Out    string
	Format string
	Theme  render.Theme
}

func (o Options) width() int {
	if o.W > 0 {
		return o.W
	}
	return 1024
}

func (o Options) height() int {
	if o.H > 0 {
		return o.H
	}
	return 768
}

func (o Options) outDir() string {
	if o.Out != "" {
		return o.Out
	}
	return "."
}

func (o Options) format() string {
	if o.Format != "" {
		return o.Format
	}
	return "png"
}

func (o Options) view() *atlas.ViewState {
	if o.View != nil {
		return o.View
	}
	v := atlas.DefaultView()
	return &v
}

// Atlas renders every cataloged projection as a captioned page of a single
// PDF at <out>/atlas.pdf. The session view is stepped through the catalog
// with the same transition used interactively and restored afterwards; any
// page failure aborts the batch with the projection id wrapped in.
func Atlas(catalog []atlas.Descriptor, w *world.Boundaries, opts Options) error {
	view := opts.view()
	saved := *view
	defer func() { *view = saved }()

	if err := os.MkdirAll(opts.outDir(), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	f := &atlas.Factory{World: w, Home: opts.Home}
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("World Atlas", false)

	for _, desc := range catalog {
		if _, err := view.SelectProjection(desc.ID); err != nil {
			return fmt.Errorf("export: page %s: %w", desc.ID, err)
		}
		if err := addPage(pdf, f, w, *view, desc, opts); err != nil {
			return fmt.Errorf("export: page %s: %w", desc.ID, err)
		}
	}

	path := filepath.Join(opts.outDir(), "atlas.pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export: write atlas: %w", err)
	}
	return nil
}

func addPage(pdf *fpdf.Fpdf, f *atlas.Factory, w *world.Boundaries, view atlas.ViewState, desc atlas.Descriptor, opts Options) error {
	cfg, err := f.Build(desc, float64(opts.width()), float64(opts.height()), view)
	if err != nil {
		return err
	}
	frame := render.Compose(cfg, w, view, render.Options{Theme: opts.Theme, Home: opts.Home})

	ctx := gg.NewContext(opts.width(), opts.height())
	if err := render.Paint(ctx, frame); err != nil {
		return err
	}
	var png bytes.Buffer
	if err := ctx.EncodePNG(&png); err != nil {
		return err
	}

	pageW, pageH := pdf.GetPageSize()
	const margin, captionH = 12.0, 10.0
	availW := pageW - 2*margin
	availH := pageH - 2*margin - captionH
	imgW, imgH := fitBox(float64(opts.width()), float64(opts.height()), availW, availH)

	pdf.AddPage()
	pdf.RegisterImageOptionsReader(desc.ID, fpdf.ImageOptions{ImageType: "PNG"}, &png)
	pdf.ImageOptions(desc.ID, (pageW-imgW)/2, margin+(availH-imgH)/2, imgW, imgH, false,
		fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(margin, pageH-margin-captionH+2)
	pdf.CellFormat(availW, 6, fmt.Sprintf("%s (%s)", desc.DisplayName, desc.Family), "", 0, "C", false, 0, "")

	if pdf.Err() {
		return pdf.Error()
	}
	return nil
}

// fitBox scales a w by h box to the largest size that fits the bounds
// without changing its aspect ratio.
func fitBox(w, h, boundW, boundH float64) (float64, float64) {
	s := boundW / w
	if h*s > boundH {
		s = boundH / h
	}
	return w * s, h * s
}
