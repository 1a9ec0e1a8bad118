package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"goatlas/internal/atlas"
	"goatlas/internal/config"
	"goatlas/internal/export"
	"goatlas/internal/logger"
	"goatlas/internal/render"
	"goatlas/internal/tui"
	"goatlas/internal/world"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cfg := config.Load()

	var (
		dataPath    string
		home        string
		exportMode  string
		format      string
		outDir      string
		width       int
		height      int
		projection  string
		graticule   bool
		showVersion bool
	)

	flag.StringVar(&dataPath, "data", cfg.DataPath, "Country-boundary GeoJSON file")
	flag.StringVar(&home, "home", cfg.Home, "Home country name")
	flag.StringVar(&exportMode, "export", "", "Headless export: atlas (one PDF) or frames (one file per projection)")
	flag.StringVar(&format, "format", "png", "Frame export format: png, svg, pdf")
	flag.StringVar(&outDir, "out", "out", "Export output directory")
	flag.IntVar(&width, "width", cfg.Width, "Export raster width in pixels")
	flag.IntVar(&height, "height", cfg.Height, "Export raster height in pixels")
	flag.StringVar(&projection, "projection", atlas.DefaultProjectionID, "Projection id for the export view state")
	flag.BoolVar(&graticule, "graticule", true, "Draw the graticule on exported frames")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: goatlas [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Terminal world-atlas projection explorer.\n")
		fmt.Fprintf(os.Stderr, "Runs interactively by default; -export renders headlessly.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("goatlas %s (commit %s, built %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	cfg.DataPath = dataPath
	cfg.Home = home
	cfg.Width = width
	cfg.Height = height

	if exportMode != "" {
		logger.Setup(os.Stderr)
		if err := runExport(cfg, exportMode, format, outDir, projection, graticule); err != nil {
			slog.Error("export failed", "mode", exportMode, "err", err)
			os.Exit(1)
		}
		return
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	logSink := io.Writer(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			defer f.Close()
			logSink = f
		}
	}
	logger.Setup(logSink)

	p := tea.NewProgram(tui.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "goatlas:", err)
		os.Exit(1)
	}
}

func runExport(cfg config.Config, mode, format, outDir, projection string, graticule bool) error {
	w, err := world.Load(cfg.DataPath)
	if err != nil {
		return err
	}

	view := atlas.DefaultView()
	if _, err := view.SelectProjection(projection); err != nil {
		return err
	}
	view.Graticule = graticule

	opts := export.Options{
		View:   &view,
		Home:   cfg.Home,
		W:      cfg.Width,
		H:      cfg.Height,
		Out:    outDir,
		Format: format,
		Theme:  render.DefaultTheme(),
	}

	switch mode {
	case "atlas":
		return export.Atlas(atlas.All(), w, opts)
	case "frames":
		return export.Frames(atlas.All(), w, opts)
	default:
		return fmt.Errorf("unknown export mode %q (want atlas or frames)", mode)
	}
}
