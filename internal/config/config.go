// Package config resolves runtime settings from a .env file and the process
// environment. Flags parsed in main override whatever is resolved here.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the settings shared by the TUI and the export modes.
type Config struct {
	// DataPath points at the country-boundary GeoJSON file.
	DataPath string
	// Home is the designated home country, rendered with the accent fill
	// and used as the close-up target.
	Home string
	// LogFile receives log output while the TUI owns the terminal.
	LogFile string

	// Export raster dimensions in pixels.
	Width  int
	Height int
}

// Defaults lifted into vars so tests can reference them.
var (
	DefaultDataPath = "data/countries.geojson"
	DefaultHome     = "Taiwan"
	DefaultWidth    = 960
	DefaultHeight   = 600
)

// Load reads .env (when present) and resolves the configuration. A missing
// .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DataPath: envStr("GOATLAS_DATA", DefaultDataPath),
		Home:     envStr("GOATLAS_HOME_COUNTRY", DefaultHome),
		LogFile:  envStr("GOATLAS_LOG", ""),
		Width:    envInt("GOATLAS_WIDTH", DefaultWidth),
		Height:   envInt("GOATLAS_HEIGHT", DefaultHeight),
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
