package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/soocke/rti-acquire/domain/selection"
)

// Source names accepted by the source field.
const (
	SourceScreen = "screen"
	SourceJPEG   = "jpeg"
	SourceGDI    = "gdi" // windows only
)

// Rect is a rectangle in preview image coordinates.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Rect) normalise() Rect {
	n := selection.NewRect(r.Left, r.Top, r.Width, r.Height).Normalise()
	return Rect{Left: n.Left, Top: n.Top, Width: n.Width, Height: n.Height}
}

// Config holds runtime configuration for the preview and the selection overlay.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Selection overlay
	BorderWidth      int    `json:"border_width"`
	CornerTolerance  int    `json:"corner_tolerance"`
	InitialSelection Rect   `json:"initial_selection"`
	BorderColor      string `json:"border_color"`

	// Preview loop
	FrameIntervalMS  int    `json:"frame_interval_ms"`
	FPSLogIntervalMS int    `json:"fps_log_interval_ms"`
	PreviewWidth     int    `json:"preview_width"`
	PreviewHeight    int    `json:"preview_height"`
	Source           string `json:"source"`
	JPEGPath         string `json:"jpeg_path"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		BorderWidth:      3,
		CornerTolerance:  15,
		InitialSelection: Rect{Left: 160, Top: 106, Width: 320, Height: 213},
		BorderColor:      "#ff3030",
		FrameIntervalMS:  50,
		FPSLogIntervalMS: 1000,
		PreviewWidth:     640,
		PreviewHeight:    426,
		Source:           SourceScreen,
		JPEGPath:         "",
	}
}

// DefaultPath returns the per-user config file location. The directory is
// created if missing.
func DefaultPath() (string, error) {
	p, err := xdg.ConfigFile(filepath.Join("rtiacquire", "config.json"))
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return p, nil
}

// Validate clamps/normalizes values to safe ranges. It only errors on values
// that cannot be repaired.
func (c *Config) Validate() error {
	def := DefaultConfig()
	if c.BorderWidth <= 0 {
		c.BorderWidth = def.BorderWidth
	}
	if c.CornerTolerance <= 0 {
		c.CornerTolerance = def.CornerTolerance
	}
	if c.FrameIntervalMS <= 0 {
		c.FrameIntervalMS = def.FrameIntervalMS
	}
	if c.FPSLogIntervalMS < c.FrameIntervalMS {
		c.FPSLogIntervalMS = max(def.FPSLogIntervalMS, c.FrameIntervalMS)
	}
	if c.PreviewWidth <= 0 {
		c.PreviewWidth = def.PreviewWidth
	}
	if c.PreviewHeight <= 0 {
		c.PreviewHeight = def.PreviewHeight
	}
	c.InitialSelection = c.InitialSelection.normalise()
	if c.BorderColor == "" {
		c.BorderColor = def.BorderColor
	}
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	switch c.Source {
	case "":
		c.Source = SourceScreen
	case SourceScreen, SourceGDI:
	case SourceJPEG:
		if c.JPEGPath == "" {
			return fmt.Errorf("config: source %q needs jpeg_path", c.Source)
		}
	default:
		return fmt.Errorf("config: unknown source %q", c.Source)
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON or validation error it returns the config with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
