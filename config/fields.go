package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is one user-editable setting as shown in the settings panel.
type Field struct {
	Key   string
	Label string
	Value string
}

// Fields lists the editable settings in display order.
func (c *Config) Fields() []Field {
	s := c.InitialSelection
	return []Field{
		{"border_width", "Border Width (px)", strconv.Itoa(c.BorderWidth)},
		{"corner_tolerance", "Corner Tolerance (px)", strconv.Itoa(c.CornerTolerance)},
		{"border_color", "Border Colour (#rrggbb)", c.BorderColor},
		{"initial_selection", "Initial Selection (l,t,w,h)", fmt.Sprintf("%d,%d,%d,%d", s.Left, s.Top, s.Width, s.Height)},
		{"frame_interval_ms", "Frame Interval (ms)", strconv.Itoa(c.FrameIntervalMS)},
		{"source", "Source (screen/jpeg/gdi)", c.Source},
		{"jpeg_path", "JPEG Path", c.JPEGPath},
		{"debug", "Debug (true/false)", strconv.FormatBool(c.Debug)},
	}
}

// Set parses value into the setting named key. Unknown keys and malformed
// values are errors; the config is left unchanged on error.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "border_width":
		return setInt(&c.BorderWidth, key, value)
	case "corner_tolerance":
		return setInt(&c.CornerTolerance, key, value)
	case "frame_interval_ms":
		return setInt(&c.FrameIntervalMS, key, value)
	case "fps_log_interval_ms":
		return setInt(&c.FPSLogIntervalMS, key, value)
	case "preview_width":
		return setInt(&c.PreviewWidth, key, value)
	case "preview_height":
		return setInt(&c.PreviewHeight, key, value)
	case "border_color":
		if !strings.HasPrefix(value, "#") {
			return fmt.Errorf("%s: colour must start with '#', got %q", key, value)
		}
		c.BorderColor = value
	case "initial_selection":
		r, err := parseRect(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.InitialSelection = r
	case "source":
		c.Source = value
	case "jpeg_path":
		c.JPEGPath = value
	case "debug":
		b, ok := parseBoolLoose(value)
		if !ok {
			return fmt.Errorf("%s: not a boolean: %q", key, value)
		}
		c.Debug = b
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func setInt(dst *int, key, value string) error {
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = i
	return nil
}

func parseRect(s string) (Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Rect{}, fmt.Errorf("want left,top,width,height, got %q", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Rect{}, err
		}
		v[i] = n
	}
	return Rect{Left: v[0], Top: v[1], Width: v[2], Height: v[3]}, nil
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
