package config

import (
	"errors"
	"fmt"

	"Drawsome/internal/state"
)

const (
	maxCanvasSize  = 4096
	maxExportScale = 16
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	palette := state.DefaultPalette()
	return errors.Join(
		c.Canvas.validate(palette),
		c.Tools.validate(palette),
		c.Export.validate(),
		c.Log.validate(),
	)
}

func (c *CanvasConfig) validate(palette state.Palette) error {
	var errs []error

	if c.Width < 1 || c.Width > maxCanvasSize {
		errs = append(errs, fmt.Errorf("canvas.width must be between 1 and %d, got %d", maxCanvasSize, c.Width))
	}
	if c.Height < 1 || c.Height > maxCanvasSize {
		errs = append(errs, fmt.Errorf("canvas.height must be between 1 and %d, got %d", maxCanvasSize, c.Height))
	}
	if !palette.Has(c.Background) {
		errs = append(errs, fmt.Errorf("canvas.background %q is not a known color", c.Background))
	}

	return errors.Join(errs...)
}

func (t *ToolsConfig) validate(palette state.Palette) error {
	var errs []error

	if t.Thin <= 0 {
		errs = append(errs, errors.New("tools.thin must be positive"))
	}
	if t.Thick <= 0 {
		errs = append(errs, errors.New("tools.thick must be positive"))
	}
	if t.GlyphScale <= 0 {
		errs = append(errs, errors.New("tools.glyph_scale must be positive"))
	}
	if t.MarkerSymbol == "" {
		errs = append(errs, errors.New("tools.marker_symbol must not be empty"))
	}
	if !palette.Has(t.DefaultColor) {
		errs = append(errs, fmt.Errorf("tools.default_color %q is not a known color", t.DefaultColor))
	}
	for _, name := range t.Colors {
		if !palette.Has(name) {
			errs = append(errs, fmt.Errorf("tools.colors: %q is not a known color", name))
		}
	}

	return errors.Join(errs...)
}

func (e *ExportConfig) validate() error {
	var errs []error

	if e.Scale < 1 || e.Scale > maxExportScale {
		errs = append(errs, fmt.Errorf("export.scale must be between 1 and %d, got %d", maxExportScale, e.Scale))
	}
	if e.FileName == "" {
		errs = append(errs, errors.New("export.file_name must not be empty"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}
