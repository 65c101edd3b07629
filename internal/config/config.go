// Package config loads the sketchpad configuration. Values are layered:
// built-in defaults, then configs/base.yaml, then configs/{profile}.yaml,
// then DRAWSOME_ environment variables.
package config

import "Drawsome/internal/state"

// Config holds all configuration for the sketchpad.
type Config struct {
	Window WindowConfig `koanf:"window"`
	Canvas CanvasConfig `koanf:"canvas"`
	Tools  ToolsConfig  `koanf:"tools"`
	Export ExportConfig `koanf:"export"`
	Render RenderConfig `koanf:"render"`
	Log    LogConfig    `koanf:"log"`
}

// WindowConfig holds the application window settings.
type WindowConfig struct {
	Title string `koanf:"title"`
}

// CanvasConfig holds the drawing region size and background color name.
type CanvasConfig struct {
	Width      int    `koanf:"width"`
	Height     int    `koanf:"height"`
	Background string `koanf:"background"`
}

// ToolsConfig holds the toolbar presets.
type ToolsConfig struct {
	Thin         float64  `koanf:"thin"`
	Thick        float64  `koanf:"thick"`
	GlyphScale   float64  `koanf:"glyph_scale"`
	MarkerSymbol string   `koanf:"marker_symbol"`
	DefaultColor string   `koanf:"default_color"`
	Stickers     []string `koanf:"stickers"`
	Colors       []string `koanf:"colors"`
}

// ExportConfig holds export settings.
type ExportConfig struct {
	Scale    int    `koanf:"scale"`
	FileName string `koanf:"file_name"`
}

// RenderConfig holds rendering settings. An empty FontPath uses the
// built-in Go font.
type RenderConfig struct {
	FontPath string `koanf:"font_path"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// InitialTools is the tool state at start-up: the thin marker in the
// default color.
func (t ToolsConfig) InitialTools() state.Tools {
	return state.Tools{
		Thickness:  t.Thin,
		Color:      t.DefaultColor,
		Symbol:     t.MarkerSymbol,
		GlyphScale: t.GlyphScale,
	}
}
