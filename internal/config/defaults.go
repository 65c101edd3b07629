package config

const (
	defaultCanvasSize  = 256
	defaultThin        = 2.0
	defaultThick       = 6.0
	defaultExportScale = 4
)

// defaults returns the built-in configuration. Every key that files or env
// vars may override must appear here.
func defaults() map[string]any {
	return map[string]any{
		"window.title": "Drawsome",

		"canvas.width":      defaultCanvasSize,
		"canvas.height":     defaultCanvasSize,
		"canvas.background": "white",

		"tools.thin":          defaultThin,
		"tools.thick":         defaultThick,
		"tools.glyph_scale":   5.0,
		"tools.marker_symbol": "o",
		"tools.default_color": "black",
		"tools.stickers":      []string{"🥴", "🗿", "🇨🇳"},
		"tools.colors":        []string{"black", "red", "green", "blue"},

		"export.scale":     defaultExportScale,
		"export.file_name": "drawsome.png",

		"render.font_path": "",

		"log.level":  "info",
		"log.format": "text",
	}
}
