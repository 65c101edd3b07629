// Package main is the entry point for the sketchpad. It loads config,
// wires the drawing stack with samber/do v2 and opens the window.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/do/v2"

	"Drawsome/internal/config"
	"Drawsome/internal/control"
	"Drawsome/internal/export"
	"Drawsome/internal/logging"
	"Drawsome/internal/render"
	"Drawsome/internal/state"
	"Drawsome/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("DRAWSOME_PROFILE"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)

	registerDependencies(injector, cfg, logger)

	deps, err := do.Invoke[ui.Deps](injector)
	if err != nil {
		return fmt.Errorf("resolving ui: %w", err)
	}

	logger.Info("starting sketchpad",
		slog.Int("width", cfg.Canvas.Width),
		slog.Int("height", cfg.Canvas.Height),
	)
	ui.RunApp(deps)
	return nil
}

// overlayName names the canvas holding the live stamp.
const overlayName = "overlay"

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.ProvideValue(injector, state.DefaultPalette())

	do.Provide(injector, func(do.Injector) (*render.FaceCache, error) {
		return render.LoadFaceCache(cfg.Render.FontPath)
	})

	do.Provide(injector, func(i do.Injector) (*render.Renderer, error) {
		palette := do.MustInvoke[state.Palette](i)
		return render.New(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Background, palette), nil
	})

	do.Provide(injector, func(i do.Injector) (*render.Canvas, error) {
		faces := do.MustInvoke[*render.FaceCache](i)
		return render.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height, faces), nil
	})

	do.ProvideNamed(injector, overlayName, func(i do.Injector) (*render.Canvas, error) {
		faces := do.MustInvoke[*render.FaceCache](i)
		return render.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height, faces), nil
	})

	do.Provide(injector, func(do.Injector) (*state.Document, error) {
		return state.NewDocument(), nil
	})

	do.Provide(injector, func(i do.Injector) (*control.Controller, error) {
		return control.New(
			do.MustInvoke[*state.Document](i),
			do.MustInvoke[*render.Renderer](i),
			do.MustInvoke[*render.Canvas](i),
			do.MustInvokeNamed[*render.Canvas](i, overlayName),
			cfg.Tools.InitialTools(),
			logger.With(slog.String("component", "controller")),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*export.Exporter, error) {
		return export.New(
			do.MustInvoke[*render.Renderer](i),
			do.MustInvoke[*render.FaceCache](i),
			cfg.Export.Scale,
			logger.With(slog.String("component", "export")),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ui.Deps, error) {
		return ui.Deps{
			Config:     cfg,
			Controller: do.MustInvoke[*control.Controller](i),
			Canvas:     do.MustInvoke[*render.Canvas](i),
			Overlay:    do.MustInvokeNamed[*render.Canvas](i, overlayName),
			Exporter:   do.MustInvoke[*export.Exporter](i),
			Palette:    do.MustInvoke[state.Palette](i),
			Logger:     logger,
		}, nil
	})
}
