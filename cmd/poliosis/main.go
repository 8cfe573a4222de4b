package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/poliosis/engine/core"
	glbackend "github.com/hubastard/poliosis/engine/gfx/gl"
	"github.com/hubastard/poliosis/engine/logging"
	"github.com/hubastard/poliosis/engine/platform"
	"github.com/hubastard/poliosis/engine/profiler"
	"github.com/hubastard/poliosis/engine/settings"
	"github.com/hubastard/poliosis/engine/text"
	"github.com/hubastard/poliosis/game/city"
)

func main() {
	configPath := flag.String("config", "poliosis.yaml", "engine config (YAML)")
	settingsPath := flag.String("settings", "settings.yaml", "game settings (YAML)")
	flag.Parse()

	if err := run(*configPath, *settingsPath); err != nil {
		fmt.Fprintln(os.Stderr, "poliosis:", err)
		os.Exit(1)
	}
}

func run(configPath, settingsPath string) error {
	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		return err
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})))
	profiler.Init(1 << 16) // ~64K scope samples

	store, err := settings.LoadOrCreate(settingsPath, city.DefaultSettings())
	if err != nil {
		return err
	}

	win, err := platform.NewGLFWWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	atlas, err := text.Default(cfg.FontSize)
	if err != nil {
		return err
	}
	defer atlas.Close()

	w, h := win.FramebufferSize()
	sink, err := glbackend.NewSink(win, atlas, cfg.ClearColor, w, h)
	if err != nil {
		return err
	}
	defer sink.Destroy()

	var layers core.LayerStack
	layers.Push(city.NewLayer(store))
	layers.Push(newDebugLayer())

	return core.Run(cfg, win, sink, &layers)
}
