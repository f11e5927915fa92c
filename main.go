package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-backdrop/internal/ack"
	"github.com/iburimskiy/particle-backdrop/internal/audio"
	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/game"
	"github.com/iburimskiy/particle-backdrop/internal/page"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	slog.Info("config loaded",
		"width", cfg.WindowWidth,
		"height", cfg.WindowHeight,
		"particles", cfg.ParticleCount,
		"tps", cfg.TPS,
		"sound", cfg.Sound,
	)

	var notifier page.Notifier = ack.Dialog{Title: cfg.Title}
	if cfg.Sound {
		notifier = ack.Chain(ack.NewChime(audio.Speaker{}), notifier)
	}

	g, err := game.New(cfg, notifier, slog.Default())
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	slog.Info("shutdown complete")
	return nil
}
