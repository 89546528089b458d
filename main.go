package main

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"opdrop/config"
	"opdrop/game"
	"opdrop/ui"
)

func main() {
	if err := config.Load(".env"); err != nil {
		slog.Warn("env file", "err", err)
	}
	cfg := config.FromEnv()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := game.NewSession(r, game.ParseDifficulty(cfg.Difficulty))
	app := ui.New(session, cfg.WindowW, cfg.WindowH, logger)

	logger.Info("starting", "difficulty", session.Difficulty().String(),
		"window_w", cfg.WindowW, "window_h", cfg.WindowH)

	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowTitle("Operator Drop")
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}
