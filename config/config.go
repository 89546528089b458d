// Package config reads game settings from the environment, with an optional
// .env file on top.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads an optional .env file into the environment. A missing file is
// not an error.
func Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// Game holds the settings the bootstrap needs. Everything has a default; the
// game runs with no environment at all.
type Game struct {
	WindowW    int
	WindowH    int
	Difficulty string
	LogLevel   slog.Level
}

// FromEnv builds a Game config from OPDROP_* variables, falling back to
// defaults for anything unset or unparsable.
func FromEnv() Game {
	g := Game{
		WindowW:    800,
		WindowH:    600,
		Difficulty: "easy",
		LogLevel:   slog.LevelInfo,
	}
	if n, ok := intEnv("OPDROP_WINDOW_WIDTH"); ok {
		g.WindowW = n
	}
	if n, ok := intEnv("OPDROP_WINDOW_HEIGHT"); ok {
		g.WindowH = n
	}
	if v := os.Getenv("OPDROP_DIFFICULTY"); v != "" {
		g.Difficulty = v
	}
	if v := os.Getenv("OPDROP_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			g.LogLevel = lvl
		}
	}
	return g
}

func intEnv(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
