package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/drop-catch/internal/config"
	"github.com/vovakirdan/drop-catch/internal/core"
	"github.com/vovakirdan/drop-catch/internal/games/dropcatch"
	"github.com/vovakirdan/drop-catch/internal/platform/sound"
)

// runtimeConfig builds the runtime config from the terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger creates the event logger. Local play owns the terminal, so
// events go to the --log file or nowhere.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dropcatch",
		Level:           level,
	})
}

// setupGame applies config, difficulty, logging and sound to the game
// package. The returned func releases the log file and the audio device.
func setupGame(configPath, difficulty string) (func(), error) {
	if _, err := config.ParsePreset(difficulty); err != nil {
		return nil, err
	}
	if configPath != "" {
		if _, err := config.LoadDropCatch(configPath); err != nil {
			return nil, err
		}
	}
	dropcatch.SetConfigPath(configPath)
	dropcatch.SetDifficultyPreset(difficulty)

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		closers = append(closers, func() { f.Close() })
		dropcatch.SetLogger(newLogger(f))
	}

	if flagSound {
		player := sound.NewPlayer()
		if err := player.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			dropcatch.SetEventHook(player.HandleEvent)
			closers = append(closers, player.Close)
		}
	}

	return cleanup, nil
}
