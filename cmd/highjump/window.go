package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/highjump/internal/games/highjump"
	"github.com/vovakirdan/highjump/internal/platform/window"
)

var flagWindowScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with held keys.

Controls:
  Left/Right, A/D  - Steer
  Space/Up         - Shoot
  P                - Pause
  R or click       - Restart (after game over)
  Q/Esc            - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagWindowScale, "scale", 0.8, "Window size relative to the 600x1000 world")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := highjump.New(gameEnv(store, logger))
	if err != nil {
		fatal("%v", err)
	}
	game.Reset(runtimeConfig())

	opts := window.Options{TPS: flagFPS, Scale: flagWindowScale, Logger: logger}
	runErr := window.Run(game, opts)
	if err := game.Close(); err != nil {
		logger.Warn("store high score", "err", err)
	}
	if runErr != nil {
		fatal("%v", runErr)
	}
}
