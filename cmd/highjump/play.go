package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/highjump/internal/games/highjump"
	"github.com/vovakirdan/highjump/internal/platform/tui"
	"github.com/vovakirdan/highjump/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The mode defaults to highjump.

Controls:
  Left/Right, A/D  - Steer
  Space/Up         - Shoot
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Difficulty follows your score, fewer monsters
  normal - Difficulty follows your score
  hard   - Starts 2000 points up the difficulty curve
  fixed  - No progression, the first tier forever

Examples:
  highjump play
  highjump play --difficulty easy
  highjump play --config ./my-highjump.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := highjump.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fatal("unknown mode %q (run 'highjump list')", gameID)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(gameID, gameEnv(store, logger))
	if err != nil {
		fatal("%v", err)
	}

	if err := tui.Run(game, runtimeConfig()); err != nil {
		logger.Error("terminal session failed", "err", err)
		fatal("%v", err)
	}
}
