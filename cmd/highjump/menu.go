package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/highjump/internal/games/highjump"
	"github.com/vovakirdan/highjump/internal/platform/tui"
	"github.com/vovakirdan/highjump/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode with the demo playing alongside.

After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	env := gameEnv(store, logger)
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(env, cfg, highjump.AttractGameID)
		if err != nil {
			logger.Error("menu failed", "err", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "err", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.GameID == "" {
			return
		}

		game, err := registry.Create(menuResult.GameID, env)
		if err != nil {
			logger.Error("create game failed", "game", menuResult.GameID, "err", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, cfg); err != nil {
			logger.Error("game failed", "err", err)
		}
	}
}
