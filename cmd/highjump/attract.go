package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/highjump/internal/games/highjump"
	"github.com/vovakirdan/highjump/internal/platform/tui"
	"github.com/vovakirdan/highjump/internal/registry"
)

var attractCmd = &cobra.Command{
	Use:   "attract",
	Short: "Watch the self-playing demo",
	Long: `Run the title-screen demo full screen. It never ends; press Q to quit
and P to pause.`,
	Args: cobra.NoArgs,
	Run:  runAttract,
}

func runAttract(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	demo, err := registry.Create(highjump.AttractGameID, gameEnv(nil, logger))
	if err != nil {
		fatal("%v", err)
	}
	if err := tui.Run(demo, runtimeConfig()); err != nil {
		fatal("%v", err)
	}
}
