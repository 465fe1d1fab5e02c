// highjump is an endless vertical platform jumper for the terminal, a
// desktop window, or SSH.
//
// Usage:
//
//	highjump play            - Play in the terminal
//	highjump window          - Play in a desktop window
//	highjump menu            - Title menu with a live demo
//	highjump attract         - Watch the self-playing demo
//	highjump simulate        - Headless scripted run, YAML summary
//	highjump scores          - Show best runs and stats
//	highjump serve           - Start SSH server for remote play
//	highjump list            - List registered game modes
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/highjump/internal/core"
	_ "github.com/vovakirdan/highjump/internal/games/highjump" // registers the game modes
	"github.com/vovakirdan/highjump/internal/registry"
	"github.com/vovakirdan/highjump/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "highjump",
	Short: "High Jump - bounce up an endless stack of platforms",
	Long: `High Jump is an endless vertical platform jumper. Steer left and right,
bounce off platforms, grab balloons and jetpacks, and shoot the monsters
before they stun you.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  menu      - Title menu with a live demo
  attract   - Watch the self-playing demo
  simulate  - Headless scripted run
  scores    - View best runs
  serve     - Start SSH server for remote play
  list      - Show registered game modes

Examples:
  highjump play
  highjump play --difficulty hard
  highjump window --seed 42
  highjump simulate --steps 5000 --seed 7
  highjump serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(attractCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the command logger. Full-screen commands log nowhere
// unless --log-file is set, so output does not tear the alt screen.
func newLogger(fullScreen bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case fullScreen:
		w = io.Discard
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "highjump",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the scores database. Failures are logged and the game
// runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func gameEnv(store *storage.Store, logger *log.Logger) registry.Env {
	return registry.Env{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Store:      store,
		Logger:     logger,
	}
}

// runtimeConfig sizes the screen from the terminal and picks the seed.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
