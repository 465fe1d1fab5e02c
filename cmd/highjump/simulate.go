package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/highjump/internal/core"
	"github.com/vovakirdan/highjump/internal/games/highjump"
	"github.com/vovakirdan/highjump/internal/games/highjump/sim"
)

var (
	flagSimSteps int
	flagSimDump  bool
	flagSimSave  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless scripted game",
	Long: `Run the simulation without a screen, driven by a scripted autopilot.
Time comes from a manual clock advanced one tick per step, so the same
seed and flags always give the same result. After a game over the
autopilot restarts once the results panel has settled.

Prints a YAML summary; --dump adds the final world snapshot.

Examples:
  highjump simulate --steps 10000 --seed 7
  highjump simulate --difficulty hard --dump`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimSteps, "steps", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagSimDump, "dump", false, "Also print the final world snapshot")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record finished runs in the scores database")
}

type simRun struct {
	Score float64 `yaml:"score"`
	Steps int     `yaml:"steps"`
}

type simSummary struct {
	Seed       int64    `yaml:"seed"`
	Difficulty string   `yaml:"difficulty"`
	Steps      int      `yaml:"steps"`
	Finished   []simRun `yaml:"finished_runs"`
	Score      float64  `yaml:"score"`
	HighScore  float64  `yaml:"high_score"`
	Tier       int      `yaml:"tier"`
	GameOver   bool     `yaml:"game_over"`
	Platforms  int      `yaml:"platforms"`
	Monsters   int      `yaml:"monsters"`
}

type simOutput struct {
	Summary simSummary `yaml:"summary"`
	View    *sim.View  `yaml:"view,omitempty"`
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	clock := core.NewManualClock()
	env := gameEnv(nil, logger)
	env.Clock = clock
	if flagSimSave {
		if env.Store = openStore(logger); env.Store != nil {
			defer env.Store.Close()
		}
	}

	game, err := highjump.New(env)
	if err != nil {
		fatal("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.DefaultConfig()
	rc.Seed = seed
	rc.TickRate = flagFPS
	game.Reset(rc)

	tick := time.Second / time.Duration(max(flagFPS, 1))
	var pilot highjump.Autopilot
	var finished []simRun
	for range flagSimSteps {
		st := game.Sim()
		wasOver := st.GameOver()
		res := game.StepInput(pilot.Next(st), false)
		if res.State.GameOver && !wasOver {
			finished = append(finished, simRun{Score: st.Score(), Steps: st.Steps()})
		}
		clock.Advance(tick)
	}
	if err := game.Close(); err != nil {
		logger.Warn("store high score", "err", err)
	}

	st := game.Sim()
	out := simOutput{Summary: simSummary{
		Seed:       seed,
		Difficulty: game.Run().Difficulty,
		Steps:      flagSimSteps,
		Finished:   finished,
		Score:      st.Score(),
		HighScore:  st.HighScore(),
		Tier:       st.TierIndex() + 1,
		GameOver:   st.GameOver(),
		Platforms:  len(st.Platforms()),
		Monsters:   len(st.Monsters()),
	}}
	if flagSimDump {
		v := st.View()
		out.View = &v
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		fatal("encode summary: %v", err)
	}
	if err := enc.Close(); err != nil {
		fatal("encode summary: %v", err)
	}
}
