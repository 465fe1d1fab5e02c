package highjump

import (
	"math"

	"github.com/vovakirdan/highjump/internal/games/highjump/sim"
)

// Autopilot tuning, in world units and ticks.
const (
	steerDeadZone = 12.0
	fireEvery     = 20
)

// Autopilot is the scripted input policy used by headless runs. It steers
// under the nearest solid platform above the player's feet and shoots at
// monsters overhead. It restarts once the game-over panel has settled.
type Autopilot struct {
	ticks int
}

// Next chooses the input for the coming tick.
func (a *Autopilot) Next(s *sim.State) sim.Input {
	a.ticks++

	if s.GameOver() {
		return sim.Input{Restart: s.RevealProgress() >= 1}
	}

	p := s.Player()
	var in sim.Input
	if target, ok := nextPlatform(p, s.Platforms()); ok {
		dx := (target.X + target.W/2) - p.CenterX()
		in.Left = dx < -steerDeadZone
		in.Right = dx > steerDeadZone
	}

	// A one-tick press fires exactly one bullet.
	if a.ticks%fireEvery == 0 && monsterOverhead(p, s.Monsters()) {
		in.Fire = true
	}
	return in
}

// nextPlatform returns the lowest platform the player can bounce on whose
// top is above the player's feet.
func nextPlatform(p sim.Player, platforms []sim.Platform) (sim.Platform, bool) {
	best, found := sim.Platform{}, false
	bestY := math.Inf(-1)
	for _, pl := range platforms {
		if pl.Kind == sim.KindBreaking || !pl.Solid() || pl.Y >= p.Bottom() {
			continue
		}
		if pl.Y > bestY {
			best, bestY, found = pl, pl.Y, true
		}
	}
	return best, found
}

func monsterOverhead(p sim.Player, monsters []sim.Monster) bool {
	cx := p.CenterX()
	for _, m := range monsters {
		if m.Y+m.H <= p.Y && cx >= m.X && cx <= m.X+m.W {
			return true
		}
	}
	return false
}
