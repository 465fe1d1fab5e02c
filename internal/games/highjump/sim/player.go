package sim

import (
	"time"

	"github.com/vovakirdan/highjump/internal/config"
	"github.com/vovakirdan/highjump/internal/core"
)

// Status is the player's exclusive timed mode.
type Status int

const (
	StatusNormal Status = iota
	StatusBalloon
	StatusJetpack
	StatusStunned
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusBalloon:
		return "balloon"
	case StatusJetpack:
		return "jetpack"
	case StatusStunned:
		return "stunned"
	default:
		return "normal"
	}
}

// MarshalYAML renders the status by name.
func (s Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// statusFor maps an item to the status it grants.
func statusFor(k ItemKind) Status {
	if k == ItemJetpack {
		return StatusJetpack
	}
	return StatusBalloon
}

// Player is the single jumper of a run.
// Status is one field, so two effects can never be active together.
type Player struct {
	X            float64       `yaml:"x"`
	Y            float64       `yaml:"y"`
	VX           float64       `yaml:"vx"`
	VY           float64       `yaml:"vy"`
	W            float64       `yaml:"w"`
	H            float64       `yaml:"h"`
	Jumping      bool          `yaml:"jumping"`
	Status       Status        `yaml:"status"`
	StatusStart  time.Duration `yaml:"status_start"`
	StarRotation float64       `yaml:"star_rotation"`
}

// Box returns the player hitbox.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Bottom returns the y of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.H
}

// CenterX returns the horizontal middle of the player.
func (p Player) CenterX() float64 {
	return p.X + p.W/2
}

// Acquire switches to a status and starts its timer. Any previous status
// is dropped, which is how a balloon turns straight into a jetpack and how
// a stun cancels both.
func (p *Player) Acquire(s Status, now time.Duration) {
	p.Status = s
	p.StatusStart = now
}

// Active reports whether s is the current status.
func (p Player) Active(s Status) bool {
	return p.Status == s
}

// Lifted reports whether a balloon or jetpack is carrying the player.
func (p Player) Lifted() bool {
	return p.Status == StatusBalloon || p.Status == StatusJetpack
}

// Elapsed returns how long the current status has been running.
func (p Player) Elapsed(now time.Duration) time.Duration {
	return now - p.StatusStart
}

// Expired reports whether the current status has run its full duration.
// StatusNormal never expires.
func (p Player) Expired(now time.Duration, fx config.EffectConfig) bool {
	var d time.Duration
	switch p.Status {
	case StatusBalloon:
		d = fx.Balloon
	case StatusJetpack:
		d = fx.Jetpack
	case StatusStunned:
		d = fx.Stunned
	default:
		return false
	}
	return p.Elapsed(now) >= d
}

// applyStatus drives vertical speed from the active effect and drops the
// effect once its time is up.
func (p *Player) applyStatus(now time.Duration, fx config.EffectConfig) {
	if p.Status == StatusNormal {
		return
	}
	if p.Expired(now, fx) {
		p.Status = StatusNormal
		return
	}

	switch p.Status {
	case StatusStunned:
		p.VY = fx.StunnedVY
		p.VX = 0
		p.StarRotation += fx.StarSpin
	case StatusBalloon:
		progress := 0.0
		if fx.Balloon > 0 {
			progress = float64(p.Elapsed(now)) / float64(fx.Balloon)
		}
		p.VY = fx.BalloonStartVY + progress*(fx.BalloonEndVY-fx.BalloonStartVY)
	case StatusJetpack:
		p.VY = fx.JetpackVY
	}
}

// steer applies left/right acceleration or friction. Stunned players drift.
func (p *Player) steer(in Input, phys config.PhysicsConfig) {
	if p.Status == StatusStunned {
		return
	}
	switch {
	case in.Left:
		p.VX -= phys.Acceleration
		if p.VX < -phys.MoveSpeed {
			p.VX = -phys.MoveSpeed
		}
	case in.Right:
		p.VX += phys.Acceleration
		if p.VX > phys.MoveSpeed {
			p.VX = phys.MoveSpeed
		}
	default:
		p.VX *= phys.Friction
		if p.VX > -phys.StopThreshold && p.VX < phys.StopThreshold {
			p.VX = 0
		}
	}
}

// moveX integrates horizontal motion and wraps around the side edges.
func (p *Player) moveX(worldW float64) {
	p.X += p.VX
	if p.X+p.W < 0 {
		p.X = worldW
	}
	if p.X > worldW {
		p.X = -p.W
	}
}

// fall applies gravity unless an effect owns vertical speed, then integrates y.
func (p *Player) fall(gravity float64) {
	if p.Status == StatusNormal {
		p.VY += gravity
	}
	p.Y += p.VY
}
