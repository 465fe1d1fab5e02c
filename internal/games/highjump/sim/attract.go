package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/highjump/internal/config"
)

// Attract-mode layout. The demo plays in a narrow strip at the left of the
// title screen.
const (
	attractStrip         = 250.0
	attractPlayerX       = 100.0
	attractCount         = 10
	attractSpacing       = 100.0
	attractSpringChance  = 0.3
	attractItemChance    = 0.1
	attractMonsterSize   = 80.0
	attractMonsterSpeed  = 2.0
	attractSlabTolerance = 10.0
	attractCullMargin    = 50.0
	attractRespawnY      = -100.0
)

// Attract is the self-playing title-screen demo. The player bounces on
// every platform it lands on, there is no score, and the run never ends.
type Attract struct {
	cfg config.HighJumpConfig
	rng *rand.Rand

	player    Player
	platforms []Platform
	monster   Monster
	item      Item
	hasItem   bool
	steps     int
}

// NewAttract creates a demo seeded with seed.
func NewAttract(cfg config.HighJumpConfig, seed int64) *Attract {
	a := &Attract{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	a.Reset()
	return a
}

// Reset rebuilds the demo scene.
func (a *Attract) Reset() {
	h := a.cfg.World.Height
	pc := a.cfg.Platforms

	a.player = Player{
		X: attractPlayerX,
		Y: h - a.cfg.Player.StartOffsetY,
		W: a.cfg.Player.Width,
		H: a.cfg.Player.Height,
	}
	a.steps = 0
	a.platforms = a.platforms[:0]
	a.platforms = append(a.platforms, a.platform(50, h-pc.StartOffsetY, KindNormal, false))

	// The slot right above the start platform stays empty.
	for i := 2; i < attractCount; i++ {
		a.platforms = append(a.platforms, a.randomPlatform(h-200-float64(i)*attractSpacing))
	}

	a.monster = a.newMonster(a.rng.Float64()*200+50, h-500)

	itemX := a.rng.Float64()*200 + 25
	itemY := h - 650
	a.platforms = append(a.platforms, a.platform(itemX, itemY, KindNormal, false))
	a.placeItem(itemX, itemY)
}

// Step advances the demo by one tick.
func (a *Attract) Step() {
	a.steps++
	h := a.cfg.World.Height
	phys := a.cfg.Physics

	a.player.VY += phys.Gravity
	a.player.Y += a.player.VY

	if a.player.VY > 0 {
		box := a.player.Box()
		for _, p := range a.platforms {
			feet := box.Bottom()
			if !box.OverlapsX(p.Box()) || feet <= p.Y || feet >= p.Y+p.H+attractSlabTolerance {
				continue
			}
			if p.HasSpring {
				a.player.VY = phys.SpringJumpPower
			} else {
				a.player.VY = phys.JumpPower
			}
			a.player.Jumping = true
		}
	}

	for i := range a.platforms {
		p := &a.platforms[i]
		if p.Kind != KindMoving {
			continue
		}
		p.X += p.MoveSpeed * p.MoveDir
		if p.X <= 0 {
			p.X = 0
			p.MoveDir = 1
		} else if p.X >= attractStrip-p.W {
			p.X = attractStrip - p.W
			p.MoveDir = -1
		}
	}

	m := &a.monster
	m.X += m.VX
	if m.X <= 0 {
		m.X = 0
		m.VX = attractMonsterSpeed
	} else if m.X >= attractStrip-m.W {
		m.X = attractStrip - m.W
		m.VX = -attractMonsterSpeed
	}

	if mid := h / 2; a.player.Y < mid {
		shift := mid - a.player.Y
		a.player.Y = mid
		for i := range a.platforms {
			a.platforms[i].Y += shift
		}
		a.monster.Y += shift
		if a.hasItem {
			a.item.Y += shift
		}
	}

	live := a.platforms[:0]
	for _, p := range a.platforms {
		if p.Y < h+attractCullMargin {
			live = append(live, p)
		}
	}
	a.platforms = live

	for len(a.platforms) < attractCount {
		y := a.cfg.World.Height - a.cfg.Platforms.StartOffsetY
		if top := a.topmost(); top >= 0 {
			y = a.platforms[top].Y - attractSpacing
		}
		p := a.randomPlatform(y)
		wantItem := a.rng.Float64() < attractItemChance
		a.platforms = append(a.platforms, p)
		if wantItem && !a.hasItem {
			a.placeItem(p.X, p.Y)
		}
	}

	if a.monster.Y > h {
		a.monster = a.newMonster(a.rng.Float64()*200+50, attractRespawnY)
	}
	if a.hasItem && a.item.Y > h {
		a.hasItem = false
	}
	if a.player.Y > h {
		a.player.Y = h - a.cfg.Player.StartOffsetY
		a.player.VY = 0
	}
}

func (a *Attract) topmost() int {
	idx := -1
	for i := range a.platforms {
		if idx < 0 || a.platforms[i].Y < a.platforms[idx].Y {
			idx = i
		}
	}
	return idx
}

func (a *Attract) platform(x, y float64, kind PlatformKind, spring bool) Platform {
	pc := a.cfg.Platforms
	p := Platform{X: x, Y: y, W: pc.Width, H: pc.Height, Kind: kind}
	if kind == KindMoving {
		p.X = math.Min(p.X, attractStrip-p.W)
		p.MoveDir = 1
		p.MoveSpeed = pc.MoveSpeed
	}
	if spring {
		p.HasSpring = true
		p.SpringX = a.rng.Float64() * (pc.Width - pc.SpringWidth)
	}
	return p
}

// randomPlatform picks any of the four kinds with equal odds. Only plain
// platforms may carry a spring.
func (a *Attract) randomPlatform(y float64) Platform {
	kind := PlatformKind(a.rng.Intn(4))
	spring := kind == KindNormal && a.rng.Float64() < attractSpringChance
	x := a.rng.Float64() * attractStrip
	return a.platform(x, y, kind, spring)
}

func (a *Attract) newMonster(x, y float64) Monster {
	return Monster{
		X:    math.Min(x, attractStrip-attractMonsterSize),
		Y:    y,
		W:    attractMonsterSize,
		H:    attractMonsterSize,
		Move: MoveHorizontal,
		VX:   attractMonsterSpeed,
	}
}

// placeItem centres a balloon on top of the platform at (x, y).
func (a *Attract) placeItem(x, y float64) {
	ic := a.cfg.Items
	a.item = Item{
		X:    x + a.cfg.Platforms.Width/2 - ic.Width/2,
		Y:    y - ic.Height,
		W:    ic.Width,
		H:    ic.Height,
		Kind: ItemBalloon,
	}
	a.hasItem = true
}

// Player returns a copy of the demo player.
func (a *Attract) Player() Player { return a.player }

// Platforms returns the live platforms. Callers must not modify them.
func (a *Attract) Platforms() []Platform { return a.platforms }

// Monster returns the patrolling monster.
func (a *Attract) Monster() Monster { return a.monster }

// Item returns the floating balloon, if one is on screen.
func (a *Attract) Item() (Item, bool) { return a.item, a.hasItem }

// Width returns the width of the strip the demo plays in.
func (a *Attract) Width() float64 { return attractStrip }

// Steps returns the number of ticks since the last reset.
func (a *Attract) Steps() int { return a.steps }

// View returns a snapshot in the same shape as a game run.
func (a *Attract) View() View {
	v := View{
		Player:    a.player,
		Platforms: append([]Platform(nil), a.platforms...),
		Monsters:  []Monster{a.monster},
		Steps:     a.steps,
	}
	if a.hasItem {
		v.Items = []Item{a.item}
	}
	return v
}
