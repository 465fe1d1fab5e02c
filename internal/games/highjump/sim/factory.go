package sim

import (
	"math/rand"

	"github.com/vovakirdan/highjump/internal/config"
)

// PlatformRequest describes where the next platform goes and what came before.
type PlatformRequest struct {
	Y        float64
	PrevX    float64 // x of the platform below; ignored unless HasPrev
	HasPrev  bool
	LastKind PlatformKind // kind of the previously generated platform
	Score    float64
}

// PlatformFactory turns a request into one fully specified platform.
// All randomness comes from the injected source.
type PlatformFactory struct {
	world      config.WorldConfig
	platforms  config.PlatformConfig
	items      config.ItemConfig
	breaking   config.BreakingConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// NewPlatformFactory creates a factory drawing from rng.
func NewPlatformFactory(cfg config.HighJumpConfig, rng *rand.Rand) *PlatformFactory {
	return &PlatformFactory{
		world:      cfg.World,
		platforms:  cfg.Platforms,
		items:      cfg.Items,
		breaking:   cfg.Breaking,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rng,
	}
}

// Create generates a platform. The caller threads the returned Kind into
// the next request's LastKind.
func (f *PlatformFactory) Create(req PlatformRequest) Platform {
	x := f.placeX(req)
	kind := f.pickKind(req)
	p := f.blank(x, req.Y, kind)

	if (kind == KindNormal || kind == KindMoving) && f.rng.Float64() < f.platforms.SpringChance {
		p.HasSpring = true
		p.SpringX = f.rng.Float64() * (p.W - f.platforms.SpringWidth)
	}

	if kind == KindNormal && !p.HasSpring && f.rng.Float64() < f.platforms.ItemChance {
		p.HasItem = true
		if f.rng.Float64() < f.platforms.BalloonShare {
			p.ItemKind = ItemBalloon
		} else {
			p.ItemKind = ItemJetpack
		}
		p.ItemX = f.rng.Float64() * (p.W - f.items.Width)
	}

	return p
}

// Start returns the plain platform the player spawns above, centred near the bottom.
func (f *PlatformFactory) Start() Platform {
	x := f.world.Width/2 - f.platforms.Width/2
	y := f.world.Height - f.platforms.StartOffsetY
	return f.blank(x, y, KindNormal)
}

// blank builds a platform with all sub-state at rest.
func (f *PlatformFactory) blank(x, y float64, kind PlatformKind) Platform {
	p := Platform{
		X:    x,
		Y:    y,
		W:    f.platforms.Width,
		H:    f.platforms.Height,
		Kind: kind,
	}
	if kind == KindMoving {
		p.MoveDir = 1
		p.MoveSpeed = f.platforms.MoveSpeed
	}
	if kind == KindBreaking {
		p.Pieces[0].VX = -f.breaking.PieceSpeed
		p.Pieces[1].VX = f.breaking.PieceSpeed
		p.Pieces[1].X = p.W / 2
	}
	return p
}

// placeX picks the horizontal position. Without a predecessor the platform
// lands in the middle 40% of the field; otherwise it is offset sideways and
// wrapped back inside the margins.
func (f *PlatformFactory) placeX(req PlatformRequest) float64 {
	w := f.world.Width
	if !req.HasPrev {
		return w*0.3 + f.rng.Float64()*w*0.4
	}

	dir := 1.0
	if f.rng.Float64() < 0.5 {
		dir = -1
	}
	dist := f.platforms.MinDistance + f.rng.Float64()*(f.platforms.MaxDistance-f.platforms.MinDistance)
	x := req.PrevX + dir*dist

	margin := f.platforms.EdgeMargin
	maxX := w - f.platforms.Width - margin
	switch {
	case x < margin:
		x = maxX - f.rng.Float64()*f.platforms.WrapJitter
	case x > maxX:
		x = margin + f.rng.Float64()*f.platforms.WrapJitter
	}
	return x
}

// pickKind makes one uniform draw against the tier's cumulative table.
func (f *PlatformFactory) pickKind(req PlatformRequest) PlatformKind {
	tier := f.difficulty.Tier(req.Score)
	weights := tier.Weights
	if req.LastKind == KindBreaking {
		weights = followBreaking(tier.AfterBreaking)
	}
	return kindFromDraw(weights, f.rng.Float64())
}

// followBreaking turns an after-breaking row into a weight table. An empty
// row falls back to Moving.
func followBreaking(w config.FollowWeights) config.KindWeights {
	if w.Kinds().Total() <= 0 {
		return config.KindWeights{Moving: 1}
	}
	return w.Kinds()
}

// kindFromDraw maps r in [0,1) onto the cumulative table
// Normal, Moving, Breaking, Disappearing. Weights are normalized first.
func kindFromDraw(w config.KindWeights, r float64) PlatformKind {
	total := w.Total()
	if total <= 0 {
		return KindNormal
	}
	r *= total

	acc := w.Normal
	if r < acc {
		return KindNormal
	}
	acc += w.Moving
	if r < acc {
		return KindMoving
	}
	acc += w.Breaking
	if r < acc {
		return KindBreaking
	}
	if w.Disappearing > 0 {
		return KindDisappearing
	}
	// Rounding at the top of the range; fall back to the last non-empty kind.
	switch {
	case w.Breaking > 0:
		return KindBreaking
	case w.Moving > 0:
		return KindMoving
	default:
		return KindNormal
	}
}
