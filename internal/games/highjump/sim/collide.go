package sim

import (
	"time"

	"github.com/vovakirdan/highjump/internal/core"
)

// landsOn is the platform hit test: horizontal overlap with the feet
// strictly inside the slab.
func landsOn(player, slab core.Box) bool {
	feet := player.Bottom()
	return player.OverlapsX(slab) && feet > slab.Y && feet < slab.Bottom()
}

// collidePlatforms bounces a descending player off every solid platform it
// lands on. Every hit is processed, so when two platforms overlap the last
// one in store order decides the launch speed.
func (s *State) collidePlatforms() Events {
	if s.player.VY <= 0 {
		return 0
	}
	var ev Events
	pc := s.cfg.Platforms
	phys := s.cfg.Physics
	box := s.player.Box()

	for i := range s.platforms {
		p := &s.platforms[i]
		if !p.Solid() || !landsOn(box, p.Box()) {
			continue
		}

		if p.Kind == KindBreaking {
			p.Breaking = true
			ev |= EventBreak
			continue
		}

		if p.HasSpring && box.OverlapsX(p.SpringBox(pc.SpringWidth, pc.SpringHeight)) {
			s.player.VY = phys.SpringJumpPower
			ev |= EventSpring
		} else {
			s.player.VY = phys.JumpPower
		}
		s.player.Jumping = true
		ev |= EventJump

		if p.Kind == KindDisappearing {
			p.Touched = true
			ev |= EventVanish
		}
	}
	return ev
}

// grant applies an item's effect. A stunned player uses the item up
// without gaining its lift.
func (s *State) grant(kind ItemKind, now time.Duration) {
	if s.player.Active(StatusStunned) {
		return
	}
	s.player.Acquire(statusFor(kind), now)
}

// collectItems picks up free-floating items the player touches.
func (s *State) collectItems(now time.Duration) Events {
	var ev Events
	box := s.player.Box()
	live := s.items[:0]
	for _, it := range s.items {
		if box.Intersects(it.Box()) {
			s.grant(it.Kind, now)
			ev |= EventPickup
			continue
		}
		live = append(live, it)
	}
	s.items = live
	return ev
}

// collectCarried picks up items resting on platforms. The item stays on the
// platform, marked collected.
func (s *State) collectCarried(now time.Duration) Events {
	var ev Events
	ic := s.cfg.Items
	box := s.player.Box()
	for i := range s.platforms {
		p := &s.platforms[i]
		if !p.CarriesItem() {
			continue
		}
		if box.Intersects(p.ItemBox(ic.Width, ic.Height)) {
			s.grant(p.ItemKind, now)
			p.ItemCollected = true
			ev |= EventPickup
		}
	}
	return ev
}

// collideMonsters stuns the player on contact. A stunned player is immune.
func (s *State) collideMonsters(now time.Duration) Events {
	if s.player.Active(StatusStunned) {
		return 0
	}
	var ev Events
	box := s.player.Box()
	for _, m := range s.monsters {
		if box.Intersects(m.Box()) {
			s.player.Acquire(StatusStunned, now)
			ev |= EventStunned
		}
	}
	return ev
}
