package sim

import "math"

// spawnBullet fires one projectile from the player's head.
func (s *State) spawnBullet() {
	b := s.cfg.Bullets
	s.bullets = append(s.bullets, Bullet{
		X:  s.player.CenterX() - b.Width/2,
		Y:  s.player.Y,
		W:  b.Width,
		H:  b.Height,
		VY: b.Speed,
	})
}

// moveMonsters advances horizontal patrols and circular orbits.
func (s *State) moveMonsters() {
	w := s.cfg.World.Width
	for i := range s.monsters {
		m := &s.monsters[i]
		switch m.Move {
		case MoveHorizontal:
			m.X += m.VX
			if m.X <= 0 || m.X+m.W >= w {
				m.VX = -m.VX
			}
		case MoveCircular:
			m.Angle += m.AngleSpeed
			m.X = m.CenterX + math.Cos(m.Angle)*m.Radius - m.W/2
			m.Y = m.CenterY + math.Sin(m.Angle)*m.Radius - m.H/2
		}
	}
}

// moveBullets integrates projectiles, drops those above the screen, and
// removes each bullet together with the first monster it hits.
// Returns the number of monsters killed.
func (s *State) moveBullets() int {
	kills := 0
	live := s.bullets[:0]
	for _, b := range s.bullets {
		b.Y += b.VY
		if b.Y < -b.H {
			continue
		}
		hit := -1
		for j := len(s.monsters) - 1; j >= 0; j-- {
			if b.Box().Intersects(s.monsters[j].Box()) {
				hit = j
				break
			}
		}
		if hit >= 0 {
			s.monsters = append(s.monsters[:hit], s.monsters[hit+1:]...)
			kills++
			continue
		}
		live = append(live, b)
	}
	s.bullets = live
	return kills
}

// movePlatforms slides Moving platforms and bounces them off the side edges.
func (s *State) movePlatforms() {
	w := s.cfg.World.Width
	for i := range s.platforms {
		p := &s.platforms[i]
		if p.Kind != KindMoving {
			continue
		}
		p.X += p.MoveSpeed * p.MoveDir
		if p.X <= 0 || p.X+p.W >= w {
			p.MoveDir = -p.MoveDir
		}
	}
}

// animateBreaking ages triggered Breaking platforms and drops them once the
// animation has run out or the pieces have fallen off screen.
func (s *State) animateBreaking() {
	bc := s.cfg.Breaking
	g := s.cfg.Physics.Gravity * bc.GravityScale
	h := s.cfg.World.Height

	live := s.platforms[:0]
	for _, p := range s.platforms {
		if p.Breaking {
			p.BreakFrame++
			for k := range p.Pieces {
				piece := &p.Pieces[k]
				piece.VY += g
				piece.X += piece.VX
				piece.Y += piece.VY
			}
			p.Pieces[0].Rotation += bc.Spin
			p.Pieces[1].Rotation -= bc.Spin
			if p.BreakFrame > bc.MaxFrames || p.Y+p.Pieces[0].Y > h {
				continue
			}
		}
		live = append(live, p)
	}
	s.platforms = live
}

// shiftWorld moves every platform, item, and monster down by dy and culls
// anything that has passed the bottom edge.
func (s *State) shiftWorld(dy float64) {
	h := s.cfg.World.Height

	platforms := s.platforms[:0]
	for _, p := range s.platforms {
		p.Y += dy
		if p.Y > h {
			continue
		}
		platforms = append(platforms, p)
	}
	s.platforms = platforms

	items := s.items[:0]
	for _, it := range s.items {
		it.Y += dy
		if it.Y > h {
			continue
		}
		items = append(items, it)
	}
	s.items = items

	monsters := s.monsters[:0]
	for _, m := range s.monsters {
		m.Y += dy
		m.CenterY += dy
		if m.Y > h {
			continue
		}
		monsters = append(monsters, m)
	}
	s.monsters = monsters
}

// topmost returns the index of the highest platform, or -1 if there is none.
func (s *State) topmost() int {
	idx := -1
	for i := range s.platforms {
		if idx < 0 || s.platforms[i].Y < s.platforms[idx].Y {
			idx = i
		}
	}
	return idx
}

// topUp extends the stack upward until the minimum count is reached and
// rolls for a monster above each new platform.
func (s *State) topUp() {
	pc := s.cfg.Platforms
	mc := s.cfg.Monsters
	for len(s.platforms) < pc.MinCount {
		req := PlatformRequest{
			Y:        s.cfg.World.Height - pc.StartOffsetY,
			LastKind: s.lastKind,
			Score:    s.score,
		}
		if top := s.topmost(); top >= 0 {
			req.Y = s.platforms[top].Y - pc.Gap
			req.PrevX = s.platforms[top].X
			req.HasPrev = true
		}
		p := s.factory.Create(req)
		s.lastKind = p.Kind
		s.platforms = append(s.platforms, p)

		if s.difficulty.DifficultyScore(s.score) >= mc.MinScore && s.rng.Float64() < mc.SpawnChance {
			s.monsters = append(s.monsters, s.newMonster(p.Y-mc.SpawnOffsetY))
		}
	}
}

// newMonster rolls a motion pattern and a look for a monster at height y.
func (s *State) newMonster(y float64) Monster {
	mc := s.cfg.Monsters
	w := s.cfg.World.Width
	m := Monster{
		Y: y,
		W: mc.Width,
		H: mc.Height,
	}
	if s.rng.Intn(2) == 0 {
		m.Move = MoveHorizontal
	} else {
		m.Move = MoveCircular
	}
	if mc.Variants > 0 {
		m.Variant = s.rng.Intn(mc.Variants)
	}

	if m.Move == MoveHorizontal {
		m.X = s.rng.Float64() * (w - m.W)
		m.VX = mc.Speed
		if s.rng.Float64() < 0.5 {
			m.VX = -mc.Speed
		}
		return m
	}

	m.CenterX = s.rng.Float64() * w
	m.CenterY = y
	m.X = m.CenterX
	m.Radius = mc.OrbitRadius
	m.Angle = s.rng.Float64() * 2 * math.Pi
	m.AngleSpeed = mc.OrbitSpeed
	return m
}
