package highjump

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/highjump/internal/config"
	"github.com/vovakirdan/highjump/internal/core"
	"github.com/vovakirdan/highjump/internal/games/highjump/sim"
)

// Visual characters for rendering
const (
	PlatformChar     = '▀'
	BreakingChar     = '▚'
	VanishingChar    = '▔'
	SpringChar       = '⇈'
	BalloonChar      = 'Ø'
	JetpackChar      = '¥'
	BulletChar       = '│'
	PlayerChar       = '█'
	PlayerStunned    = '▒'
	PieceLeftChar    = '╱'
	PieceRightChar   = '╲'
	monsterRowChars  = "▄█▀"
	starChars        = "*+x+"
	gameOverHeight   = 7
	gameOverMinWidth = 30
)

var platformColors = map[sim.PlatformKind]core.Color{
	sim.KindNormal:       core.ColorGreen,
	sim.KindMoving:       core.ColorBlue,
	sim.KindBreaking:     core.ColorBrown,
	sim.KindDisappearing: core.ColorWhite,
}

var monsterColors = []core.Color{core.ColorMagenta, core.ColorBrightRed, core.ColorOrange}

var statusColors = map[sim.Status]core.Color{
	sim.StatusNormal:  core.ColorBrightYellow,
	sim.StatusBalloon: core.ColorRed,
	sim.StatusJetpack: core.ColorCyan,
	sim.StatusStunned: core.ColorYellow,
}

// painter maps world units onto screen cells. Rows 0 and below are the play
// field; the HUD is drawn over the top row.
type painter struct {
	dst    *core.Screen
	sx, sy float64
}

func newPainter(dst *core.Screen, worldW, worldH float64) painter {
	return painter{
		dst: dst,
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(dst.Height()) / worldH,
	}
}

func (p painter) col(x float64) int { return int(math.Floor(x * p.sx)) }
func (p painter) row(y float64) int { return int(math.Floor(y * p.sy)) }

// cells returns the cell rectangle covering b, at least one cell in size.
func (p painter) cells(b core.Box) core.Rect {
	x0, y0 := p.col(b.X), p.row(b.Y)
	x1, y1 := p.col(b.Right()), p.row(b.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (p painter) fill(b core.Box, ch rune, c core.Color) {
	r := p.cells(b)
	for y := r.Y; y < r.Bottom(); y++ {
		p.dst.DrawHLine(r.X, y, r.W, ch, c)
	}
}

// slab draws a one-row platform at its top edge.
func (p painter) slab(b core.Box, ch rune, c core.Color) {
	r := p.cells(b)
	p.dst.DrawHLine(r.X, r.Y, r.W, ch, c)
}

func (p painter) world(v sim.View, cfg config.HighJumpConfig) {
	for _, pl := range v.Platforms {
		p.platform(pl, cfg)
	}
	for _, it := range v.Items {
		p.item(it.Box(), it.Kind)
	}
	for _, m := range v.Monsters {
		p.monster(m)
	}
	for _, b := range v.Bullets {
		p.fill(b.Box(), BulletChar, core.ColorYellow)
	}
	p.player(v.Player)
}

func (p painter) platform(pl sim.Platform, cfg config.HighJumpConfig) {
	switch {
	case pl.Breaking:
		half := pl.W / 2
		left := core.NewBox(pl.X+pl.Pieces[0].X, pl.Y+pl.Pieces[0].Y, half, pl.H)
		right := core.NewBox(pl.X+pl.Pieces[1].X, pl.Y+pl.Pieces[1].Y, half, pl.H)
		p.slab(left, PieceLeftChar, core.ColorBrown)
		p.slab(right, PieceRightChar, core.ColorBrown)
		return
	case pl.Kind == sim.KindDisappearing && pl.Touched:
		return
	}

	ch := rune(PlatformChar)
	switch pl.Kind {
	case sim.KindBreaking:
		ch = BreakingChar
	case sim.KindDisappearing:
		ch = VanishingChar
	}
	p.slab(pl.Box(), ch, platformColors[pl.Kind])

	if pl.HasSpring {
		sb := pl.SpringBox(cfg.Platforms.SpringWidth, cfg.Platforms.SpringHeight)
		p.dst.SetColor(p.col(sb.X), p.row(pl.Y)-1, SpringChar, core.ColorGray)
	}
	if pl.CarriesItem() {
		p.item(pl.ItemBox(cfg.Items.Width, cfg.Items.Height), pl.ItemKind)
	}
}

func (p painter) item(b core.Box, kind sim.ItemKind) {
	ch, c := rune(BalloonChar), core.ColorRed
	if kind == sim.ItemJetpack {
		ch, c = JetpackChar, core.ColorCyan
	}
	r := p.cells(b)
	p.dst.SetColor(r.X+r.W/2, r.Bottom()-1, ch, c)
}

func (p painter) monster(m sim.Monster) {
	c := monsterColors[m.Variant%len(monsterColors)]
	r := p.cells(m.Box())
	rows := []rune(monsterRowChars)
	for y := r.Y; y < r.Bottom(); y++ {
		ch := rows[1]
		switch {
		case y == r.Y && r.H > 1:
			ch = rows[0]
		case y == r.Bottom()-1 && r.H > 1:
			ch = rows[2]
		}
		p.dst.DrawHLine(r.X, y, r.W, ch, c)
	}
	// Eyes
	if r.W >= 4 {
		eyeRow := r.Y + r.H/2
		p.dst.SetColor(r.X+r.W/3, eyeRow, 'o', core.ColorWhite)
		p.dst.SetColor(r.X+2*r.W/3, eyeRow, 'o', core.ColorWhite)
	}
}

func (p painter) player(pl sim.Player) {
	ch := rune(PlayerChar)
	if pl.Status == sim.StatusStunned {
		ch = PlayerStunned
	}
	c := statusColors[pl.Status]
	p.fill(pl.Box(), ch, c)

	r := p.cells(pl.Box())
	switch pl.Status {
	case sim.StatusStunned:
		stars := []rune(starChars)
		i := int(math.Abs(pl.StarRotation)/0.8) % len(stars)
		for dx := 0; dx < r.W; dx += 2 {
			p.dst.SetColor(r.X+dx, r.Y-1, stars[(i+dx/2)%len(stars)], core.ColorYellow)
		}
	case sim.StatusBalloon:
		p.dst.SetColor(r.X+r.W/2, r.Y-1, BalloonChar, core.ColorRed)
	case sim.StatusJetpack:
		p.dst.SetColor(r.X+r.W/2, r.Bottom(), '▼', core.ColorOrange)
	}
}

// hud draws the score line and the active effect timer.
func hud(dst *core.Screen, v sim.View, tier int, now time.Duration, fx config.EffectConfig) {
	dst.DrawTextColor(1, 0, fmt.Sprintf(" Score: %d ", int(v.Score)), core.ColorWhite)
	best := fmt.Sprintf(" Best: %d ", int(v.HighScore))
	dst.DrawTextColor(dst.Width()-len(best)-1, 0, best, core.ColorGray)

	label := ""
	var left time.Duration
	switch v.Player.Status {
	case sim.StatusBalloon:
		label, left = "BALLOON", fx.Balloon-v.Player.Elapsed(now)
	case sim.StatusJetpack:
		label, left = "JETPACK", fx.Jetpack-v.Player.Elapsed(now)
	case sim.StatusStunned:
		label, left = "STUNNED", fx.Stunned-v.Player.Elapsed(now)
	}
	if label != "" {
		text := fmt.Sprintf(" %s %.1fs ", label, math.Max(left.Seconds(), 0))
		dst.DrawTextColor((dst.Width()-len(text))/2, 0, text, statusColors[v.Player.Status])
		return
	}
	dst.DrawTextColor((dst.Width()-10)/2, 0, fmt.Sprintf(" Tier %d ", tier+1), core.ColorGray)
}

// gameOverPanel draws the results panel with its top edge at revealY in
// world units, so it slides down as the reveal advances.
func gameOverPanel(p painter, revealY float64, v sim.View) {
	title := "GAME OVER"
	score := fmt.Sprintf("Score: %d", int(v.Score))
	best := fmt.Sprintf("Best: %d", int(v.HighScore))
	hint := "R restart  Q quit"

	w := core.Max(gameOverMinWidth, len(hint)+4)
	y := p.row(revealY)
	box := core.NewRect((p.dst.Width()-w)/2, y, w, gameOverHeight)
	p.dst.DrawRect(box, ' ')
	p.dst.DrawBox(box, core.ColorYellow)

	center := func(row int, text string, c core.Color) {
		p.dst.DrawTextColor(box.X+(w-len(text))/2, row, text, c)
	}
	center(y+1, title, core.ColorBrightRed)
	center(y+3, score, core.ColorWhite)
	center(y+4, best, core.ColorGray)
	if v.RevealProgress >= 1 {
		center(y+5, hint, core.ColorGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	v := g.state.View()
	p := newPainter(dst, g.cfg.World.Width, g.cfg.World.Height)
	p.world(v, g.cfg)
	hud(dst, v, g.state.TierIndex(), g.clock.Now(), g.cfg.Effects)

	if v.GameOver {
		gameOverPanel(p, g.state.RevealY(), v)
	}
	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}
