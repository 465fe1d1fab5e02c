// Package window runs High Jump in a desktop window with Ebitengine. It
// draws the simulation in world units and feeds it held-key input.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/highjump/internal/config"
	"github.com/vovakirdan/highjump/internal/core"
	"github.com/vovakirdan/highjump/internal/games/highjump/sim"
)

// Session is the running game the window drives.
type Session interface {
	Sim() *sim.State
	StepInput(in sim.Input, pause bool) core.StepResult
	Paused() bool
}

// Options configure the window.
type Options struct {
	TPS    int
	Scale  float64 // window size relative to the world; 0 means 0.8
	Logger *log.Logger
}

// Game-over panel size.
const (
	panelW = 300.0
	panelH = 330.0
)

var (
	backgroundColor = color.RGBA{0xf5, 0xf1, 0xe6, 0xff}
	panelColor      = color.RGBA{0x22, 0x22, 0x2a, 0xe6}
	buttonColor     = color.RGBA{0x3c, 0xa5, 0x5c, 0xff}
	playerColor     = color.RGBA{0xf2, 0xc1, 0x2e, 0xff}
	springColor     = color.RGBA{0x88, 0x88, 0x88, 0xff}
	bulletColor     = color.RGBA{0x20, 0x20, 0x20, 0xff}
	balloonColor    = color.RGBA{0xe0, 0x3c, 0x3c, 0xff}
	jetpackColor    = color.RGBA{0x3c, 0x8c, 0xe0, 0xff}
	starColor       = color.RGBA{0xff, 0xd7, 0x00, 0xff}

	platformColors = map[sim.PlatformKind]color.RGBA{
		sim.KindNormal:       {0x5c, 0xb8, 0x5c, 0xff},
		sim.KindMoving:       {0x4a, 0x90, 0xd9, 0xff},
		sim.KindBreaking:     {0x8b, 0x5a, 0x2b, 0xff},
		sim.KindDisappearing: {0xdd, 0xdd, 0xdd, 0xff},
	}
	monsterColors = []color.RGBA{
		{0x9b, 0x4d, 0xca, 0xff},
		{0xd9, 0x48, 0x48, 0xff},
		{0xe8, 0x8a, 0x1a, 0xff},
	}
)

// Window implements ebiten.Game.
type Window struct {
	session Session
	cfg     config.HighJumpConfig
	logger  *log.Logger
	pixel   *ebiten.Image
}

// New wraps a session for Ebitengine.
func New(s Session, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Window{
		session: s,
		cfg:     s.Sim().Config(),
		logger:  logger,
		pixel:   pixel,
	}
}

// Run opens the window and blocks until it is closed.
func Run(s Session, opts Options) error {
	w := New(s, opts.Logger)

	scale := opts.Scale
	if scale <= 0 {
		scale = 0.8
	}
	ebiten.SetWindowSize(int(w.cfg.World.Width*scale), int(w.cfg.World.Height*scale))
	ebiten.SetWindowTitle("High Jump")
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update advances the simulation by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.logger.Debug("window closed by key")
		return ebiten.Termination
	}

	st := w.session.Sim()
	in := sim.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}
	if st.GameOver() {
		in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR) || w.restartClicked(st)
	}

	w.session.StepInput(in, inpututil.IsKeyJustPressed(ebiten.KeyP))
	return nil
}

func (w *Window) restartClicked(st *sim.State) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return st.RestartHit(float64(x), float64(y))
}

// Layout keeps the logical screen at world size; Ebitengine scales it.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.cfg.World.Width), int(w.cfg.World.Height)
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	st := w.session.Sim()
	v := st.View()
	for _, p := range v.Platforms {
		w.drawPlatform(screen, p)
	}
	for _, it := range v.Items {
		w.drawItem(screen, it.Box(), it.Kind)
	}
	for _, m := range v.Monsters {
		w.drawMonster(screen, m)
	}
	for _, b := range v.Bullets {
		fillBox(screen, b.Box(), bulletColor)
	}
	w.drawPlayer(screen, v.Player)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", int(v.Score)), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best: %d", int(v.HighScore)), 10, 26)

	if v.GameOver {
		w.drawGameOver(screen, st.RevealY(), v)
	}
	if w.session.Paused() {
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P", int(w.cfg.World.Width)/2-48, int(w.cfg.World.Height)/2)
	}
}

func fillBox(dst *ebiten.Image, b core.Box, c color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

// drawRotated fills a w*h rectangle at (x, y) turned by angle radians
// around its centre.
func (w *Window) drawRotated(dst *ebiten.Image, x, y, width, height, angle float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(-width/2, -height/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x+width/2, y+height/2)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(w.pixel, op)
}

func (w *Window) drawPlatform(dst *ebiten.Image, p sim.Platform) {
	c := platformColors[p.Kind]
	if p.Breaking {
		half := p.W / 2
		for _, piece := range p.Pieces {
			w.drawRotated(dst, p.X+piece.X, p.Y+piece.Y, half, p.H, piece.Rotation, c)
		}
		return
	}
	if p.Kind == sim.KindDisappearing && p.Touched {
		return
	}

	fillBox(dst, p.Box(), c)
	if p.HasSpring {
		fillBox(dst, p.SpringBox(w.cfg.Platforms.SpringWidth, w.cfg.Platforms.SpringHeight), springColor)
	}
	if p.CarriesItem() {
		w.drawItem(dst, p.ItemBox(w.cfg.Items.Width, w.cfg.Items.Height), p.ItemKind)
	}
}

func (w *Window) drawItem(dst *ebiten.Image, b core.Box, kind sim.ItemKind) {
	if kind == sim.ItemJetpack {
		fillBox(dst, b, jetpackColor)
		return
	}
	r := b.W / 2
	vector.DrawFilledCircle(dst, float32(b.X+r), float32(b.Y+r), float32(r), balloonColor, true)
	vector.StrokeLine(dst, float32(b.X+r), float32(b.Y+2*r), float32(b.X+r), float32(b.Bottom()), 1, bulletColor, true)
}

func (w *Window) drawMonster(dst *ebiten.Image, m sim.Monster) {
	c := monsterColors[m.Variant%len(monsterColors)]
	b := m.Box()
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y+b.H/4), float32(b.W), float32(b.H*3/4), c, true)
	vector.DrawFilledCircle(dst, float32(b.X+b.W/2), float32(b.Y+b.H/3), float32(b.W/3), c, true)
	for _, ex := range []float64{b.X + b.W/3, b.X + 2*b.W/3} {
		vector.DrawFilledCircle(dst, float32(ex), float32(b.Y+b.H/3), float32(b.W/12), color.White, true)
	}
}

func (w *Window) drawPlayer(dst *ebiten.Image, p sim.Player) {
	b := p.Box()
	switch p.Status {
	case sim.StatusBalloon:
		cx := b.X + b.W/2
		vector.StrokeLine(dst, float32(cx), float32(b.Y), float32(cx), float32(b.Y-30), 1, bulletColor, true)
		vector.DrawFilledCircle(dst, float32(cx), float32(b.Y-45), 18, balloonColor, true)
	case sim.StatusJetpack:
		fillBox(dst, core.NewBox(b.X-8, b.Y+10, 10, b.H-20), jetpackColor)
	}

	fillBox(dst, b, playerColor)

	if p.Status == sim.StatusStunned {
		cx, cy := b.X+b.W/2, b.Y-10
		for i := range 3 {
			a := p.StarRotation + float64(i)*2*math.Pi/3
			vector.DrawFilledCircle(dst, float32(cx+math.Cos(a)*b.W/2), float32(cy+math.Sin(a)*8), 5, starColor, true)
		}
	}
}

func (w *Window) drawGameOver(dst *ebiten.Image, revealY float64, v sim.View) {
	worldW := w.cfg.World.Width
	panel := core.NewBox(worldW/2-panelW/2, revealY, panelW, panelH)
	vector.DrawFilledRect(dst, float32(panel.X), float32(panel.Y), float32(panel.W), float32(panel.H), panelColor, true)

	x := int(panel.X) + 40
	y := int(panel.Y)
	ebitenutil.DebugPrintAt(dst, "GAME OVER", x+70, y+40)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d", int(v.Score)), x, y+110)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Best:  %d", int(v.HighScore)), x, y+140)

	btn := sim.RestartButton(worldW, revealY)
	fillBox(dst, btn, buttonColor)
	ebitenutil.DebugPrintAt(dst, "Restart (R)", int(btn.X)+85, int(btn.Y)+18)
}
