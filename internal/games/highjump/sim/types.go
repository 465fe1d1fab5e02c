// Package sim is the High Jump simulation: the platform generator, the
// entity stores, the player state machine and the fixed-step update that
// ties them together. It has no I/O. Presentation code feeds it an Input
// per frame and reads the stores back for drawing.
package sim

import "github.com/vovakirdan/highjump/internal/core"

// PlatformKind is the behavioral category of a platform. It never changes
// after the platform is created.
type PlatformKind int

const (
	KindNormal       PlatformKind = iota // solid
	KindMoving                           // solid, slides horizontally
	KindBreaking                         // pass-through, falls apart on contact
	KindDisappearing                     // solid once, then gone
)

// String returns the kind name.
func (k PlatformKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindMoving:
		return "moving"
	case KindBreaking:
		return "breaking"
	case KindDisappearing:
		return "disappearing"
	default:
		return "unknown"
	}
}

// MarshalYAML renders the kind by name.
func (k PlatformKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// ItemKind is the power-up an item grants.
type ItemKind int

const (
	ItemBalloon ItemKind = iota
	ItemJetpack
)

// String returns the item name.
func (k ItemKind) String() string {
	if k == ItemJetpack {
		return "jetpack"
	}
	return "balloon"
}

// MarshalYAML renders the item kind by name.
func (k ItemKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// MoveType selects a monster's motion pattern.
type MoveType int

const (
	MoveHorizontal MoveType = iota
	MoveCircular
)

// String returns the motion name.
func (m MoveType) String() string {
	if m == MoveCircular {
		return "circular"
	}
	return "horizontal"
}

// MarshalYAML renders the move type by name.
func (m MoveType) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// BreakPiece is one falling half of a Breaking platform.
// X and Y are relative to the platform origin.
type BreakPiece struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	VX       float64 `yaml:"vx"`
	VY       float64 `yaml:"vy"`
	Rotation float64 `yaml:"rotation"`
}

// Platform is a jump surface. Only the sub-state evolves: item collection,
// break progress, touched flag and the moving direction.
type Platform struct {
	X    float64      `yaml:"x"`
	Y    float64      `yaml:"y"`
	W    float64      `yaml:"w"`
	H    float64      `yaml:"h"`
	Kind PlatformKind `yaml:"kind"`

	HasSpring bool    `yaml:"has_spring,omitempty"`
	SpringX   float64 `yaml:"spring_x,omitempty"` // offset from X

	HasItem       bool     `yaml:"has_item,omitempty"`
	ItemKind      ItemKind `yaml:"item_kind,omitempty"`
	ItemX         float64  `yaml:"item_x,omitempty"` // offset from X
	ItemCollected bool     `yaml:"item_collected,omitempty"`

	MoveDir   float64 `yaml:"move_dir,omitempty"` // +1 right, -1 left
	MoveSpeed float64 `yaml:"move_speed,omitempty"`

	Breaking   bool          `yaml:"breaking,omitempty"`
	BreakFrame int           `yaml:"break_frame,omitempty"`
	Pieces     [2]BreakPiece `yaml:"pieces,omitempty"` // left, right

	Touched bool `yaml:"touched,omitempty"`
}

// Box returns the platform slab.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// SpringBox returns the spring rectangle sitting on top of the platform.
func (p Platform) SpringBox(w, h float64) core.Box {
	return core.NewBox(p.X+p.SpringX, p.Y-h, w, h)
}

// ItemBox returns the carried item rectangle sitting on top of the platform.
func (p Platform) ItemBox(w, h float64) core.Box {
	return core.NewBox(p.X+p.ItemX, p.Y-h, w, h)
}

// Solid reports whether the platform still takes part in collisions.
func (p Platform) Solid() bool {
	switch p.Kind {
	case KindBreaking:
		return !p.Breaking
	case KindDisappearing:
		return !p.Touched
	default:
		return true
	}
}

// CarriesItem reports whether an uncollected item sits on the platform.
func (p Platform) CarriesItem() bool {
	return p.HasItem && !p.ItemCollected
}

// Item is a free-floating power-up.
type Item struct {
	X    float64  `yaml:"x"`
	Y    float64  `yaml:"y"`
	W    float64  `yaml:"w"`
	H    float64  `yaml:"h"`
	Kind ItemKind `yaml:"kind"`
}

// Box returns the item bounds.
func (it Item) Box() core.Box {
	return core.NewBox(it.X, it.Y, it.W, it.H)
}

// Monster is a hazard that stuns the player on contact.
type Monster struct {
	X       float64  `yaml:"x"`
	Y       float64  `yaml:"y"`
	W       float64  `yaml:"w"`
	H       float64  `yaml:"h"`
	Move    MoveType `yaml:"move"`
	Variant int      `yaml:"variant"`

	// Horizontal
	VX float64 `yaml:"vx,omitempty"`

	// Circular
	CenterX    float64 `yaml:"center_x,omitempty"`
	CenterY    float64 `yaml:"center_y,omitempty"`
	Radius     float64 `yaml:"radius,omitempty"`
	Angle      float64 `yaml:"angle,omitempty"`
	AngleSpeed float64 `yaml:"angle_speed,omitempty"`
}

// Box returns the monster bounds.
func (m Monster) Box() core.Box {
	return core.NewBox(m.X, m.Y, m.W, m.H)
}

// Bullet is a projectile fired straight up.
type Bullet struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	W  float64 `yaml:"w"`
	H  float64 `yaml:"h"`
	VY float64 `yaml:"vy"`
}

// Box returns the bullet bounds.
func (b Bullet) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Input is the per-step snapshot written by the presentation layer.
// Fire is the raw button state; the simulation fires on its rising edge.
type Input struct {
	Left    bool
	Right   bool
	Fire    bool
	Restart bool
}

// Events records what happened during one step.
type Events uint16

const (
	EventJump Events = 1 << iota
	EventSpring
	EventBreak
	EventVanish
	EventPickup
	EventStunned
	EventFired
	EventMonsterKilled
	EventNewHighScore
	EventGameOver
	EventRestart
)

// Has reports whether all events in e are set.
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// StepResult summarizes a single step.
type StepResult struct {
	Events   Events
	Scrolled float64 // world shift applied this step
	GameOver bool
}
