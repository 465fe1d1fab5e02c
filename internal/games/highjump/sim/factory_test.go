package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/highjump/internal/config"
)

func newTestFactory(seed int64) *PlatformFactory {
	return NewPlatformFactory(config.DefaultHighJumpConfig(), rand.New(rand.NewSource(seed)))
}

func TestFactoryNoNormalAfterBreaking(t *testing.T) {
	f := newTestFactory(1)
	scores := []float64{0, 2500, 5000, 9000}

	for _, score := range scores {
		for i := 0; i < 20000; i++ {
			p := f.Create(PlatformRequest{Y: 0, PrevX: 200, HasPrev: true, LastKind: KindBreaking, Score: score})
			if p.Kind == KindNormal || p.Kind == KindBreaking {
				t.Fatalf("score %v: got %v after a breaking platform", score, p.Kind)
			}
		}
	}
}

func TestFactoryUsesConfiguredFollowRow(t *testing.T) {
	cfg := config.DefaultHighJumpConfig()
	for i := range cfg.Difficulty.Tiers {
		cfg.Difficulty.Tiers[i].AfterBreaking = config.FollowWeights{Disappearing: 1}
	}
	f := NewPlatformFactory(cfg, rand.New(rand.NewSource(3)))

	for i := 0; i < 500; i++ {
		p := f.Create(PlatformRequest{PrevX: 200, HasPrev: true, LastKind: KindBreaking, Score: float64(i * 20)})
		if p.Kind != KindDisappearing {
			t.Fatalf("got %v after a breaking platform, want disappearing", p.Kind)
		}
	}
}

func TestFactoryChainedKinds(t *testing.T) {
	f := newTestFactory(7)
	last := KindNormal
	x := 250.0
	breakings := 0

	for i := 0; i < 50000; i++ {
		score := float64(i % 10000)
		p := f.Create(PlatformRequest{Y: -float64(i) * 80, PrevX: x, HasPrev: true, LastKind: last, Score: score})
		if last == KindBreaking {
			breakings++
			if p.Kind == KindNormal {
				t.Fatalf("step %d: normal platform directly after breaking", i)
			}
		}
		last = p.Kind
		x = p.X
	}
	if breakings == 0 {
		t.Fatal("sample produced no breaking platforms")
	}
}

func TestFactoryTierDistribution(t *testing.T) {
	f := newTestFactory(3)
	const n = 40000

	tests := []struct {
		score  float64
		normal float64
	}{
		{0, 0.65},
		{3000, 0.35},
		{5000, 0.10},
		{8000, 0.03},
	}
	for _, tt := range tests {
		normals := 0
		for i := 0; i < n; i++ {
			if f.Create(PlatformRequest{Score: tt.score}).Kind == KindNormal {
				normals++
			}
		}
		got := float64(normals) / n
		if math.Abs(got-tt.normal) > 0.02 {
			t.Errorf("score %v: normal share %.3f, want about %.2f", tt.score, got, tt.normal)
		}
	}
}

func TestFactoryPlacement(t *testing.T) {
	cfg := config.DefaultHighJumpConfig()
	f := newTestFactory(11)
	w := cfg.World.Width
	minX := cfg.Platforms.EdgeMargin
	maxX := w - cfg.Platforms.Width - cfg.Platforms.EdgeMargin

	for i := 0; i < 5000; i++ {
		p := f.Create(PlatformRequest{})
		if p.X < w*0.3 || p.X > w*0.7 {
			t.Fatalf("first platform x=%v outside the middle band", p.X)
		}
	}

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 20000; i++ {
		prev := minX + rng.Float64()*(maxX-minX)
		p := f.Create(PlatformRequest{PrevX: prev, HasPrev: true})
		if p.X < minX || p.X > maxX {
			t.Fatalf("x=%v outside [%v, %v] (prev %v)", p.X, minX, maxX, prev)
		}
		d := math.Abs(p.X - prev)
		wrapped := p.X > maxX-cfg.Platforms.WrapJitter || p.X < minX+cfg.Platforms.WrapJitter
		if !wrapped && (d < cfg.Platforms.MinDistance || d > cfg.Platforms.MaxDistance) {
			t.Fatalf("offset %v outside [%v, %v]", d, cfg.Platforms.MinDistance, cfg.Platforms.MaxDistance)
		}
	}
}

func TestFactoryAttachments(t *testing.T) {
	cfg := config.DefaultHighJumpConfig()
	f := newTestFactory(13)
	normals, springs, items := 0, 0, 0

	for i := 0; i < 30000; i++ {
		p := f.Create(PlatformRequest{Score: float64(i % 9000)})

		if p.HasSpring {
			if p.Kind != KindNormal && p.Kind != KindMoving {
				t.Fatalf("spring on %v platform", p.Kind)
			}
			if p.SpringX < 0 || p.SpringX >= p.W-cfg.Platforms.SpringWidth {
				t.Fatalf("spring offset %v out of range", p.SpringX)
			}
		}
		if p.HasItem {
			if p.Kind != KindNormal || p.HasSpring {
				t.Fatalf("item on %v platform (spring=%v)", p.Kind, p.HasSpring)
			}
			if p.ItemX < 0 || p.ItemX >= p.W-cfg.Items.Width {
				t.Fatalf("item offset %v out of range", p.ItemX)
			}
			items++
		}
		if p.Kind == KindNormal {
			normals++
			if p.HasSpring {
				springs++
			}
		}

		// Sub-state at rest
		if p.Breaking || p.Touched || p.ItemCollected || p.BreakFrame != 0 {
			t.Fatalf("new platform not at rest: %+v", p)
		}
		if p.Kind == KindMoving && p.MoveDir != 1 {
			t.Fatalf("moving platform direction %v", p.MoveDir)
		}
	}

	if rate := float64(springs) / float64(normals); math.Abs(rate-0.2) > 0.03 {
		t.Errorf("spring rate on normal platforms %.3f, want about 0.2", rate)
	}
	if items == 0 {
		t.Error("no items generated")
	}
}

func TestFactoryStart(t *testing.T) {
	cfg := config.DefaultHighJumpConfig()
	p := newTestFactory(1).Start()
	if p.Kind != KindNormal || p.HasSpring || p.HasItem {
		t.Errorf("start platform should be plain normal, got %+v", p)
	}
	if p.X != cfg.World.Width/2-cfg.Platforms.Width/2 {
		t.Errorf("start x = %v", p.X)
	}
	if p.Y != cfg.World.Height-cfg.Platforms.StartOffsetY {
		t.Errorf("start y = %v", p.Y)
	}
}

func TestKindFromDraw(t *testing.T) {
	w := config.KindWeights{Normal: 0.5, Moving: 0.25, Breaking: 0.125, Disappearing: 0.125}
	tests := []struct {
		r    float64
		want PlatformKind
	}{
		{0, KindNormal},
		{0.49, KindNormal},
		{0.5, KindMoving},
		{0.74, KindMoving},
		{0.75, KindBreaking},
		{0.87, KindBreaking},
		{0.9, KindDisappearing},
		{0.999, KindDisappearing},
	}
	for _, tt := range tests {
		if got := kindFromDraw(w, tt.r); got != tt.want {
			t.Errorf("kindFromDraw(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}

	// Unnormalized weights scale the draw
	if got := kindFromDraw(config.KindWeights{Moving: 3, Disappearing: 1}, 0.7); got != KindMoving {
		t.Errorf("scaled draw = %v, want moving", got)
	}
	if got := kindFromDraw(followBreaking(config.FollowWeights{}), 0.3); got != KindMoving {
		t.Errorf("empty after-breaking row = %v, want moving", got)
	}
}
