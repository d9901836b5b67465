package chase

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/tuigames/chaserun/internal/config"
)

func newTestWorld(seed int64) (*world, *config.WorldConfig) {
	cfg := config.DefaultChaseConfig().World
	w := newWorld(&cfg, rand.New(rand.NewSource(seed)))
	return w, &cfg
}

func TestFrontierInvariant(t *testing.T) {
	w, cfg := newTestWorld(11)

	camera := 0.0
	for step := 0; step < 200; step++ {
		w.extendGround(camera)
		w.extendPlatforms(camera)

		target := camera + cfg.ViewW + cfg.Lookahead
		if w.groundFrontier < target {
			t.Fatalf("step %d: ground frontier %v < %v", step, w.groundFrontier, target)
		}
		if w.platformFrontier < target {
			t.Fatalf("step %d: platform frontier %v < %v", step, w.platformFrontier, target)
		}
		camera += 150
	}
}

func TestExtendIsIdempotent(t *testing.T) {
	w, _ := newTestWorld(11)

	w.extendGround(0)
	w.extendPlatforms(0)
	count := len(w.segments)
	gf, pf := w.groundFrontier, w.platformFrontier

	// Frontiers already satisfy the target: nothing may change.
	w.extendGround(0)
	w.extendPlatforms(0)

	if len(w.segments) != count {
		t.Errorf("segment count changed %d -> %d on repeated extend", count, len(w.segments))
	}
	if w.groundFrontier != gf || w.platformFrontier != pf {
		t.Error("frontiers moved on repeated extend")
	}
}

func TestCleanupRetention(t *testing.T) {
	w, cfg := newTestWorld(23)

	camera := 0.0
	for i := 0; i < 50; i++ {
		camera += 400
		w.extendGround(camera)
		w.extendPlatforms(camera)
		w.cleanup(camera)
	}

	for _, s := range w.segments {
		retention := cfg.PlatformRetention
		if s.Kind == SegmentGround {
			retention = cfg.GroundRetention
		}
		if s.Right() < camera-retention {
			t.Errorf("%v segment at %v retained beyond margin (camera %v)", s.Kind, s.X, camera)
		}
	}

	// Terrain directly behind the camera is still present for rendering.
	found := false
	for _, s := range w.segments {
		if s.Kind == SegmentGround && s.X < camera && s.Right() > camera-cfg.GroundRetention {
			found = true
			break
		}
	}
	if !found {
		t.Error("no ground retained behind the camera")
	}
}

func TestGroundGapsAreBounded(t *testing.T) {
	w, cfg := newTestWorld(37)

	w.extendGround(0)
	for c := 500.0; c < 50000; c += 500 {
		w.extendGround(c)
	}

	var ground []Segment
	for _, s := range w.segments {
		if s.Kind == SegmentGround {
			ground = append(ground, s)
		}
	}
	sort.Slice(ground, func(i, j int) bool { return ground[i].X < ground[j].X })

	for i := 1; i < len(ground); i++ {
		gap := ground[i].X - ground[i-1].Right()
		if gap < -0.001 {
			t.Fatalf("ground segments overlap at %v", ground[i].X)
		}
		if gap > cfg.GapMaxW+0.001 {
			t.Fatalf("gap of %v at %v exceeds max %v (uncrossable)", gap, ground[i].X, cfg.GapMaxW)
		}
	}
}

func TestGroundSegmentWidths(t *testing.T) {
	w, cfg := newTestWorld(41)

	for c := 0.0; c < 30000; c += 500 {
		w.extendGround(c)
	}

	for _, s := range w.segments {
		if s.Kind != SegmentGround {
			continue
		}
		// The launch segment is deliberately wider.
		if s.X == -100 {
			continue
		}
		if s.W < cfg.SegmentMinW-0.001 || s.W > cfg.SegmentMaxW+0.001 {
			t.Errorf("segment width %v outside [%v, %v]", s.W, cfg.SegmentMinW, cfg.SegmentMaxW)
		}
	}
}

func TestPlatformsStayInBand(t *testing.T) {
	w, cfg := newTestWorld(53)

	for c := 0.0; c < 30000; c += 500 {
		w.extendPlatforms(c)
	}

	lowest := cfg.GroundY - cfg.PlatformMargin
	for _, s := range w.segments {
		if s.Kind != SegmentPlatform {
			continue
		}
		if s.Y < cfg.PlatformMinY || s.Y > lowest {
			t.Errorf("platform y %v outside band [%v, %v]", s.Y, cfg.PlatformMinY, lowest)
		}
	}
}

func TestResetLaysLaunchSegment(t *testing.T) {
	w, cfg := newTestWorld(61)

	for c := 0.0; c < 5000; c += 500 {
		w.extendGround(c)
		w.cleanup(c)
	}

	w.reset(0)

	if len(w.segments) != 1 {
		t.Fatalf("segments after reset = %d, want 1 launch segment", len(w.segments))
	}
	s := w.segments[0]
	if s.Kind != SegmentGround {
		t.Error("launch segment is not ground")
	}
	if s.X > 0 || s.Right() < cfg.ViewW {
		t.Errorf("launch segment [%v, %v] does not cover the initial view", s.X, s.Right())
	}
}

func TestForwardPlatform(t *testing.T) {
	w, _ := newTestWorld(71)
	w.extendPlatforms(0)

	s, ok := w.forwardPlatform(500)
	if !ok {
		t.Fatal("no forward platform found after extend")
	}
	if s.X < 500 {
		t.Errorf("platform at %v, want X >= 500", s.X)
	}
	if s.Kind != SegmentPlatform {
		t.Error("forward platform is not a platform segment")
	}

	// Beyond the frontier there is nothing.
	if _, ok := w.forwardPlatform(w.platformFrontier + 1); ok {
		t.Error("found a platform beyond the frontier")
	}
}
