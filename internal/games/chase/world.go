package chase

import (
	"math/rand"

	"github.com/tuigames/chaserun/internal/config"
	"github.com/tuigames/chaserun/internal/core"
)

// SegmentKind distinguishes the two terrain categories. Ground carries the
// runner at the base line; platforms float in the band above it.
type SegmentKind int

const (
	SegmentGround SegmentKind = iota
	SegmentPlatform
)

// Segment is one piece of solid terrain in world coordinates.
type Segment struct {
	Kind SegmentKind
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the segment's trailing edge.
func (s Segment) Right() float64 {
	return s.X + s.W
}

// Bounds returns the segment's bounding box.
func (s Segment) Bounds() core.RectF {
	return core.NewRectF(s.X, s.Y, s.W, s.H)
}

// mood biases platform generation for a run of chunks before resampling.
type mood int

const (
	moodEasy mood = iota
	moodStairs
	moodGaps
)

// world generates and retires terrain ahead of the camera. Ground and
// platform frontiers advance independently and need not align. All
// randomness flows through the injected generator.
type world struct {
	cfg *config.WorldConfig
	rng *rand.Rand

	segments []Segment

	groundFrontier   float64
	platformFrontier float64
	lastWasGap       bool

	mood      mood
	moodLeft  int
	platformY float64
}

func newWorld(cfg *config.WorldConfig, rng *rand.Rand) *world {
	w := &world{cfg: cfg, rng: rng}
	w.reset(0)
	return w
}

// reset discards all terrain and lays a stable launch segment under the
// runner's starting position so the first steps never begin over a gap.
func (w *world) reset(camera float64) {
	w.segments = w.segments[:0]
	w.lastWasGap = false

	launch := Segment{
		Kind: SegmentGround,
		X:    camera - 100,
		Y:    w.cfg.GroundY,
		W:    w.cfg.ViewW + 100,
		H:    w.cfg.GroundThickness,
	}
	w.segments = append(w.segments, launch)
	w.groundFrontier = launch.Right()

	w.platformFrontier = camera + w.cfg.ViewW*0.6
	w.platformY = w.cfg.GroundY - 140
	w.moodLeft = 0
}

// extendGround guarantees ground geometry reaches at least
// camera + viewW + lookahead. A no-op when the frontier already does.
func (w *world) extendGround(camera float64) {
	target := camera + w.cfg.ViewW + w.cfg.Lookahead
	for w.groundFrontier < target {
		// A gap is just a frontier advance with nothing inserted.
		// Never roll two gaps back to back: the combined span would
		// be uncrossable.
		if !w.lastWasGap && w.rng.Float64() < w.cfg.GapChance {
			w.groundFrontier += w.randRange(w.cfg.GapMinW, w.cfg.GapMaxW)
			w.lastWasGap = true
			continue
		}
		width := w.randRange(w.cfg.SegmentMinW, w.cfg.SegmentMaxW)
		w.segments = append(w.segments, Segment{
			Kind: SegmentGround,
			X:    w.groundFrontier,
			Y:    w.cfg.GroundY,
			W:    width,
			H:    w.cfg.GroundThickness,
		})
		w.groundFrontier += width
		w.lastWasGap = false
	}
}

// extendPlatforms fills the elevated band up to the same lookahead target,
// steered by the current mood.
func (w *world) extendPlatforms(camera float64) {
	target := camera + w.cfg.ViewW + w.cfg.Lookahead
	for w.platformFrontier < target {
		if w.moodLeft <= 0 {
			w.mood = mood(w.rng.Intn(3))
			w.moodLeft = w.cfg.MoodRunMin + w.rng.Intn(w.cfg.MoodRunMax-w.cfg.MoodRunMin+1)
		}

		m := w.moodConfig()
		gap := w.randRange(m.GapMin, m.GapMax)
		width := w.randRange(w.cfg.PlatformMinW, w.cfg.PlatformMaxW)
		delta := w.randRange(m.DeltaYMin, m.DeltaYMax)

		y := core.ClampF(w.platformY+delta, w.cfg.PlatformMinY, w.cfg.GroundY-w.cfg.PlatformMargin)
		x := w.platformFrontier + gap

		w.segments = append(w.segments, Segment{
			Kind: SegmentPlatform,
			X:    x,
			Y:    y,
			W:    width,
			H:    w.cfg.PlatformThickness,
		})
		w.platformFrontier = x + width
		w.platformY = y
		w.moodLeft--
	}
}

// cleanup retires segments far enough behind the camera. Ground keeps a
// larger retention margin than platforms so a gap near the left view edge
// does not silently turn into solid-looking emptiness.
func (w *world) cleanup(camera float64) {
	kept := w.segments[:0]
	for _, s := range w.segments {
		retention := w.cfg.PlatformRetention
		if s.Kind == SegmentGround {
			retention = w.cfg.GroundRetention
		}
		if s.Right() >= camera-retention {
			kept = append(kept, s)
		}
	}
	w.segments = kept
}

// forwardPlatform returns the first platform whose left edge lies beyond
// minX, or false if none is generated yet.
func (w *world) forwardPlatform(minX float64) (Segment, bool) {
	best := Segment{}
	found := false
	for _, s := range w.segments {
		if s.Kind != SegmentPlatform || s.X < minX {
			continue
		}
		if !found || s.X < best.X {
			best = s
			found = true
		}
	}
	return best, found
}

func (w *world) moodConfig() config.MoodConfig {
	switch w.mood {
	case moodStairs:
		return w.cfg.MoodStairs
	case moodGaps:
		return w.cfg.MoodGaps
	default:
		return w.cfg.MoodEasy
	}
}

func (w *world) randRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + w.rng.Float64()*(max-min)
}
