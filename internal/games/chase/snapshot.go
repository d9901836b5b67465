package chase

import "math"

// Snapshot is a read-only copy of the observable simulation state, taken
// between ticks. Collaborators (renderer, tests) read it; nothing writes
// back through it.
type Snapshot struct {
	Phase   string
	Elapsed float64
	Camera  float64
	Scroll  float64

	RunnerX, RunnerY   float64
	RunnerVX, RunnerVY float64
	OnGround           bool
	HasWeapon          bool
	WeaponUntil        float64
	AttackActive       bool
	AttackDir          string

	PursuerX, PursuerY float64
	PursuerState       string

	PickupActive bool
	PickupX      float64
	PickupY      float64

	Repels   int
	Combo    int
	BestTime int
	Segments int
}

// Snapshot captures the current observable state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:   g.phase.String(),
		Elapsed: g.elapsed,
		Camera:  g.camera,
		Scroll:  g.scrollSpeed,

		RunnerX:      g.runner.x,
		RunnerY:      g.runner.y,
		RunnerVX:     g.runner.vx,
		RunnerVY:     g.runner.vy,
		OnGround:     g.runner.onGround,
		HasWeapon:    g.runner.hasWeapon,
		WeaponUntil:  g.runner.weaponUntil,
		AttackActive: g.runner.attackUntil > g.clock,
		AttackDir:    g.runner.attackDir.String(),

		PursuerX:     g.pursuer.x,
		PursuerY:     g.pursuer.y,
		PursuerState: g.pursuer.state.String(),

		PickupActive: g.pickup.active,
		PickupX:      g.pickup.x,
		PickupY:      g.pickup.y,

		Repels:   g.repels,
		Combo:    g.combo,
		BestTime: g.bestTime,
		Segments: len(g.world.segments),
	}
}

// Hash folds the snapshot into a single comparable value. Two runs with
// the same seed and inputs must produce the same hash at every tick.
func (s Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) {
		h = h*31 + v
	}
	mixF := func(v float64) {
		mix(math.Float64bits(v))
	}
	mixB := func(v bool) {
		if v {
			mix(1)
		} else {
			mix(0)
		}
	}
	mixS := func(v string) {
		for _, c := range v {
			mix(uint64(c))
		}
	}

	mixS(s.Phase)
	mixF(s.Elapsed)
	mixF(s.Camera)
	mixF(s.Scroll)
	mixF(s.RunnerX)
	mixF(s.RunnerY)
	mixF(s.RunnerVX)
	mixF(s.RunnerVY)
	mixB(s.OnGround)
	mixB(s.HasWeapon)
	mixF(s.PursuerX)
	mixF(s.PursuerY)
	mixS(s.PursuerState)
	mixB(s.PickupActive)
	mixF(s.PickupX)
	mixF(s.PickupY)
	mix(uint64(s.Repels))
	mix(uint64(s.Combo))
	mix(uint64(s.Segments))
	return h
}

// TerrainSegments returns a copy of the live terrain for rendering and
// placement queries.
func (g *Game) TerrainSegments() []Segment {
	out := make([]Segment, len(g.world.segments))
	copy(out, g.world.segments)
	return out
}
