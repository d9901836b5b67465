package chase

import (
	"math"

	"github.com/tuigames/chaserun/internal/core"
)

// pursuerState is the entity's coarse behavior phase.
type pursuerState int

const (
	pursuerIdle pursuerState = iota // Before the run starts; off screen, inert
	pursuerSpawning
	pursuerCalm
	pursuerLunging
)

func (s pursuerState) String() string {
	switch s {
	case pursuerIdle:
		return "idle"
	case pursuerSpawning:
		return "spawning"
	case pursuerCalm:
		return "calm"
	case pursuerLunging:
		return "lunging"
	default:
		return "unknown"
	}
}

// pursuer is the chasing entity. Its x coordinate is camera-relative like
// the runner's. Speed is derived every tick from the scroll speed, never
// stored as authoritative state.
type pursuer struct {
	x, y float64
	w, h float64

	state        pursuerState
	stateElapsed float64
	lungeTimer   float64
	pushedBack   float64 // Remaining advance suppression, s
	bobPhase     float64
}

func (p *pursuer) reset(g *Game) {
	*p = pursuer{
		x:     g.cfg.Pursuer.SpawnFromX,
		y:     g.cfg.World.GroundY - g.cfg.Pursuer.Height,
		w:     g.cfg.Pursuer.Width,
		h:     g.cfg.Pursuer.Height,
		state: pursuerIdle,
	}
}

// beginSpawn starts the slide-in from off screen. Called when the session
// transitions to running.
func (p *pursuer) beginSpawn() {
	p.state = pursuerSpawning
	p.stateElapsed = 0
	p.pushedBack = 0
}

// bounds returns the collision box. The decorative bob does not move it.
func (p *pursuer) bounds() core.RectF {
	return core.NewRectF(p.x, p.y, p.w, p.h)
}

// renderY is the drawn vertical position including the bob.
func (p *pursuer) renderY(amplitude float64) float64 {
	return p.y + amplitude*math.Sin(p.bobPhase)
}

// chaseFactor rises monotonically with elapsed run time toward its asymptote.
func (g *Game) chaseFactor() float64 {
	c := &g.cfg.Pursuer
	return core.Lerp(c.ChaseFactorMin, c.ChaseFactorMax, g.elapsed/c.ChaseRampTime)
}

// pressurePhase counts how many elapsed-time thresholds the run has crossed.
func (g *Game) pressurePhase() int {
	phase := 0
	for _, t := range g.cfg.Pursuer.PhaseThresholds {
		if g.elapsed >= t {
			phase++
		}
	}
	return phase
}

func (g *Game) phaseMultiplier() float64 {
	mults := g.cfg.Pursuer.PhaseMultipliers
	if len(mults) == 0 {
		return 1
	}
	phase := core.Min(g.pressurePhase(), len(mults)-1)
	return mults[phase]
}

// pursuerSpeed derives the chase speed for this tick.
func (g *Game) pursuerSpeed() float64 {
	speed := g.scrollSpeed * g.chaseFactor() * g.phaseMultiplier()
	if g.pursuer.state == pursuerLunging {
		speed *= g.cfg.Pursuer.LungeSpeedMult
	}
	return speed
}

// stepPursuer advances the pursuer state machine and checks the catch
// condition. Movement resolves before the catch check so a lunge landing
// on the runner ends the run in the same tick.
func (g *Game) stepPursuer() {
	p := &g.pursuer
	c := &g.cfg.Pursuer
	dt := g.dt

	p.bobPhase += 2 * math.Pi * c.BobRate * dt

	switch p.state {
	case pursuerIdle:
		return

	case pursuerSpawning:
		p.stateElapsed += dt
		t := p.stateElapsed / c.SpawnDuration
		p.x = core.Lerp(c.SpawnFromX, c.SpawnToX, t)
		if p.stateElapsed >= c.SpawnDuration {
			p.x = c.SpawnToX
			p.state = pursuerCalm
			p.stateElapsed = 0
			g.emit(EventPursuerSpawned)
		}
		// Overlap is fatal during the slide-in as well.
		if p.bounds().Intersects(g.runner.bounds()) {
			g.endRun()
		}
		return

	case pursuerCalm:
		chance := c.LungeChance + c.LungePerPhase*float64(g.pressurePhase())
		if p.pushedBack <= 0 && g.rng.Float64() < chance {
			p.state = pursuerLunging
			p.lungeTimer = c.LungeDuration
		}

	case pursuerLunging:
		p.lungeTimer -= dt
		if p.lungeTimer <= 0 {
			p.state = pursuerCalm
		}
	}

	if p.pushedBack > 0 {
		// Knockback recovery: forward advance is suppressed and the
		// entity drifts left relative to the screen.
		p.pushedBack -= dt
		p.x -= c.PushbackDrift * dt
	} else {
		// Both entities live in camera-relative space, so the net screen
		// drift is the speed difference against the scroll. Below a chase
		// factor of 1 the pursuer loses ground, above it it closes in.
		p.x += (g.pursuerSpeed() - g.scrollSpeed) * dt
	}

	if p.x < c.SpawnFromX {
		p.x = c.SpawnFromX
	}

	if p.bounds().Intersects(g.runner.bounds()) {
		g.endRun()
	}
}
