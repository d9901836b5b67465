// Package chase implements the endless chase runner: a figure flees a
// pursuing entity across procedurally generated scrolling terrain, using a
// time-limited weapon to repel it. The simulation runs in a fixed virtual
// view of world pixels at a fixed clamped tick; the platform maps it to
// terminal cells.
package chase

import (
	"math"
	"math/rand"
	"time"

	"github.com/tuigames/chaserun/internal/config"
	"github.com/tuigames/chaserun/internal/core"
	"github.com/tuigames/chaserun/internal/registry"
)

func init() {
	registry.Register("chase", func() registry.Game {
		return New()
	})
}

// Package-level settings applied at Reset. Set by the CLI before the
// platform creates the game.
var (
	configPath string
	difficulty = config.DifficultyNormal
)

// SetConfigPath overrides the config search path with an explicit file.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty selects the preset applied on top of the loaded config.
func SetDifficulty(d config.DifficultyPreset) {
	difficulty = d
}

// lifecyclePhase is the coarse session state.
type lifecyclePhase int

const (
	phaseTitle lifecyclePhase = iota
	phaseRunning
	phaseOver
)

func (p lifecyclePhase) String() string {
	switch p {
	case phaseTitle:
		return "title"
	case phaseRunning:
		return "running"
	case phaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Game is the chase simulation context. All entities and counters live
// here; restart reinitializes them in place. Mutation happens only inside
// Step, so collaborators may read a snapshot between ticks.
type Game struct {
	cfg config.ChaseConfig
	rt  core.RuntimeConfig
	rng *rand.Rand
	dt  float64

	phase  lifecyclePhase
	paused bool

	clock   float64 // Simulated seconds since Reset, always advancing while running
	elapsed float64 // Seconds since the current run started

	camera      float64 // Monotonically non-decreasing world offset
	scrollSpeed float64

	runner  runner
	pursuer pursuer
	world   *world

	pickup           weaponPickup
	weaponSpawnTimer float64

	repels     int
	combo      int
	maxCombo   int
	comboTimer float64
	hitLatched bool

	bestTime int // Centiseconds, seeded from storage by the platform

	events func(Event)
}

// New creates an unstarted game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID implements registry.Game.
func (g *Game) ID() string { return "chase" }

// Title implements registry.Game.
func (g *Game) Title() string { return "Chase Run" }

// Reset initializes or reinitializes the whole simulation. The seed makes
// world generation and pursuer behavior reproducible; seed 0 falls back to
// wall clock for normal play.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt

	cfg, err := config.LoadChase(configPath)
	if err != nil {
		cfg = config.DefaultChaseConfig()
	}
	config.ApplyChasePreset(&cfg, difficulty)
	g.cfg = cfg

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	// The simulated step never exceeds ~33ms regardless of host timing.
	g.dt = math.Min(1.0/float64(tickRate), 1.0/30.0)

	g.world = newWorld(&g.cfg.World, g.rng)
	g.phase = phaseTitle
	g.paused = false
	g.clock = 0
	g.initRun()
}

// initRun places all entities for a fresh run. Shared by Reset and the
// restart transition; bestTime and the RNG survive it.
func (g *Game) initRun() {
	g.elapsed = 0
	g.camera = 0
	g.scrollSpeed = g.cfg.Scroll.BaseSpeed

	g.runner.reset(&g.cfg)
	g.pursuer.reset(g)
	g.world.reset(g.camera)

	g.pickup = weaponPickup{}
	g.weaponSpawnTimer = g.cfg.Combat.WeaponInterval

	g.repels = 0
	g.combo = 0
	g.maxCombo = 0
	g.comboTimer = 0
	g.hitLatched = false
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case phaseTitle:
		// World is visible but frozen except idle cosmetics.
		g.pursuer.bobPhase += 2 * math.Pi * g.cfg.Pursuer.BobRate * g.dt
		if in.Has(core.ActionStart) || in.Has(core.ActionJump) {
			g.phase = phaseRunning
			g.pursuer.beginSpawn()
		}

	case phaseOver:
		// Only restart is honored; it returns to title, not straight
		// into a run.
		if in.Has(core.ActionRestart) || in.Has(core.ActionStart) {
			g.initRun()
			g.phase = phaseTitle
		}

	case phaseRunning:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		g.tick(in)
	}

	return core.StepResult{State: g.State()}
}

// tick runs the fixed per-tick pipeline. Ordering is load-bearing: pickup
// resolves before combat, pursuer movement before the catch check, camera
// advance last.
func (g *Game) tick(in core.InputFrame) {
	g.clock += g.dt
	g.elapsed += g.dt

	g.world.extendGround(g.camera)
	g.world.extendPlatforms(g.camera)
	g.world.cleanup(g.camera)

	g.stepPhysics(in)
	if g.phase != phaseRunning {
		return
	}

	g.stepWeapon()

	g.stepPursuer()
	if g.phase != phaseRunning {
		return
	}

	g.stepCombat(in)

	// Scroll speed eases toward a target driven by elapsed time and repels.
	s := &g.cfg.Scroll
	target := math.Min(s.BaseSpeed+s.RampPerSec*g.elapsed+s.RepelBonus*float64(g.repels), s.MaxSpeed)
	g.scrollSpeed += (target - g.scrollSpeed) * math.Min(1, s.EaseRate*g.dt)
	g.camera += g.scrollSpeed * g.dt
}

// endRun transitions the session to over. Idempotent: detecting game over
// while already over is a no-op.
func (g *Game) endRun() {
	if g.phase == phaseOver {
		return
	}
	g.phase = phaseOver

	score := g.score()
	if score > g.bestTime {
		g.bestTime = score
	}
	g.emit(EventGameOver)
}

// score is survival time in centiseconds.
func (g *Game) score() int {
	return int(g.elapsed * 100)
}

// State implements registry.Game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.phase == phaseOver,
		Paused:   g.paused,
	}
}

// BestTime returns the best survival time seen this process, centiseconds.
func (g *Game) BestTime() int { return g.bestTime }

// SetBestTime seeds the in-memory best from persisted storage at boot.
// The in-memory value stays authoritative for the session.
func (g *Game) SetBestTime(centiseconds int) {
	if centiseconds > g.bestTime {
		g.bestTime = centiseconds
	}
}

// Repels returns the number of successful hits this run.
func (g *Game) Repels() int { return g.repels }

// MaxCombo returns the highest combo reached this run.
func (g *Game) MaxCombo() int { return g.maxCombo }
