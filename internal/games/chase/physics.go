package chase

import (
	"github.com/tuigames/chaserun/internal/config"
	"github.com/tuigames/chaserun/internal/core"
)

// runner holds the player figure's kinematic state. The x coordinate is
// camera-relative (the lane stays fixed on screen while the world scrolls),
// y is absolute in view space.
type runner struct {
	x, y   float64
	vx, vy float64
	w, h   float64

	onGround bool
	jumping  bool // A jump impulse is in flight and may still be cut
	jumpCut  bool

	coyoteTimer     float64
	jumpBufferTimer float64

	hasWeapon   bool
	weaponUntil float64

	attackUntil float64
	attackDir   direction
}

func (r *runner) reset(cfg *config.ChaseConfig) {
	*r = runner{
		x: cfg.Runner.SpawnX,
		y: cfg.World.GroundY - cfg.Runner.Height,
		w: cfg.Runner.Width,
		h: cfg.Runner.Height,
	}
	r.onGround = true
	r.coyoteTimer = cfg.Physics.CoyoteTime
}

// bounds returns the runner's box in camera-relative coordinates.
func (r *runner) bounds() core.RectF {
	return core.NewRectF(r.x, r.y, r.w, r.h)
}

// worldBounds returns the runner's box in world coordinates.
func (r *runner) worldBounds(camera float64) core.RectF {
	return core.NewRectF(camera+r.x, r.y, r.w, r.h)
}

// stepPhysics advances the runner one tick: horizontal acceleration and
// damping, gravity, integration, lane clamp, then landing resolution
// against the live terrain. onGround is false by default and only a
// qualifying landing this tick sets it.
func (g *Game) stepPhysics(in core.InputFrame) {
	r := &g.runner
	p := &g.cfg.Physics
	dt := g.dt

	// Horizontal: held-direction acceleration, mode-dependent damping and cap.
	dir := float64(in.HeldDir())
	r.vx += dir * p.MoveAccel * dt
	if r.onGround {
		r.vx *= p.GroundDamping
		r.vx = core.ClampF(r.vx, -p.MaxRunSpeed, p.MaxRunSpeed)
	} else {
		r.vx *= p.AirDamping
		r.vx = core.ClampF(r.vx, -p.MaxAirSpeed, p.MaxAirSpeed)
	}

	// A jump press is remembered for a short buffer; it is consumed on
	// acceptance, not on press.
	if in.Has(core.ActionJump) {
		r.jumpBufferTimer = p.JumpBuffer
	}

	// Vertical: constant gravity up to terminal velocity.
	r.vy += p.Gravity * dt
	if r.vy > p.MaxFallSpeed {
		r.vy = p.MaxFallSpeed
	}

	prevBottom := r.y + r.h

	r.x += r.vx * dt
	r.y += r.vy * dt

	// The lane clamp keeps the figure in a readable band while the world
	// scrolls past. Genre constraint, not a collision response.
	clamped := core.ClampF(r.x, g.cfg.Runner.LaneMinX, g.cfg.Runner.LaneMaxX-r.w)
	if clamped != r.x {
		r.x = clamped
		r.vx = 0
	}

	// Landing resolution. Recomputed from scratch every tick.
	r.onGround = false
	bottom := r.y + r.h
	worldLeft := g.camera + r.x
	worldRight := worldLeft + r.w
	for _, s := range g.world.segments {
		if worldRight <= s.X || worldLeft >= s.Right() {
			continue
		}
		if prevBottom > s.Y+1 || r.vy < 0 {
			continue
		}
		if bottom < s.Y || bottom > s.Y+p.LandingSkin {
			continue
		}
		r.y = s.Y - r.h
		r.vy = 0
		r.onGround = true
		r.jumping = false
		r.jumpCut = false
		r.coyoteTimer = p.CoyoteTime
		break
	}

	// Jump executes only when a buffered press meets an open coyote window.
	if r.jumpBufferTimer > 0 && r.coyoteTimer > 0 {
		r.vy = p.JumpImpulse
		r.onGround = false
		r.jumping = true
		r.jumpCut = false
		r.jumpBufferTimer = 0
		r.coyoteTimer = 0
		g.emit(EventJump)
	}

	// Releasing the jump key while still ascending trims the arc once.
	if r.jumping && !r.jumpCut && r.vy < 0 && !in.IsHeld(core.ActionJump) {
		r.vy *= p.JumpCutFactor
		r.jumpCut = true
	}

	if r.jumpBufferTimer > 0 {
		r.jumpBufferTimer -= dt
	}
	if !r.onGround && r.coyoteTimer > 0 {
		r.coyoteTimer -= dt
	}

	// Falling past the bottom of the world ends the run.
	if r.y > g.cfg.World.ViewH+p.VoidMargin {
		g.endRun()
	}
}
