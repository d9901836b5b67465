package chase

import (
	"github.com/tuigames/chaserun/internal/core"
)

// direction is the latched cardinal direction of an attack.
type direction int

const (
	dirNone direction = iota
	dirLeft
	dirRight
	dirUp
	dirDown
)

func (d direction) String() string {
	switch d {
	case dirLeft:
		return "left"
	case dirRight:
		return "right"
	case dirUp:
		return "up"
	case dirDown:
		return "down"
	default:
		return "none"
	}
}

// weaponPickup is the single collectible instance, in world coordinates.
type weaponPickup struct {
	x, y   float64
	size   float64
	active bool
}

func (p weaponPickup) bounds() core.RectF {
	return core.NewRectF(p.x, p.y, p.size, p.size)
}

// stepWeapon handles pickup spawning, collection, and expiry, in that
// order. Collection rearms the expiry timestamp before the expiry check
// runs, so a pickup on the same tick as a stale expiry always wins.
func (g *Game) stepWeapon() {
	c := &g.cfg.Combat
	r := &g.runner

	// A pickup the runner sailed past is unreachable once it falls far
	// enough behind the camera. Retire it so the interval can respawn.
	if g.pickup.active && g.pickup.x+g.pickup.size < g.camera-g.cfg.World.PlatformRetention {
		g.pickup.active = false
	}

	// Interval timer drops a pickup on a forward platform, or at a
	// fallback ground position when none is generated yet.
	g.weaponSpawnTimer -= g.dt
	if g.weaponSpawnTimer <= 0 && !g.pickup.active {
		g.spawnPickup()
		g.weaponSpawnTimer = c.WeaponInterval
	}

	if g.pickup.active && g.pickup.bounds().Intersects(r.worldBounds(g.camera)) {
		g.pickup.active = false
		r.hasWeapon = true
		duration := c.WeaponDuration
		if g.rng.Float64() < c.WeaponLongChance {
			duration = c.WeaponLongDuration
		}
		r.weaponUntil = g.clock + duration
		g.emit(EventWeaponPickup)
	}

	if r.hasWeapon && g.clock > r.weaponUntil {
		r.hasWeapon = false
		r.attackUntil = 0
		r.attackDir = dirNone
		g.combo = 0
		g.comboTimer = 0
	}
}

func (g *Game) spawnPickup() {
	c := &g.cfg.Combat
	ahead := g.camera + g.cfg.World.ViewW

	if s, ok := g.world.forwardPlatform(ahead); ok {
		g.pickup = weaponPickup{
			x:      s.X + s.W/2 - c.PickupSize/2,
			y:      s.Y - c.PickupSize,
			size:   c.PickupSize,
			active: true,
		}
		return
	}
	// Fallback: rest it on the ground line just past the right view edge.
	g.pickup = weaponPickup{
		x:      ahead + 80,
		y:      g.cfg.World.GroundY - c.PickupSize,
		size:   c.PickupSize,
		active: true,
	}
}

// stepCombat triggers attacks and resolves hits for the active window.
func (g *Game) stepCombat(in core.InputFrame) {
	c := &g.cfg.Combat
	r := &g.runner

	// An attack needs the weapon and no window still in flight.
	if in.Has(core.ActionAttack) && r.hasWeapon && g.clock >= r.attackUntil {
		r.attackDir = g.aimAtPursuer()
		r.attackUntil = g.clock + c.AttackWindow
		g.hitLatched = false
	}

	if r.attackUntil > g.clock && !g.hitLatched {
		hit := g.attackVolume()
		if hit.Intersects(g.pursuer.bounds()) {
			g.hitLatched = true
			g.applyHit()
		}
	}

	// Combo decays to zero exactly once after the window closes.
	if g.combo > 0 {
		g.comboTimer -= g.dt
		if g.comboTimer <= 0 {
			g.combo = 0
			g.comboTimer = 0
		}
	}
}

// aimAtPursuer latches the attack direction from the runner-to-pursuer
// center vector: the dominant axis picks horizontal vs vertical, its sign
// picks the cardinal.
func (g *Game) aimAtPursuer() direction {
	rb := g.runner.bounds()
	pb := g.pursuer.bounds()
	dx := pb.CenterX() - rb.CenterX()
	dy := pb.CenterY() - rb.CenterY()

	if absF(dx) >= absF(dy) {
		if dx < 0 {
			return dirLeft
		}
		return dirRight
	}
	if dy < 0 {
		return dirUp
	}
	return dirDown
}

// attackVolume builds the hit box offset from the runner in the latched
// direction. Horizontal swings reach ReachX out and ReachY tall; vertical
// swings are the transpose.
func (g *Game) attackVolume() core.RectF {
	c := &g.cfg.Combat
	r := &g.runner

	switch r.attackDir {
	case dirLeft:
		return core.NewRectF(r.x-c.ReachX, r.y+(r.h-c.ReachY)/2, c.ReachX, c.ReachY)
	case dirRight:
		return core.NewRectF(r.x+r.w, r.y+(r.h-c.ReachY)/2, c.ReachX, c.ReachY)
	case dirUp:
		return core.NewRectF(r.x+(r.w-c.ReachY)/2, r.y-c.ReachX, c.ReachY, c.ReachX)
	case dirDown:
		return core.NewRectF(r.x+(r.w-c.ReachY)/2, r.y+r.h, c.ReachY, c.ReachX)
	default:
		return core.RectF{}
	}
}

// applyHit registers a successful repel: combo and counters update, the
// pursuer is knocked back by a combo-scaled distance and suppressed for a
// combo-scaled duration.
func (g *Game) applyHit() {
	c := &g.cfg.Combat

	g.repels++
	if g.combo < c.ComboCap {
		g.combo++
	}
	if g.combo > g.maxCombo {
		g.maxCombo = g.combo
	}
	g.comboTimer = c.ComboWindow

	p := &g.pursuer
	p.x -= c.KnockbackBase + c.KnockbackPerCombo*float64(g.combo)
	if p.x < g.cfg.Pursuer.SpawnFromX {
		p.x = g.cfg.Pursuer.SpawnFromX
	}
	p.pushedBack = c.PushbackBase + c.PushbackPerCombo*float64(g.combo)
	if p.state == pursuerLunging {
		p.state = pursuerCalm
		p.lungeTimer = 0
	}

	g.emit(EventHit)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
