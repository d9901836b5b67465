package chase

import (
	"math"
	"testing"
)

func TestSpawnInterpolation(t *testing.T) {
	g := newTestGame(t, 13)
	g.cfg.Pursuer.LungeChance = 0
	g.cfg.Pursuer.LungePerPhase = 0
	startRun(g)

	c := g.cfg.Pursuer
	if g.pursuer.state != pursuerSpawning {
		t.Fatalf("state after start = %v, want spawning", g.pursuer.state)
	}

	// Halfway through the spawn the position is the exact midpoint.
	halfTicks := int(c.SpawnDuration / 2 / g.dt)
	for i := 0; i < halfTicks; i++ {
		g.Step(emptyFrame())
	}

	elapsed := float64(halfTicks) * g.dt
	want := c.SpawnFromX + (c.SpawnToX-c.SpawnFromX)*(elapsed/c.SpawnDuration)
	if math.Abs(g.pursuer.x-want) > 1e-6 {
		t.Errorf("mid-spawn x = %v, want %v", g.pursuer.x, want)
	}
	if g.pursuer.state != pursuerSpawning {
		t.Fatalf("state mid-spawn = %v, want spawning", g.pursuer.state)
	}

	// Completing the spawn lands exactly on the rest position in calm.
	total := int(c.SpawnDuration/g.dt) + 2
	for i := halfTicks; i < total; i++ {
		g.Step(emptyFrame())
	}
	if g.pursuer.state == pursuerSpawning {
		t.Fatal("spawn never completed")
	}
}

func TestSpawnEventFires(t *testing.T) {
	g := newTestGame(t, 13)
	g.cfg.Pursuer.LungeChance = 0
	g.cfg.Pursuer.LungePerPhase = 0

	spawned := 0
	g.SetEventHandler(func(e Event) {
		if e == EventPursuerSpawned {
			spawned++
		}
	})

	startRun(g)
	total := int(g.cfg.Pursuer.SpawnDuration/g.dt) + 2
	for i := 0; i < total; i++ {
		g.Step(emptyFrame())
	}

	if spawned != 1 {
		t.Errorf("pursuer spawned event fired %d times, want 1", spawned)
	}
}

func TestCatchAppliesDuringSpawn(t *testing.T) {
	g := newTestGame(t, 13)
	g.cfg.Pursuer.LungeChance = 0
	g.cfg.Pursuer.LungePerPhase = 0
	startRun(g)

	c := g.cfg.Pursuer
	// Park the runner at the lane minimum, inside the slide-in path near
	// its end. The next tick is still mid-spawn but already overlapping.
	g.runner.x = g.cfg.Runner.LaneMinX
	g.runner.vx = 0
	g.pursuer.stateElapsed = c.SpawnDuration - 2*g.dt

	g.Step(emptyFrame())

	if g.pursuer.state != pursuerSpawning {
		t.Fatalf("state = %v, want still spawning", g.pursuer.state)
	}
	if g.pursuer.x+g.pursuer.w <= g.runner.x {
		t.Fatalf("pursuer right edge %v never reached the runner at %v",
			g.pursuer.x+g.pursuer.w, g.runner.x)
	}
	if !g.State().GameOver {
		t.Fatal("overlap during the spawn slide-in did not end the run")
	}
}

func TestChaseFactorRamp(t *testing.T) {
	g := newTestGame(t, 13)
	c := g.cfg.Pursuer

	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, c.ChaseFactorMin},
		{c.ChaseRampTime / 2, (c.ChaseFactorMin + c.ChaseFactorMax) / 2},
		{c.ChaseRampTime, c.ChaseFactorMax},
		{c.ChaseRampTime * 3, c.ChaseFactorMax}, // Clamped at the asymptote
	}

	for _, tt := range tests {
		g.elapsed = tt.elapsed
		got := g.chaseFactor()
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("chaseFactor at %vs = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestPressurePhases(t *testing.T) {
	g := newTestGame(t, 13)
	c := g.cfg.Pursuer

	tests := []struct {
		elapsed   float64
		wantPhase int
	}{
		{0, 0},
		{c.PhaseThresholds[0] - 0.01, 0},
		{c.PhaseThresholds[0], 1},
		{c.PhaseThresholds[1], 2},
		{c.PhaseThresholds[2], 3},
		{c.PhaseThresholds[2] * 2, 3},
	}

	for _, tt := range tests {
		g.elapsed = tt.elapsed
		if got := g.pressurePhase(); got != tt.wantPhase {
			t.Errorf("pressurePhase at %vs = %d, want %d", tt.elapsed, got, tt.wantPhase)
		}
		wantMult := c.PhaseMultipliers[tt.wantPhase]
		if got := g.phaseMultiplier(); got != wantMult {
			t.Errorf("phaseMultiplier at %vs = %v, want %v", tt.elapsed, got, wantMult)
		}
	}
}

func TestDerivedSpeedNotStored(t *testing.T) {
	g := newTestGame(t, 13)
	startRun(g)

	g.scrollSpeed = 300
	g.elapsed = 0
	base := g.pursuerSpeed()

	g.scrollSpeed = 400
	faster := g.pursuerSpeed()

	if faster <= base {
		t.Errorf("speed did not follow scroll: %v -> %v", base, faster)
	}

	g.pursuer.state = pursuerLunging
	lunging := g.pursuerSpeed()
	if lunging <= faster {
		t.Errorf("lunge speed %v not above calm %v", lunging, faster)
	}
}

func TestLungeTriggersAndReverts(t *testing.T) {
	g := newTestGame(t, 13)
	startRun(g)

	// Force the trigger so the transition path itself is exercised.
	g.pursuer.state = pursuerCalm
	g.pursuer.x = g.cfg.Pursuer.SpawnToX
	g.cfg.Pursuer.LungeChance = 1
	g.cfg.Pursuer.LungePerPhase = 0

	g.Step(emptyFrame())
	if g.pursuer.state != pursuerLunging {
		t.Fatalf("state = %v, want lunging with chance 1", g.pursuer.state)
	}

	g.cfg.Pursuer.LungeChance = 0
	ticks := int(g.cfg.Pursuer.LungeDuration/g.dt) + 2
	for i := 0; i < ticks && g.phase == phaseRunning; i++ {
		g.Step(emptyFrame())
	}
	if g.phase == phaseRunning && g.pursuer.state != pursuerCalm {
		t.Errorf("state after lunge duration = %v, want calm", g.pursuer.state)
	}
}

func TestPushbackSuppressesAdvance(t *testing.T) {
	g := newTestGame(t, 13)
	startRun(g)

	g.pursuer.state = pursuerCalm
	g.pursuer.x = g.cfg.Pursuer.SpawnToX
	g.pursuer.pushedBack = 1.0
	g.cfg.Pursuer.LungeChance = 1 // Must not lunge while pushed back

	before := g.pursuer.x
	g.Step(emptyFrame())

	if g.pursuer.x >= before {
		t.Errorf("x = %v, want leftward drift from %v while pushed back", g.pursuer.x, before)
	}
	if g.pursuer.state != pursuerCalm {
		t.Errorf("state = %v, lunge triggered during pushback", g.pursuer.state)
	}
	if g.pursuer.pushedBack >= 1.0 {
		t.Error("pushback timer did not count down")
	}
}

func TestBobDoesNotAffectCollision(t *testing.T) {
	g := newTestGame(t, 13)
	startRun(g)

	g.pursuer.state = pursuerCalm
	g.pursuer.x = g.cfg.Pursuer.SpawnToX

	b := g.pursuer.bounds()
	g.pursuer.bobPhase = math.Pi / 2.0
	if g.pursuer.bounds() != b {
		t.Error("bob phase moved the collision box")
	}
	if g.pursuer.renderY(g.cfg.Pursuer.BobAmplitude) == g.pursuer.y {
		t.Error("render position ignores the bob")
	}
}
