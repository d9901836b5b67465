package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default chase runner configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Physics: PhysicsConfig{
			Gravity:       1100,
			JumpImpulse:   -520,
			JumpCutFactor: 0.45,
			MoveAccel:     1900,
			GroundDamping: 0.82,
			AirDamping:    0.93,
			MaxRunSpeed:   260,
			MaxAirSpeed:   290,
			MaxFallSpeed:  900,
			CoyoteTime:    0.12,
			JumpBuffer:    0.12,
			LandingSkin:   16,
			VoidMargin:    80,
		},
		Runner: RunnerConfig{
			Width:    34,
			Height:   44,
			SpawnX:   140,
			LaneMinX: 60,
			LaneMaxX: 420,
		},
		World: WorldConfig{
			ViewW:             960,
			ViewH:             540,
			GroundY:           460,
			GroundThickness:   80,
			Lookahead:         400,
			GroundRetention:   700,
			PlatformRetention: 350,
			GapChance:         0.15,
			SegmentMinW:       220,
			SegmentMaxW:       420,
			GapMinW:           70,
			GapMaxW:           150,
			PlatformMinW:      90,
			PlatformMaxW:      170,
			PlatformThickness: 14,
			PlatformMinY:      180,
			PlatformMargin:    60,
			MoodRunMin:        3,
			MoodRunMax:        7,
			MoodEasy:          MoodConfig{DeltaYMin: -30, DeltaYMax: 30, GapMin: 40, GapMax: 110},
			MoodStairs:        MoodConfig{DeltaYMin: -70, DeltaYMax: -25, GapMin: 50, GapMax: 100},
			MoodGaps:          MoodConfig{DeltaYMin: -40, DeltaYMax: 40, GapMin: 120, GapMax: 200},
		},
		Pursuer: PursuerConfig{
			Width:            52,
			Height:           50,
			SpawnDuration:    2.2,
			SpawnFromX:       -260,
			SpawnToX:         26,
			ChaseFactorMin:   0.78,
			ChaseFactorMax:   1.45,
			ChaseRampTime:    90,
			PhaseThresholds:  []float64{18, 45, 90},
			PhaseMultipliers: []float64{1.0, 1.12, 1.25, 1.4},
			LungeChance:      0.004,
			LungePerPhase:    0.003,
			LungeDuration:    0.55,
			LungeSpeedMult:   3.2,
			PushbackDrift:    140,
			BobAmplitude:     10,
			BobRate:          2.6,
		},
		Combat: CombatConfig{
			AttackWindow:       0.14,
			ReachX:             58,
			ReachY:             46,
			ComboWindow:        1.2,
			ComboCap:           12,
			KnockbackBase:      90,
			KnockbackPerCombo:  22,
			PushbackBase:       0.35,
			PushbackPerCombo:   0.06,
			WeaponDuration:     10,
			WeaponLongDuration: 16,
			WeaponLongChance:   0.08,
			WeaponInterval:     20,
			PickupSize:         22,
		},
		Scroll: ScrollConfig{
			BaseSpeed:  220,
			RampPerSec: 3.0,
			RepelBonus: 4.0,
			MaxSpeed:   520,
			EaseRate:   1.8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chase":
		return defaultChaseYAML
	default:
		return nil
	}
}
