package config

import "testing"

func TestLoadChaseEmbeddedDefaults(t *testing.T) {
	cfg, err := LoadChase("")
	if err != nil {
		t.Fatalf("LoadChase() failed: %v", err)
	}

	// The embedded YAML must agree with the hardcoded fallback on the
	// values the simulation depends on.
	def := DefaultChaseConfig()
	if cfg.Physics.Gravity != def.Physics.Gravity {
		t.Errorf("gravity = %f, expected %f", cfg.Physics.Gravity, def.Physics.Gravity)
	}
	if cfg.World.SegmentMinW != def.World.SegmentMinW || cfg.World.SegmentMaxW != def.World.SegmentMaxW {
		t.Errorf("segment width range = [%f, %f], expected [%f, %f]",
			cfg.World.SegmentMinW, cfg.World.SegmentMaxW, def.World.SegmentMinW, def.World.SegmentMaxW)
	}
	if len(cfg.Pursuer.PhaseMultipliers) != len(cfg.Pursuer.PhaseThresholds)+1 {
		t.Errorf("phase multipliers must have one more entry than thresholds, got %d vs %d",
			len(cfg.Pursuer.PhaseMultipliers), len(cfg.Pursuer.PhaseThresholds))
	}
	if cfg.Combat.ComboCap != 12 {
		t.Errorf("combo cap = %d, expected 12", cfg.Combat.ComboCap)
	}
}

func TestLoadChaseMissingCustomPath(t *testing.T) {
	if _, err := LoadChase("/nonexistent/chase.yaml"); err == nil {
		t.Error("explicit missing config path should fail loudly")
	}
}

func TestApplyChasePreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		check  func(t *testing.T, cfg ChaseConfig)
	}{
		{DifficultyEasy, func(t *testing.T, cfg ChaseConfig) {
			if cfg.World.GapChance >= DefaultChaseConfig().World.GapChance {
				t.Error("easy preset should lower gap chance")
			}
		}},
		{DifficultyHard, func(t *testing.T, cfg ChaseConfig) {
			if cfg.Pursuer.LungeChance <= DefaultChaseConfig().Pursuer.LungeChance {
				t.Error("hard preset should raise lunge chance")
			}
		}},
		{DifficultyFixed, func(t *testing.T, cfg ChaseConfig) {
			if cfg.Scroll.RampPerSec != 0 || cfg.Scroll.RepelBonus != 0 {
				t.Error("fixed preset should freeze the scroll ramp")
			}
		}},
		{DifficultyNormal, func(t *testing.T, cfg ChaseConfig) {
			if cfg.World.GapChance != DefaultChaseConfig().World.GapChance {
				t.Error("normal preset should keep defaults")
			}
		}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultChaseConfig()
			ApplyChasePreset(&cfg, tc.preset)
			tc.check(t, cfg)
		})
	}
}
