package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChase loads the chase runner configuration.
// Search order: customPath -> ~/.chaserun/configs/chase.yaml -> ./configs/chase.yaml -> embedded default
func LoadChase(customPath string) (ChaseConfig, error) {
	var cfg ChaseConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("chase.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/chase.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultChaseYAML, &cfg); err != nil {
		return DefaultChaseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chaserun", "configs", filename)
}

// ApplyChasePreset modifies the config based on a difficulty preset.
// Presets shift the generation and pressure dials; "fixed" freezes the
// scroll ramp so the run never speeds up.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.World.GapChance = 0.10
		cfg.World.GapMaxW = 120
		cfg.Pursuer.LungeChance = 0.002
		cfg.Pursuer.LungePerPhase = 0.002
		cfg.Scroll.RampPerSec = 2.0
	case DifficultyHard:
		cfg.World.GapChance = 0.20
		cfg.World.GapMinW = 90
		cfg.Pursuer.LungeChance = 0.006
		cfg.Pursuer.LungePerPhase = 0.004
		cfg.Pursuer.ChaseFactorMax = 1.6
		cfg.Scroll.RampPerSec = 4.0
	case DifficultyFixed:
		cfg.Scroll.RampPerSec = 0
		cfg.Scroll.RepelBonus = 0
	case DifficultyNormal:
		// Defaults are the normal preset.
	}
}
