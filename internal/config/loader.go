package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSimon loads Simon configuration.
// Search order: customPath -> ~/.simon/configs/simon.yaml -> ./configs/simon.yaml -> embedded default
func LoadSimon(customPath string) (SimonConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SimonConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSimon(data)
		if err != nil {
			return SimonConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("simon.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSimon(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/simon.yaml"); err == nil {
		if cfg, err := parseSimon(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSimon(defaultSimonYAML)
	if err != nil {
		return DefaultSimonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSimon decodes YAML on top of the hardcoded defaults, so a partial
// file only overrides the keys it names.
func parseSimon(data []byte) (SimonConfig, error) {
	cfg := DefaultSimonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SimonConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".simon", "configs", filename)
}

// ApplySimonPreset modifies the config based on a difficulty preset.
func ApplySimonPreset(cfg *SimonConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.HeadStart = 0
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.HeadStart = HeadStartForPreset(preset)

	// Easy slows the opening pace; the floors still apply as the game speeds up
	if preset == DifficultyEasy {
		cfg.Timing.FlashMs = 500
		cfg.Timing.PreSequencePauseMs = 900
		cfg.Timing.InterSignalPauseMs = 250
	}
}

// Marshal renders the config as YAML, used by `simon config`.
func Marshal(cfg SimonConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
