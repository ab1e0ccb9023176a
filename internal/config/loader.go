package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the variants list.
// Search order: customPath -> ~/.tui2048/configs/variants.yaml -> ./configs/variants.yaml -> embedded default
func Load(customPath string) ([]Variant, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		variants, err := parseVariants(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return variants, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("variants.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if variants, err := parseVariants(data); err == nil {
				return variants, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/variants.yaml"); err == nil {
		if variants, err := parseVariants(data); err == nil {
			return variants, nil
		}
	}

	// Use embedded default YAML
	if variants, err := parseVariants(defaultVariantsYAML); err == nil {
		return variants, nil
	}
	return DefaultVariants(), nil // Fallback to hardcoded if embed fails
}

// parseVariants unmarshals a variants file and rejects lists a game
// could not start from.
func parseVariants(data []byte) ([]Variant, error) {
	var file VariantsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Variants) == 0 {
		return nil, fmt.Errorf("no variants defined")
	}
	for _, v := range file.Variants {
		if !v.Playable() {
			return nil, fmt.Errorf("variant %q has no playable rules", v.ID)
		}
	}
	return file.Variants, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui2048", "configs", filename)
}
