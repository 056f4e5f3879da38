package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in config directories.
const ConfigFile = "slingshot.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.slingshot/configs/slingshot.yaml ->
// ./configs/slingshot.yaml -> embedded default.
// Files are decoded over the defaults, so partial files are allowed.
func Load(customPath string) (SlingshotConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultSlingshotConfig(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", ConfigFile)); err == nil {
		return cfg, nil
	}

	cfg := DefaultSlingshotConfig()
	if err := yaml.Unmarshal(defaultSlingshotYAML, &cfg); err != nil {
		return DefaultSlingshotConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile(path string) (SlingshotConfig, error) {
	cfg := DefaultSlingshotConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a config file in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slingshot", "configs", filename)
}

// SaveDefault writes the embedded default configuration to path, creating
// parent directories as needed. Existing files are left untouched.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, defaultSlingshotYAML, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
