package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvStorageDriver = "FISHING_STORAGE_DRIVER"
	EnvDataDir       = "FISHING_DATA_DIR"
	EnvTimeLimit     = "FISHING_TIME_LIMIT"
	EnvLogLevel      = "FISHING_LOG_LEVEL"
)

// Load loads the fishing configuration.
// Search order: customPath -> ~/.fishing/config.yaml -> ./configs/fishing.yaml -> embedded default.
// Fields missing from the file keep their default values. Environment
// overrides are applied last and the result is normalized.
func Load(customPath string) (FishingConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	return cfg, nil
}

func loadFile(customPath string) (FishingConfig, error) {
	cfg := DefaultFishingConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "fishing.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultFishingConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFishingYAML, &cfg); err != nil {
		return DefaultFishingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ApplyEnv overlays environment overrides read through getenv.
func ApplyEnv(cfg *FishingConfig, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvStorageDriver)); v != "" {
		cfg.Storage.Driver = v
	}
	if v := strings.TrimSpace(getenv(EnvDataDir)); v != "" {
		cfg.Storage.Dir = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(getenv(EnvTimeLimit)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvTimeLimit, v, err)
		}
		cfg.Session.TimeLimitSeconds = n
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fishing", filename)
}
