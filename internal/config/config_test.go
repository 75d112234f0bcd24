package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg FishingConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if want := DefaultFishingConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded default = %+v\nexpected %+v", cfg, want)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvStorageDriver, EnvDataDir, EnvTimeLimit, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestLoadCustomPathKeepsMissingDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "fishing.yaml")
	data := []byte("session:\n  time_limit_seconds: 45\nstorage:\n  driver: SQLite\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Session.TimeLimitSeconds != 45 {
		t.Errorf("TimeLimitSeconds = %d, expected 45", cfg.Session.TimeLimitSeconds)
	}
	if cfg.Session.Lives != 3 {
		t.Errorf("Lives = %d, expected default 3", cfg.Session.Lives)
	}
	if cfg.Storage.Driver != DriverSQLite {
		t.Errorf("Driver = %q, expected normalized %q", cfg.Storage.Driver, DriverSQLite)
	}
	if cfg.Pond.FishCount != 10 {
		t.Errorf("FishCount = %d, expected default 10", cfg.Pond.FishCount)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("session: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvStorageDriver: "sqlite",
		EnvDataDir:       "/tmp/pond",
		EnvTimeLimit:     "60",
		EnvLogLevel:      "debug",
	}
	cfg := DefaultFishingConfig()
	if err := ApplyEnv(&cfg, func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Storage.Driver != "sqlite" || cfg.Storage.Dir != "/tmp/pond" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Session.TimeLimitSeconds != 60 {
		t.Errorf("TimeLimitSeconds = %d, expected 60", cfg.Session.TimeLimitSeconds)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected debug", cfg.Log.Level)
	}

	env[EnvTimeLimit] = "soon"
	if err := ApplyEnv(&cfg, func(k string) string { return env[k] }); err == nil {
		t.Error("non-numeric time limit should fail")
	}
}

func TestNormalize(t *testing.T) {
	cfg := FishingConfig{
		Session: SessionConfig{TimeLimitSeconds: -5, Lives: 0},
		Speed:   SpeedConfig{Min: 0, Max: -1, Initial: 9},
		Pond:    PondConfig{MinStepInterval: 4, MaxStepInterval: 2},
	}
	cfg.Normalize()

	if cfg.Session.TimeLimitSeconds != 30 || cfg.Session.Lives != 3 {
		t.Errorf("session = %+v, expected defaults", cfg.Session)
	}
	if cfg.Speed.Min != 1 || cfg.Speed.Max != 1 || cfg.Speed.Initial != 1 {
		t.Errorf("speed = %+v, expected collapsed range [1,1]", cfg.Speed)
	}
	if cfg.Pond.MaxStepInterval != 4 {
		t.Errorf("MaxStepInterval = %d, expected 4", cfg.Pond.MaxStepInterval)
	}
	if cfg.Pond.Bands.Total() != 10 {
		t.Errorf("empty bands should fall back to defaults, got %+v", cfg.Pond.Bands)
	}
	if cfg.Storage.Driver != DriverFile || cfg.Storage.Dir != "." {
		t.Errorf("storage = %+v, expected defaults", cfg.Storage)
	}
}

func TestSpeedDial(t *testing.T) {
	cfg := DefaultFishingConfig()
	d := NewSpeedDial(cfg.Speed, cfg.Timing)

	if d.Initial() != 4 {
		t.Errorf("Initial() = %d, expected 4", d.Initial())
	}

	tests := []struct {
		level, slower, faster, points int
		delay                         time.Duration
	}{
		{1, 2, 1, 6, 10 * time.Millisecond},
		{4, 5, 3, 3, 40 * time.Millisecond},
		{6, 6, 5, 1, 60 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := d.Slower(tc.level); got != tc.slower {
			t.Errorf("Slower(%d) = %d, expected %d", tc.level, got, tc.slower)
		}
		if got := d.Faster(tc.level); got != tc.faster {
			t.Errorf("Faster(%d) = %d, expected %d", tc.level, got, tc.faster)
		}
		if got := d.Points(tc.level); got != tc.points {
			t.Errorf("Points(%d) = %d, expected %d", tc.level, got, tc.points)
		}
		if got := d.FrameDelay(tc.level); got != tc.delay {
			t.Errorf("FrameDelay(%d) = %v, expected %v", tc.level, got, tc.delay)
		}
	}

	if d.Points(1) <= d.Points(5) {
		t.Error("faster levels should be worth more per catch")
	}
	if d.PausedDelay() != 50*time.Millisecond {
		t.Errorf("PausedDelay() = %v", d.PausedDelay())
	}
}
