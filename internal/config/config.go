// Package config provides YAML-based configuration loading and the speed
// dial for the fishing game.
package config

import "strings"

// FishingConfig contains all configuration for the fishing game.
type FishingConfig struct {
	Session SessionConfig `yaml:"session"`
	Speed   SpeedConfig   `yaml:"speed"`
	Timing  TimingConfig  `yaml:"timing"`
	Pond    PondConfig    `yaml:"pond"`
	Storage StorageConfig `yaml:"storage"`
	Scores  ScoresConfig  `yaml:"scores"`
	Log     LogConfig     `yaml:"log"`
}

// SessionConfig defines the limits of one game.
type SessionConfig struct {
	TimeLimitSeconds int `yaml:"time_limit_seconds"`
	Lives            int `yaml:"lives"`
}

// SpeedConfig defines the speed dial range.
type SpeedConfig struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Initial int `yaml:"initial"`
}

// TimingConfig defines the tick durations in milliseconds.
type TimingConfig struct {
	BaseTickMs   int `yaml:"base_tick_ms"`
	PausedTickMs int `yaml:"paused_tick_ms"`
}

// PondConfig defines the fish population.
type PondConfig struct {
	FishCount       int         `yaml:"fish_count"`
	MinStepInterval int         `yaml:"min_step_interval"`
	MaxStepInterval int         `yaml:"max_step_interval"`
	Bands           BandWeights `yaml:"bands"`
}

// BandWeights is the share of the initial fish placed in each depth band.
type BandWeights struct {
	Shallow int `yaml:"shallow"`
	Middle  int `yaml:"middle"`
	Deep    int `yaml:"deep"`
}

// Total returns the sum of all weights.
func (b BandWeights) Total() int {
	return b.Shallow + b.Middle + b.Deep
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `yaml:"driver"` // "file" or "sqlite"
	Dir    string `yaml:"dir"`
}

// ScoresConfig defines table sizes.
type ScoresConfig struct {
	MaxHighScores  int `yaml:"max_high_scores"`
	HistoryDisplay int `yaml:"history_display"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Storage drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Normalize clamps nonsensical values into a playable configuration.
// Zero values fall back to the defaults.
func (c *FishingConfig) Normalize() {
	d := DefaultFishingConfig()

	if c.Session.TimeLimitSeconds < 1 {
		c.Session.TimeLimitSeconds = d.Session.TimeLimitSeconds
	}
	if c.Session.Lives < 1 {
		c.Session.Lives = d.Session.Lives
	}

	if c.Speed.Min < 1 {
		c.Speed.Min = 1
	}
	if c.Speed.Max < c.Speed.Min {
		c.Speed.Max = c.Speed.Min
	}
	if c.Speed.Initial == 0 {
		c.Speed.Initial = d.Speed.Initial
	}
	c.Speed.Initial = min(max(c.Speed.Initial, c.Speed.Min), c.Speed.Max)

	if c.Timing.BaseTickMs < 1 {
		c.Timing.BaseTickMs = d.Timing.BaseTickMs
	}
	if c.Timing.PausedTickMs < 1 {
		c.Timing.PausedTickMs = d.Timing.PausedTickMs
	}

	if c.Pond.FishCount < 1 {
		c.Pond.FishCount = d.Pond.FishCount
	}
	if c.Pond.MinStepInterval < 1 {
		c.Pond.MinStepInterval = 1
	}
	if c.Pond.MaxStepInterval < c.Pond.MinStepInterval {
		c.Pond.MaxStepInterval = c.Pond.MinStepInterval
	}
	b := &c.Pond.Bands
	b.Shallow, b.Middle, b.Deep = max(0, b.Shallow), max(0, b.Middle), max(0, b.Deep)
	if b.Total() == 0 {
		*b = d.Pond.Bands
	}

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = d.Storage.Driver
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = d.Storage.Dir
	}

	if c.Scores.MaxHighScores < 1 {
		c.Scores.MaxHighScores = d.Scores.MaxHighScores
	}
	if c.Scores.HistoryDisplay < 1 {
		c.Scores.HistoryDisplay = d.Scores.HistoryDisplay
	}

	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
