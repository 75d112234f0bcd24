package config

import (
	_ "embed"
)

//go:embed defaults/fishing.yaml
var defaultFishingYAML []byte

// DefaultFishingConfig returns the built-in configuration.
// It mirrors defaults/fishing.yaml and is used when the embedded file cannot be parsed.
func DefaultFishingConfig() FishingConfig {
	return FishingConfig{
		Session: SessionConfig{
			TimeLimitSeconds: 30,
			Lives:            3,
		},
		Speed: SpeedConfig{
			Min:     1,
			Max:     6,
			Initial: 4,
		},
		Timing: TimingConfig{
			BaseTickMs:   10,
			PausedTickMs: 50,
		},
		Pond: PondConfig{
			FishCount:       10,
			MinStepInterval: 1,
			MaxStepInterval: 6,
			Bands: BandWeights{
				Shallow: 4,
				Middle:  4,
				Deep:    2,
			},
		},
		Storage: StorageConfig{
			Driver: DriverFile,
			Dir:    ".",
		},
		Scores: ScoresConfig{
			MaxHighScores:  10,
			HistoryDisplay: 20,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFishingYAML
}
