package config

import "time"

// SpeedDial maps the player's speed level to frame delay and catch value.
// A higher level means a longer frame and fewer points.
type SpeedDial struct {
	speed  SpeedConfig
	timing TimingConfig
}

// NewSpeedDial creates a dial over the given range and tick timing.
func NewSpeedDial(speed SpeedConfig, timing TimingConfig) SpeedDial {
	return SpeedDial{speed: speed, timing: timing}
}

// Initial returns the starting level.
func (d SpeedDial) Initial() int {
	return d.Clamp(d.speed.Initial)
}

// Min returns the fastest level.
func (d SpeedDial) Min() int { return d.speed.Min }

// Max returns the slowest level.
func (d SpeedDial) Max() int { return d.speed.Max }

// Clamp restricts a level to the configured range.
func (d SpeedDial) Clamp(level int) int {
	return min(max(level, d.speed.Min), d.speed.Max)
}

// Slower returns the next slower level, saturating at Max.
func (d SpeedDial) Slower(level int) int {
	return d.Clamp(level + 1)
}

// Faster returns the next faster level, saturating at Min.
func (d SpeedDial) Faster(level int) int {
	return d.Clamp(level - 1)
}

// Points returns the score for one catch at the given level.
// The slowest level is worth 1; each faster step adds one.
func (d SpeedDial) Points(level int) int {
	return (d.speed.Max - d.Clamp(level)) + 1
}

// FrameDelay returns how long a playing frame lasts at the given level.
func (d SpeedDial) FrameDelay(level int) time.Duration {
	return time.Duration(d.Clamp(level)*d.timing.BaseTickMs) * time.Millisecond
}

// PausedDelay returns the tick length while the game is suspended.
func (d SpeedDial) PausedDelay() time.Duration {
	return time.Duration(d.timing.PausedTickMs) * time.Millisecond
}
