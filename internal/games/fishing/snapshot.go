package fishing

// FishState is the observable part of one fish.
type FishState struct {
	Pos, Row int
	Dir      Direction
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lives       int
	FishCaught  int
	HooksMissed int
	SpeedLevel  int
	BoatCol     int
	HookDepth   int
	HookPhase   HookPhase
	Overlay     Overlay
	Reason      EndReason
	Fish        []FishState
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	fish := make([]FishState, len(g.fish))
	for i, f := range g.fish {
		fish[i] = FishState{Pos: f.Pos, Row: f.Row, Dir: f.Dir}
	}
	return Snapshot{
		Tick:        g.tick,
		Score:       g.session.Score,
		Lives:       g.session.Lives,
		FishCaught:  g.session.FishCaught,
		HooksMissed: g.session.HooksMissed,
		SpeedLevel:  g.session.SpeedLevel,
		BoatCol:     g.boatCol,
		HookDepth:   g.hook.Depth,
		HookPhase:   g.hook.Phase,
		Overlay:     g.overlay,
		Reason:      g.reason,
		Fish:        fish,
	}
}
