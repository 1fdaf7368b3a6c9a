package main

import "github.com/heroiclabs/nakama-common/runtime"

// Phase represents the lifecycle stage of an arena match.
type Phase string

const (
	// PhaseCountdown is the pre-round state before the fight starts.
	PhaseCountdown Phase = "countdown"
	// PhaseFighting is the active state where damage lands and KOs are checked.
	PhaseFighting Phase = "fighting"
	// PhaseKo is the post-knockout state before the next round or match end.
	PhaseKo Phase = "ko"
	// PhaseFinished is the terminal state after a fighter wins the match.
	PhaseFinished Phase = "finished"
)

// Vec3 is a stage position. Y is vertical, Z is stage depth.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// FighterState tracks server-side state for one of the two fighters.
type FighterState struct {
	UserID   string
	Presence runtime.Presence
	Slot     int // 1 or 2 externally

	Health int
	Pos    Vec3
	Action string // behavioral state, e.g. "idle", "fighting", "ko"
}

// MatchState holds authoritative state for an arena match instance.
type MatchState struct {
	Settings Settings

	Phase       Phase
	RoundNumber int
	RoundWins   [2]int // round wins per slot, index 0 => slot 1

	// Fighter slots. A nil entry is an unresolved reference: phase polling
	// becomes a no-op and round resets skip that slot.
	Fighters [2]*FighterState

	// Tick timers for the transitions the fighters don't drive themselves:
	// countdown to fight start, and the post-KO delay before the next round.
	CountdownTicks int
	InterludeTicks int

	// Consecutive ticks with no fighter present.
	EmptyTicks int
}

// Label is the match label advertised for quick-match queries.
type Label struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}
