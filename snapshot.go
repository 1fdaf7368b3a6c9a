package main

import "encoding/json"

// FighterSnapshot is the exported view of one fighter slot.
type FighterSnapshot struct {
	UserID string `json:"user_id"`
	Slot   int    `json:"slot"`
	Health int    `json:"health"`
	Pos    Vec3   `json:"pos"`
	Action string `json:"action"`
}

// Snapshot is the read-only state export consumed by clients and by
// out-of-band signal queries. It is a detached copy: mutating match state
// after the fact never changes a snapshot already taken.
type Snapshot struct {
	Phase       Phase             `json:"phase"`
	RoundNumber int               `json:"round_number"`
	RoundWins   [2]int            `json:"round_wins"`
	TimerTicks  int               `json:"timer_ticks"` // remaining countdown or interlude
	Fighters    []FighterSnapshot `json:"fighters"`
}

// buildSnapshot copies the exported fields out of the match state. Empty
// fighter slots are omitted.
func buildSnapshot(s *MatchState) Snapshot {
	snap := Snapshot{
		Phase:       s.Phase,
		RoundNumber: s.RoundNumber,
		RoundWins:   s.RoundWins,
	}
	switch s.Phase {
	case PhaseCountdown:
		snap.TimerTicks = s.CountdownTicks
	case PhaseKo:
		snap.TimerTicks = s.InterludeTicks
	}
	for _, f := range s.Fighters {
		if f == nil {
			continue
		}
		snap.Fighters = append(snap.Fighters, FighterSnapshot{
			UserID: f.UserID,
			Slot:   f.Slot,
			Health: f.Health,
			Pos:    f.Pos,
			Action: f.Action,
		})
	}
	return snap
}

func buildLabel(s *MatchState) string {
	open := s.Phase == PhaseCountdown && !bothResolved(s)
	b, _ := json.Marshal(Label{Open: open, Game: "clawdarena", Phase: string(s.Phase)})
	return string(b)
}
