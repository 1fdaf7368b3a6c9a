package main

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Ticks without any fighter present before the match shuts itself down.
const emptyMatchGraceTicks = 600

// ArenaMatch implements Nakama's runtime.Match interface for a 1v1 arena
// fight. All match state lives in the *MatchState threaded through each
// callback; the runtime invokes one callback at a time.
type ArenaMatch struct{}

// MatchInit boots a new arena match in the first round's countdown.
func (m *ArenaMatch) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	state := newMatchState(parseSettings(params))
	return state, 30, buildLabel(state)
}

// MatchJoinAttempt validates whether a presence is allowed to join.
func (m *ArenaMatch) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {

	s := state.(*MatchState)

	// Reconnects keep their slot.
	if fighterByUserID(s, presence.GetUserId()) != nil {
		return state, true, ""
	}
	if s.Phase == PhaseFinished {
		return state, false, "match_over"
	}
	if bothResolved(s) {
		return state, false, "match_full"
	}
	return state, true, ""
}

// MatchJoin assigns joining presences to fighter slots and places them at
// their spawn points.
func (m *ArenaMatch) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s := state.(*MatchState)

	for _, p := range presences {
		uid := p.GetUserId()

		if existing := fighterByUserID(s, uid); existing != nil {
			existing.Presence = p
			continue
		}

		slot := freeSlot(s)
		if slot == 0 {
			continue
		}
		s.Fighters[slot-1] = &FighterState{
			UserID:   uid,
			Presence: p,
			Slot:     slot,
			Health:   s.Settings.FullHealth,
			Pos:      s.Settings.spawnFor(slot),
			Action:   ActionIdle,
		}

		evt, _ := json.Marshal(map[string]any{"user_id": uid, "slot": slot})
		_ = dispatcher.BroadcastMessage(OpFighterJoined, evt, nil, nil, true)
	}

	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	return state
}

// MatchLeave frees the leaver's slot. Once the match is underway, leaving
// forfeits it to the remaining fighter; during the first round's countdown
// the slot simply reopens.
func (m *ArenaMatch) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s := state.(*MatchState)

	for _, p := range presences {
		uid := p.GetUserId()
		pl := fighterByUserID(s, uid)
		if pl == nil {
			continue
		}

		underway := matchUnderway(s)
		s.Fighters[pl.Slot-1] = nil

		evt, _ := json.Marshal(map[string]any{"user_id": uid, "slot": pl.Slot})
		_ = dispatcher.BroadcastMessage(OpFighterLeft, evt, nil, nil, true)

		opp := fighterInSlot(s, 3-pl.Slot)
		if underway && opp != nil {
			s.Phase = PhaseFinished
			logger.Info("forfeit: slot %d left in round %d", pl.Slot, s.RoundNumber)

			end, _ := json.Marshal(map[string]any{
				"winner_slot": opp.Slot,
				"round_wins":  s.RoundWins,
				"forfeit":     true,
			})
			_ = dispatcher.BroadcastMessage(OpMatchFinished, end, nil, nil, true)
		}
	}

	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	return state
}

// MatchLoop runs once per tick: apply incoming hit reports, poll for KOs,
// advance the countdown/interlude timers, and export the state snapshot.
func (m *ArenaMatch) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {

	s := state.(*MatchState)

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpDealDamage:
			handleDealDamage(logger, dispatcher, s, msg)
		}
	}

	resolveKo(logger, dispatcher, s)

	if tickCountdown(s) {
		evt, _ := json.Marshal(map[string]any{"round": s.RoundNumber})
		_ = dispatcher.BroadcastMessage(OpFightStarted, evt, nil, nil, true)
		_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	}
	if tickInterlude(s) {
		evt, _ := json.Marshal(map[string]any{"round": s.RoundNumber})
		_ = dispatcher.BroadcastMessage(OpRoundStarted, evt, nil, nil, true)
		_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	}

	if s.Fighters[0] == nil && s.Fighters[1] == nil {
		s.EmptyTicks++
		if s.EmptyTicks >= emptyMatchGraceTicks {
			return nil
		}
		return state
	}
	s.EmptyTicks = 0

	snap, _ := json.Marshal(buildSnapshot(s))
	_ = dispatcher.BroadcastMessage(OpStateSnapshot, snap, nil, nil, false)

	return state
}

// MatchTerminate runs on match shutdown; no finalization is needed.
func (m *ArenaMatch) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	return state
}

// MatchSignal answers out-of-band state queries with a snapshot, for
// consumers that poll instead of listening to the per-tick broadcast.
func (m *ArenaMatch) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	s := state.(*MatchState)
	snap, _ := json.Marshal(buildSnapshot(s))
	return state, string(snap)
}

/* ---- helpers ---- */

func fighterByUserID(s *MatchState, uid string) *FighterState {
	for _, f := range s.Fighters {
		if f != nil && f.UserID == uid {
			return f
		}
	}
	return nil
}

func freeSlot(s *MatchState) int {
	for i, f := range s.Fighters {
		if f == nil {
			return i + 1
		}
	}
	return 0
}

// resolveKo runs the authoritative health poll and broadcasts the outcome.
func resolveKo(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState) {
	koSlot := updateMatchPhase(s)
	if koSlot == 0 {
		return
	}
	logger.Info("KO: slot %d down in round %d", koSlot, s.RoundNumber)

	winnerSlot := 3 - koSlot
	evt, _ := json.Marshal(map[string]any{
		"ko_slot":     koSlot,
		"winner_slot": winnerSlot,
		"round_wins":  s.RoundWins,
	})
	_ = dispatcher.BroadcastMessage(OpFighterKo, evt, nil, nil, true)

	if s.Phase == PhaseFinished {
		end, _ := json.Marshal(map[string]any{
			"winner_slot": winnerSlot,
			"round_wins":  s.RoundWins,
		})
		_ = dispatcher.BroadcastMessage(OpMatchFinished, end, nil, nil, true)
	}
	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
}

/* ---- message handlers ---- */

func handleDealDamage(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState, msg runtime.MatchData) {
	attacker := fighterByUserID(s, msg.GetUserId())
	if attacker == nil {
		return
	}

	// TODO: validate hit reports against server-side hitboxes instead of
	// trusting the client amount.
	var payload struct {
		Amount int `json:"amount"`
	}
	_ = json.Unmarshal(msg.GetData(), &payload)

	target := applyDamage(s, 3-attacker.Slot, payload.Amount)
	if target == nil {
		return
	}
	logger.Debug("DAMAGE: %d", payload.Amount)

	evt, _ := json.Marshal(map[string]any{
		"attacker_slot": attacker.Slot,
		"target_slot":   target.Slot,
		"amount":        payload.Amount,
		"target_health": target.Health,
	})
	_ = dispatcher.BroadcastMessage(OpDamageDealt, evt, nil, nil, true)
}
