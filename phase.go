package main

// Fighter behavioral states exported through the snapshot.
const (
	ActionIdle     string = "idle"
	ActionFighting string = "fighting"
	ActionKo       string = "ko"
)

func newMatchState(settings Settings) *MatchState {
	return &MatchState{
		Settings:       settings,
		Phase:          PhaseCountdown,
		RoundNumber:    1,
		CountdownTicks: settings.CountdownTicks,
	}
}

func fighterInSlot(s *MatchState, slot int) *FighterState {
	if slot < 1 || slot > 2 {
		return nil
	}
	return s.Fighters[slot-1]
}

func bothResolved(s *MatchState) bool {
	return s.Fighters[0] != nil && s.Fighters[1] != nil
}

// matchUnderway reports whether the first fight has begun: the fighting
// phase, the post-KO interlude, or any round past the first. Leaving an
// underway match forfeits it.
func matchUnderway(s *MatchState) bool {
	if s.Phase == PhaseFinished {
		return false
	}
	return s.Phase == PhaseFighting || s.Phase == PhaseKo || s.RoundNumber > 1
}

// updateMatchPhase polls fighter health once per tick and records a KO.
// Returns the slot of the fighter knocked out this tick, or 0.
//
// The slot-1 check runs first, so a simultaneous double KO always credits
// fighter 2. That asymmetry is kept as the documented tie-break rule.
func updateMatchPhase(s *MatchState) int {
	if !bothResolved(s) {
		return 0
	}
	if s.Phase != PhaseFighting {
		return 0
	}

	p1, p2 := s.Fighters[0], s.Fighters[1]
	if p1.Health <= 0 {
		s.Phase = PhaseKo
		p1.Action = ActionKo
		s.RoundWins[1]++
		checkMatchEnd(s)
		return 1
	} else if p2.Health <= 0 {
		s.Phase = PhaseKo
		p2.Action = ActionKo
		s.RoundWins[0]++
		checkMatchEnd(s)
		return 2
	}
	return 0
}

// checkMatchEnd runs immediately after a KO is recorded. Either fighter
// reaching the win threshold ends the match; otherwise the next round is
// scheduled after the interlude delay.
func checkMatchEnd(s *MatchState) {
	if s.RoundWins[0] >= s.Settings.RoundsToWin || s.RoundWins[1] >= s.Settings.RoundsToWin {
		s.Phase = PhaseFinished
		return
	}
	s.RoundNumber++
	s.InterludeTicks = s.Settings.InterludeTicks
}

// startRound resets for a new round: countdown phase, full health and fixed
// spawn positions for every resolvable fighter. Empty slots are skipped.
// Does nothing once the match is finished.
func startRound(s *MatchState) {
	if s.Phase == PhaseFinished {
		return
	}
	s.Phase = PhaseCountdown
	s.CountdownTicks = s.Settings.CountdownTicks
	for _, f := range s.Fighters {
		if f == nil {
			continue
		}
		f.Health = s.Settings.FullHealth
		f.Pos = s.Settings.spawnFor(f.Slot)
		f.Action = ActionIdle
	}
}

// startFight moves countdown into the active fighting phase.
func startFight(s *MatchState) {
	if s.Phase != PhaseCountdown {
		return
	}
	s.Phase = PhaseFighting
	for _, f := range s.Fighters {
		if f != nil {
			f.Action = ActionFighting
		}
	}
}

// tickCountdown advances the pre-fight countdown. Returns true on the tick
// the fight starts. The countdown holds while either slot is unresolved.
func tickCountdown(s *MatchState) bool {
	if s.Phase != PhaseCountdown || !bothResolved(s) {
		return false
	}
	if s.CountdownTicks > 0 {
		s.CountdownTicks--
	}
	if s.CountdownTicks == 0 {
		startFight(s)
		return true
	}
	return false
}

// tickInterlude advances the post-KO delay. Returns true on the tick the
// next round resets.
func tickInterlude(s *MatchState) bool {
	if s.Phase != PhaseKo {
		return false
	}
	if s.InterludeTicks > 0 {
		s.InterludeTicks--
	}
	if s.InterludeTicks == 0 {
		startRound(s)
		return true
	}
	return false
}

// applyDamage subtracts a hit from the target fighter's health. Damage only
// lands while fighting; the KO itself is detected by the per-tick health
// poll, not here.
func applyDamage(s *MatchState, targetSlot, amount int) *FighterState {
	if s.Phase != PhaseFighting || amount <= 0 {
		return nil
	}
	f := fighterInSlot(s, targetSlot)
	if f == nil {
		return nil
	}
	f.Health -= amount
	return f
}
