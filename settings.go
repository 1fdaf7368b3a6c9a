package main

// Settings are per-match parameters, read once from the match creation
// params. Missing or invalid values fall back to the stage defaults.
type Settings struct {
	RoundsToWin    int // first to this many round wins takes the match
	FullHealth     int
	CountdownTicks int // countdown length before each round's fight starts
	InterludeTicks int // delay between a KO and the next round reset

	SpawnP1 Vec3
	SpawnP2 Vec3
}

// DefaultSettings returns the stock best-of-three arena configuration.
func DefaultSettings() Settings {
	return Settings{
		RoundsToWin:    2,
		FullHealth:     1000,
		CountdownTicks: 90, // 3s at 30 ticks/s
		InterludeTicks: 60,
		SpawnP1:        Vec3{X: 200, Y: 0, Z: 400},
		SpawnP2:        Vec3{X: 1720, Y: 0, Z: 400},
	}
}

// parseSettings overlays match creation params onto the defaults. Params
// arrive as a decoded JSON map, so numbers are float64.
func parseSettings(params map[string]interface{}) Settings {
	s := DefaultSettings()
	if v, ok := intParam(params, "rounds_to_win"); ok && v > 0 {
		s.RoundsToWin = v
	}
	if v, ok := intParam(params, "full_health"); ok && v > 0 {
		s.FullHealth = v
	}
	if v, ok := intParam(params, "countdown_ticks"); ok && v >= 0 {
		s.CountdownTicks = v
	}
	if v, ok := intParam(params, "interlude_ticks"); ok && v >= 0 {
		s.InterludeTicks = v
	}
	return s
}

func intParam(params map[string]interface{}, key string) (int, bool) {
	switch v := params[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

// spawnFor returns the fixed spawn position for a slot (1 or 2).
func (s Settings) spawnFor(slot int) Vec3 {
	if slot == 1 {
		return s.SpawnP1
	}
	return s.SpawnP2
}
