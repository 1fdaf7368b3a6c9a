package main

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpDealDamage int64 = 1

	// Server -> Client events
	OpFighterJoined int64 = 101
	OpFighterLeft   int64 = 102
	OpRoundStarted  int64 = 103
	OpFightStarted  int64 = 104
	OpDamageDealt   int64 = 105
	OpFighterKo     int64 = 106
	OpMatchFinished int64 = 107
	OpStateSnapshot int64 = 108 // broadcast every tick
)
