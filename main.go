package main

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RpcQuickMatch is the Nakama RPC id clients call to find or create an open
// arena match.
const RpcQuickMatch = "quick_match"

// MatchNameArena is the authoritative match handler name registered with
// Nakama.
const MatchNameArena = "arena_match"

// main is unused: Nakama loads this module as a plugin and calls InitModule,
// but the plugin buildmode still requires package main to declare it.
func main() {}

// InitModule wires the Nakama Go runtime module, registering RPCs and match
// handlers.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameArena, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return &ArenaMatch{}, nil
	}); err != nil {
		return err
	}

	logger.Info("Clawdbot Arena Go module loaded.")
	return nil
}
