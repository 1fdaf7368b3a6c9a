package main

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"
)

// rpcQuickMatch finds an open arena match via label query, creating one when
// none is joinable. An optional JSON payload is forwarded as match creation
// params (see parseSettings).
func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	query := "+label.open:true +label.game:clawdarena"
	matches, err := nk.MatchList(ctx, 1, true, "", nil, nil, query)
	if err != nil {
		logger.Error("match list failed: %v", err)
		return "", err
	}

	var matchID string
	if len(matches) > 0 {
		matchID = matches[0].MatchId
	} else {
		params := map[string]interface{}{}
		if payload != "" {
			if err := json.Unmarshal([]byte(payload), &params); err != nil {
				return "", runtime.NewError("invalid params payload", 3) // INVALID_ARGUMENT
			}
		}
		matchID, err = nk.MatchCreate(ctx, MatchNameArena, params)
		if err != nil {
			logger.Error("match create failed: %v", err)
			return "", err
		}
	}

	resp, _ := json.Marshal(map[string]string{"match_id": matchID})
	return string(resp), nil
}
