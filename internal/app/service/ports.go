package service

import (
	"context"

	"github.com/kevzip/FaceIt-Stats/internal/domain"
)

// FaceitAPI is implemented by internal/adapters/faceit.Client.
type FaceitAPI interface {
	GetMatchHistory(ctx context.Context, playerID, gameID string, from, to int64, offset, limit int) (domain.HistoryPage, error)
	GetMatchStats(ctx context.Context, matchID string) (domain.MatchStats, error)
}
