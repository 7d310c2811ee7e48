package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kevzip/FaceIt-Stats/internal/domain"
)

const (
	// Upstream caps history pages at 100 items.
	historyPageSize = 100

	// Coarse rate-limit mitigation between history pages
	// (free tier is 1000 requests/hour).
	defaultPageDelay = 1 * time.Second
)

// Fixed export window, 2025-06-01 .. end of 2025 UTC. Making this
// configurable is deliberately out of scope.
var (
	windowStart = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// ExportService walks a player's match history and flattens per-match stats
// into export-ready records.
type ExportService struct {
	fc        FaceitAPI
	log       *zap.Logger
	pageDelay time.Duration
}

type Option func(*ExportService)

// WithPageDelay overrides the inter-page sleep. Tests use this to avoid
// real waiting.
func WithPageDelay(d time.Duration) Option {
	return func(s *ExportService) { s.pageDelay = d }
}

func NewExportService(fc FaceitAPI, log *zap.Logger, opts ...Option) *ExportService {
	s := &ExportService{fc: fc, log: log, pageDelay: defaultPageDelay}
	for _, o := range opts {
		o(s)
	}
	return s
}

// FetchGames pages through the player's history for the fixed window and
// returns one record per match whose detail contains the player's stats.
//
// A failed history page aborts the whole run and drops whatever was
// accumulated. A failed stats fetch, a summary missing its id or timestamp,
// or a detail without the player only skip that one match.
func (s *ExportService) FetchGames(ctx context.Context, playerID, gameID, nickname string) ([]domain.MatchRecord, error) {
	from := windowStart.Unix()
	to := windowEnd.Unix()

	var records []domain.MatchRecord
	offset := 0

	for {
		page, err := s.fc.GetMatchHistory(ctx, playerID, gameID, from, to, offset, historyPageSize)
		if err != nil {
			return nil, err
		}
		if len(page.Items) == 0 {
			break
		}
		s.log.Info("fetched match history page",
			zap.Int("matches", len(page.Items)),
			zap.Int("offset", offset))

		for _, m := range page.Items {
			if m.MatchID == "" || m.StartedAt == 0 {
				continue
			}

			stats, err := s.fc.GetMatchStats(ctx, m.MatchID)
			if err != nil {
				s.log.Warn("skipping match, stats fetch failed",
					zap.String("match_id", m.MatchID),
					zap.Error(err))
				continue
			}

			playerStats, ok := findPlayerStats(stats, playerID)
			if !ok {
				s.log.Warn("no stats found for player in match",
					zap.String("match_id", m.MatchID))
				continue
			}

			records = append(records, buildRecord(nickname, m, stats, playerStats))
		}

		offset += historyPageSize

		select {
		case <-time.After(s.pageDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return records, nil
}

// findPlayerStats scans the first round's teams for the player. At most one
// entry should exist per match; first hit wins. An entry whose stats
// sub-object is missing or empty counts as not found, so the match gets
// skipped rather than exported as an all-defaults row.
func findPlayerStats(stats domain.MatchStats, playerID string) (map[string]string, bool) {
	if len(stats.Rounds) == 0 {
		return nil, false
	}
	for _, team := range stats.Rounds[0].Teams {
		for _, p := range team.Players {
			if p.PlayerID == playerID {
				if len(p.Stats) == 0 {
					return nil, false
				}
				return p.Stats, true
			}
		}
	}
	return nil, false
}

func buildRecord(nickname string, m domain.MatchSummary, stats domain.MatchStats, playerStats map[string]string) domain.MatchRecord {
	roundStats := stats.Rounds[0].RoundStats
	return domain.MatchRecord{
		Nickname:     nickname,
		MatchID:      m.MatchID,
		Date:         time.Unix(m.StartedAt, 0).UTC().Format("2006-01-02 15:04:05"),
		Map:          orDefault(roundStats, "Map", "N/A"),
		Score:        orDefault(roundStats, "Score", "N/A"),
		Kills:        orDefault(playerStats, "Kills", "0"),
		Deaths:       orDefault(playerStats, "Deaths", "0"),
		Assists:      orDefault(playerStats, "Assists", "0"),
		KDRatio:      orDefault(playerStats, "K/D Ratio", "0"),
		HeadshotsPct: orDefault(playerStats, "Headshots %", "0"),
		MVPs:         orDefault(playerStats, "MVPs", "0"),
		Result:       orDefault(playerStats, "Result", "N/A"),
	}
}

// orDefault falls back only when the key is absent; a present-but-empty
// value stays as-is.
func orDefault(m map[string]string, key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}
