package faceit

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kevzip/FaceIt-Stats/internal/domain"
)

// FindPlayerID resolves a nickname to its player_id. No existence check:
// a 200 without a player_id yields an empty string the caller can pass on.
func (c *Client) FindPlayerID(ctx context.Context, nickname string) (string, error) {
	q := url.Values{}
	q.Set("nickname", nickname)

	var dto playerDTO
	if err := c.doJSON(ctx, "GET", "/players", q, &dto); err != nil {
		return "", err
	}
	return dto.PlayerID, nil
}

// GetMatchHistory fetches one offset/limit page of a player's history inside
// the inclusive [from, to] unix-second range. Order is whatever the API
// returns. The upstream caps limit at 100.
func (c *Client) GetMatchHistory(ctx context.Context, playerID, gameID string, from, to int64, offset, limit int) (domain.HistoryPage, error) {
	q := url.Values{}
	q.Set("game", gameID)
	q.Set("from", strconv.FormatInt(from, 10))
	q.Set("to", strconv.FormatInt(to, 10))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	var dto historyDTO
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/players/%s/history", playerID), q, &dto); err != nil {
		return domain.HistoryPage{}, err
	}

	page := domain.HistoryPage{Items: make([]domain.MatchSummary, 0, len(dto.Items))}
	for _, it := range dto.Items {
		page.Items = append(page.Items, domain.MatchSummary{MatchID: it.MatchID, StartedAt: it.StartedAt})
	}
	return page, nil
}

// GetMatchStats fetches the full rounds/teams/players stats tree for one match.
func (c *Client) GetMatchStats(ctx context.Context, matchID string) (domain.MatchStats, error) {
	var dto matchStatsDTO
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/matches/%s/stats", matchID), nil, &dto); err != nil {
		return domain.MatchStats{}, err
	}

	stats := domain.MatchStats{Rounds: make([]domain.Round, 0, len(dto.Rounds))}
	for _, r := range dto.Rounds {
		round := domain.Round{RoundStats: r.RoundStats, Teams: make([]domain.Team, 0, len(r.Teams))}
		for _, t := range r.Teams {
			team := domain.Team{Players: make([]domain.TeamPlayer, 0, len(t.Players))}
			for _, p := range t.Players {
				team.Players = append(team.Players, domain.TeamPlayer{
					PlayerID: p.PlayerID,
					Nickname: p.Nickname,
					Stats:    p.PlayerStats,
				})
			}
			round.Teams = append(round.Teams, team)
		}
		stats.Rounds = append(stats.Rounds, round)
	}
	return stats, nil
}
