package faceit

// --- Players ---
type playerDTO struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname"`
}

// --- Match history ---
type historyDTO struct {
	Items []struct {
		MatchID   string `json:"match_id"`
		StartedAt int64  `json:"started_at"`
	} `json:"items"`
}

// --- Match stats ---
// round_stats and player_stats are string-valued maps on the wire
// ("Score": "13 / 7", "Kills": "21", ...).
type matchStatsDTO struct {
	Rounds []struct {
		RoundStats map[string]string `json:"round_stats"`
		Teams      []struct {
			Players []struct {
				PlayerID    string            `json:"player_id"`
				Nickname    string            `json:"nickname"`
				PlayerStats map[string]string `json:"player_stats"`
			} `json:"players"`
		} `json:"teams"`
	} `json:"rounds"`
}
