package domain

// MatchSummary is one entry from a player's match history page.
type MatchSummary struct {
	MatchID   string
	StartedAt int64 // unix seconds
}

// HistoryPage is a single offset/limit page of match history.
type HistoryPage struct {
	Items []MatchSummary
}

// MatchStats is the per-round stats tree for one match. Only the first
// round's metadata and the target player's stats sub-object get consumed.
type MatchStats struct {
	Rounds []Round
}

type Round struct {
	// Round-level metadata, e.g. "Map" and "Score". Values arrive as strings.
	RoundStats map[string]string
	Teams      []Team
}

type Team struct {
	Players []TeamPlayer
}

type TeamPlayer struct {
	PlayerID string
	Nickname string
	// Per-player stats as FACEIT returns them ("Kills", "K/D Ratio", ...),
	// string-valued on the wire.
	Stats map[string]string
}

// MatchRecord is one flat row of the export, columns in sheet order.
type MatchRecord struct {
	Nickname     string
	MatchID      string
	Date         string // "2006-01-02 15:04:05" UTC
	Map          string
	Score        string
	Kills        string
	Deaths       string
	Assists      string
	KDRatio      string
	HeadshotsPct string
	MVPs         string
	Result       string
}
