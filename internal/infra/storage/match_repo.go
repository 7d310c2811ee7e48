package storage

import (
	"context"
	"database/sql"

	pq "github.com/lib/pq"

	"github.com/kevzip/FaceIt-Stats/internal/domain"
)

// MatchRepo archives exported records. The table mirrors the sheet rows,
// field for field; the fetch path never reads it back.
type MatchRepo struct{ db *sql.DB }

func NewMatchRepo(db *sql.DB) *MatchRepo { return &MatchRepo{db: db} }

// UpsertRecords inserts the records, refreshing rows already archived from
// an earlier run of the same window. Returns how many were written.
func (r *MatchRepo) UpsertRecords(ctx context.Context, records []domain.MatchRecord) (int, error) {
	n := 0
	for _, rec := range records {
		_, err := r.db.ExecContext(ctx, `
INSERT INTO faceit_matches
  (match_id, nickname, played_at, map, score, kills, deaths, assists, kd_ratio, headshots_pct, mvps, result, exported_at)
VALUES
  ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,now())
ON CONFLICT (match_id) DO UPDATE SET
  nickname      = EXCLUDED.nickname,
  played_at     = EXCLUDED.played_at,
  map           = EXCLUDED.map,
  score         = EXCLUDED.score,
  kills         = EXCLUDED.kills,
  deaths        = EXCLUDED.deaths,
  assists       = EXCLUDED.assists,
  kd_ratio      = EXCLUDED.kd_ratio,
  headshots_pct = EXCLUDED.headshots_pct,
  mvps          = EXCLUDED.mvps,
  result        = EXCLUDED.result,
  exported_at   = now()
`, rec.MatchID, rec.Nickname, rec.Date, rec.Map, rec.Score,
			rec.Kills, rec.Deaths, rec.Assists, rec.KDRatio, rec.HeadshotsPct, rec.MVPs, rec.Result)
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// ExistingIDs reports which of the given match ids are already archived.
func (r *MatchRepo) ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	out := map[string]bool{}
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT match_id
  FROM faceit_matches
 WHERE match_id = ANY($1)
`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}
