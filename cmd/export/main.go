package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kevzip/FaceIt-Stats/internal/adapters/discord"
	"github.com/kevzip/FaceIt-Stats/internal/adapters/excel"
	"github.com/kevzip/FaceIt-Stats/internal/adapters/faceit"
	s3up "github.com/kevzip/FaceIt-Stats/internal/adapters/s3"
	"github.com/kevzip/FaceIt-Stats/internal/app/service"
	"github.com/kevzip/FaceIt-Stats/internal/domain"
	"github.com/kevzip/FaceIt-Stats/internal/infra/config"
	"github.com/kevzip/FaceIt-Stats/internal/infra/storage"
	applog "github.com/kevzip/FaceIt-Stats/internal/log"
)

type summary struct {
	Success string `json:"success"`
	Matches int    `json:"matches"`
	File    string `json:"file"`
	S3Key   string `json:"s3_key,omitempty"`
}

type errorSummary struct {
	Error string `json:"error"`
}

func errorJSON(err error) string {
	out, _ := json.MarshalIndent(errorSummary{Error: err.Error()}, "", "  ")
	return string(out)
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := applog.New(cfg.Debug)
	defer logger.Sync()

	ctx := context.Background()
	start := time.Now()

	fc := faceit.New(cfg.FaceitAPIKey)

	playerID, err := fc.FindPlayerID(ctx, cfg.Nickname)
	if err != nil {
		logger.Fatal("player search failed", zap.Error(err))
	}
	// An unknown nickname shows up as an empty id; the run then just finds
	// no matches. No existence validation here.
	logger.Info("found player",
		zap.String("nickname", cfg.Nickname),
		zap.String("player_id", playerID))

	svc := service.NewExportService(fc, logger)
	records, err := svc.FetchGames(ctx, playerID, cfg.GameID, cfg.Nickname)
	if err != nil {
		logger.Fatal("match fetch failed", zap.Error(err))
	}

	writer := excel.NewWriter(cfg.OutputDir)
	file, err := writer.Write(records, cfg.Nickname)
	if err != nil {
		// An empty window (or a write failure) is still a completed run;
		// the structured error is the result summary.
		fmt.Println(errorJSON(err))
		return
	}
	logger.Info("spreadsheet written",
		zap.String("file", file),
		zap.Int("matches", len(records)))

	if cfg.DatabaseURL != "" {
		archive(ctx, cfg.DatabaseURL, records, logger)
	}

	var s3Key string
	if cfg.S3Bucket != "" {
		s3Key = upload(ctx, cfg, file, logger)
	}

	if cfg.DiscordWebhookURL != "" {
		notify(cfg, len(records), file, time.Since(start), logger)
	}

	out, _ := json.MarshalIndent(summary{
		Success: fmt.Sprintf("Exported %d matches to %s", len(records), file),
		Matches: len(records),
		File:    file,
		S3Key:   s3Key,
	}, "", "  ")
	fmt.Println(string(out))
}

// archive mirrors the exported rows into Postgres. Failures only log; the
// spreadsheet already exists at this point.
func archive(ctx context.Context, dbURL string, records []domain.MatchRecord, logger *zap.Logger) {
	db, err := storage.Open(ctx, dbURL)
	if err != nil {
		logger.Error("archive: db open failed", zap.Error(err))
		return
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		logger.Error("archive: migrate failed", zap.Error(err))
		return
	}

	repo := storage.NewMatchRepo(db)

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.MatchID)
	}
	existing, err := repo.ExistingIDs(ctx, ids)
	if err != nil {
		logger.Error("archive: lookup failed", zap.Error(err))
		return
	}

	n, err := repo.UpsertRecords(ctx, records)
	if err != nil {
		logger.Error("archive: upsert failed", zap.Error(err), zap.Int("written", n))
		return
	}
	logger.Info("records archived",
		zap.Int("written", n),
		zap.Int("new", n-len(existing)),
		zap.Int("refreshed", len(existing)))
}

func upload(ctx context.Context, cfg config.Config, file string, logger *zap.Logger) string {
	up, err := s3up.NewUploader(ctx, cfg.S3Bucket, cfg.S3Prefix, cfg.AWSRegion, logger)
	if err != nil {
		logger.Error("s3: uploader init failed", zap.Error(err))
		return ""
	}
	key, err := up.UploadFile(ctx, file)
	if err != nil {
		logger.Error("s3: upload failed", zap.Error(err))
		return ""
	}
	return key
}

func notify(cfg config.Config, matches int, file string, took time.Duration, logger *zap.Logger) {
	n, err := discord.NewNotifier(cfg.DiscordWebhookURL)
	if err != nil {
		logger.Error("discord: bad webhook url", zap.Error(err))
		return
	}
	if err := n.ExportComplete(cfg.Nickname, matches, file, took); err != nil {
		logger.Error("discord: notify failed", zap.Error(err))
	}
}
