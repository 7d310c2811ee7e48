package config

import (
	"log"
	"os"
)

type Config struct {
	FaceitAPIKey string
	Nickname     string
	GameID       string // default cs2

	// Optional extras; each stays off when its variable is empty.
	DatabaseURL       string // Postgres archive of exported records
	DiscordWebhookURL string // export summary notification
	S3Bucket          string // spreadsheet copy in S3
	S3Prefix          string
	AWSRegion         string

	OutputDir string
	Debug     bool
}

func Load() Config {
	get := func(k string, req bool) string {
		v := os.Getenv(k)
		if v == "" && req {
			log.Fatalf("missing env %s", k)
		}
		return v
	}

	cfg := Config{
		FaceitAPIKey:      get("FACEIT_API_KEY", true),
		Nickname:          get("FACEIT_NICKNAME", true),
		GameID:            get("FACEIT_GAME_ID", false),
		DatabaseURL:       get("DATABASE_URL", false),
		DiscordWebhookURL: get("DISCORD_WEBHOOK_URL", false),
		S3Bucket:          get("S3_BUCKET", false),
		S3Prefix:          get("S3_PREFIX", false),
		AWSRegion:         get("AWS_REGION", false),
		OutputDir:         get("OUTPUT_DIR", false),
		Debug:             os.Getenv("DEBUG") == "true" || os.Getenv("DEBUG") == "1",
	}
	if cfg.GameID == "" {
		cfg.GameID = "cs2"
	}
	if cfg.S3Prefix == "" {
		cfg.S3Prefix = "faceit-stats"
	}
	return cfg
}
