package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FACEIT_API_KEY", "key")
	t.Setenv("FACEIT_NICKNAME", "Kevzip")

	cfg := Load()

	if cfg.FaceitAPIKey != "key" || cfg.Nickname != "Kevzip" {
		t.Errorf("required values not loaded: %+v", cfg)
	}
	if cfg.GameID != "cs2" {
		t.Errorf("GameID = %q, want default cs2", cfg.GameID)
	}
	if cfg.S3Prefix != "faceit-stats" {
		t.Errorf("S3Prefix = %q, want default faceit-stats", cfg.S3Prefix)
	}
	if cfg.DatabaseURL != "" || cfg.DiscordWebhookURL != "" || cfg.S3Bucket != "" {
		t.Errorf("optional extras must default to off: %+v", cfg)
	}
	if cfg.Debug {
		t.Error("Debug must default to false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FACEIT_API_KEY", "key")
	t.Setenv("FACEIT_NICKNAME", "Kevzip")
	t.Setenv("FACEIT_GAME_ID", "csgo")
	t.Setenv("DATABASE_URL", "postgres://localhost/faceit")
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.com/api/webhooks/1/t")
	t.Setenv("S3_BUCKET", "my-bucket")
	t.Setenv("S3_PREFIX", "exports")
	t.Setenv("DEBUG", "true")

	cfg := Load()

	if cfg.GameID != "csgo" {
		t.Errorf("GameID = %q, want csgo", cfg.GameID)
	}
	if cfg.DatabaseURL == "" || cfg.DiscordWebhookURL == "" {
		t.Errorf("optional extras not loaded: %+v", cfg)
	}
	if cfg.S3Bucket != "my-bucket" || cfg.S3Prefix != "exports" {
		t.Errorf("s3 config = %q/%q", cfg.S3Bucket, cfg.S3Prefix)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}
