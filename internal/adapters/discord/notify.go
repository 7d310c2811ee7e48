package discord

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const colorGreen = 5763719 // 0x57F287

// Notifier posts export summaries to a Discord webhook. Webhooks carry their
// own token, so no bot session or auth is involved.
type Notifier struct {
	webhookID    string
	webhookToken string
	s            *discordgo.Session
}

// NewNotifier takes a full webhook URL
// (https://discord.com/api/webhooks/{id}/{token}).
func NewNotifier(webhookURL string) (*Notifier, error) {
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	s, err := discordgo.New("")
	if err != nil {
		return nil, err
	}
	return &Notifier{webhookID: id, webhookToken: token, s: s}, nil
}

// ExportComplete sends a one-embed summary of a finished run.
func (n *Notifier) ExportComplete(nickname string, matches int, file string, took time.Duration) error {
	embed := &discordgo.MessageEmbed{
		Title: "📊 FACEIT export complete",
		Color: colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Player", Value: nickname, Inline: true},
			{Name: "Matches", Value: fmt.Sprintf("%d", matches), Inline: true},
			{Name: "Took", Value: took.Round(time.Second).String(), Inline: true},
			{Name: "File", Value: file},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	_, err := n.s.WebhookExecute(n.webhookID, n.webhookToken, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	return err
}

func parseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("webhook url: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	// .../api/webhooks/{id}/{token}
	for i, p := range parts {
		if p == "webhooks" && i+2 < len(parts) {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("webhook url: no id/token in %q", raw)
}
