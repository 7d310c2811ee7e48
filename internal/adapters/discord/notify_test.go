package discord

import "testing"

func TestParseWebhookURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantID    string
		wantToken string
		wantErr   bool
	}{
		{
			name:      "standard webhook url",
			url:       "https://discord.com/api/webhooks/123456789/abc-def_ghi",
			wantID:    "123456789",
			wantToken: "abc-def_ghi",
		},
		{
			name:      "versioned api path",
			url:       "https://discord.com/api/v10/webhooks/42/tok",
			wantID:    "42",
			wantToken: "tok",
		},
		{
			name:    "missing token",
			url:     "https://discord.com/api/webhooks/123456789",
			wantErr: true,
		},
		{
			name:    "not a webhook url",
			url:     "https://example.com/something",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, token, err := parseWebhookURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID || token != tt.wantToken {
				t.Errorf("parsed (%q, %q), want (%q, %q)", id, token, tt.wantID, tt.wantToken)
			}
		})
	}
}
