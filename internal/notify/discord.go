package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/donaldgifford/phone-spec-scraper/internal/metrics"
)

const (
	colorRed    = 0xE74C3C // layout change: needs a human
	colorOrange = 0xE67E22 // transport: will retry next cycle

	maxEmbeds     = 10
	maxFieldValue = 1024
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendFailure sends a single failure as a Discord embed.
func (d *DiscordNotifier) SendFailure(ctx context.Context, f *FailurePayload) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(f)},
	}
	return d.post(ctx, payload)
}

// SendBatchFailure sends multiple failures as a single Discord message.
func (d *DiscordNotifier) SendBatchFailure(ctx context.Context, failures []FailurePayload) error {
	if len(failures) == 0 {
		return nil
	}

	limit := min(len(failures), maxEmbeds)
	embeds := make([]discordEmbed, 0, limit+1)
	for i := range limit {
		embeds = append(embeds, buildEmbed(&failures[i]))
	}

	// Discord allows max 10 embeds per message; the overflow note replaces the last.
	if len(failures) > maxEmbeds {
		embeds[maxEmbeds-1] = discordEmbed{
			Title:       fmt.Sprintf("... and %d more refresh failures", len(failures)-maxEmbeds+1),
			Color:       colorOrange,
			Description: "List failing sheets with `specctl sheets list --failing`.",
		}
	}

	return d.post(ctx, discordWebhookPayload{Embeds: embeds})
}

func buildEmbed(f *FailurePayload) discordEmbed {
	embed := discordEmbed{
		Title: fmt.Sprintf("Refresh failed: %s", f.SheetName),
		URL:   f.SourceURL,
		Color: kindColor(f.Kind),
		Fields: []discordEmbedField{
			{Name: "Kind", Value: f.Kind, Inline: true},
			{Name: "Sheet", Value: f.SheetID, Inline: true},
			{Name: "Error", Value: truncate(f.Error, maxFieldValue)},
		},
	}
	if !f.CheckedAt.IsZero() {
		embed.Timestamp = f.CheckedAt.UTC().Format(time.RFC3339)
	}
	return embed
}

func kindColor(kind string) int {
	if kind == KindExtraction {
		return colorRed
	}
	return colorOrange
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 512))
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
