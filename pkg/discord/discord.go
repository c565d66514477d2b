package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

// SendMessage sends a plain text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendError sends an error embed. The wrapped error is attached as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: description,
		Color:       colorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = append(embed.Fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.sendEmbed(ctx, embed)
}

// SendWarning sends a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.sendEmbed(ctx, Embed{
		Title:       title,
		Description: description,
		Color:       colorWarning,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

// SendInfo sends an informational embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.sendEmbed(ctx, Embed{
		Title:       title,
		Description: description,
		Color:       colorInfo,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

// Close releases idle connections held by the webhook client.
func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) sendEmbed(ctx context.Context, embed Embed) error {
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []Embed{embed},
	})
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("discord: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.l.Warnf(ctx, "discord: webhook call failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		d.l.Warnf(ctx, "discord: webhook returned status %d", resp.StatusCode)
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
