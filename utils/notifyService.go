package utils

import (
	"log"
	"time"

	"formadmin/config"

	"github.com/go-resty/resty/v2"
)

// SyncWebhookPayload is the body posted to the ops webhook after a bulk sync
type SyncWebhookPayload struct {
	EntityType string   `json:"entity_type"`
	Synced     int      `json:"synced"`
	Errors     []string `json:"errors,omitempty"`
	Partial    bool     `json:"partial"`
	FinishedAt string   `json:"finished_at"`
}

// NotifySyncCompleted posts a bulk-sync summary to the configured webhook.
// Skipped when no webhook URL is set; failures are only logged.
func NotifySyncCompleted(payload SyncWebhookPayload) {
	webhookURL := config.AppConfig.SyncWebhookURL
	if webhookURL == "" {
		return
	}

	payload.FinishedAt = time.Now().Format(time.RFC3339)

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(webhookURL)

	if err != nil {
		log.Printf("[SYNC-WEBHOOK] delivery failed: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("[SYNC-WEBHOOK] webhook answered %d", resp.StatusCode())
		return
	}
	log.Printf("[SYNC-WEBHOOK] summary delivered (synced=%d errors=%d)", payload.Synced, len(payload.Errors))
}
