package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// BroadcastChannel publishes operator-facing alerts to a Telegram chat
// acting as the broadcast topic. A channel without a bot token or chat ID
// is Unconfigured: publishing is skipped, never treated as a failure.
type BroadcastChannel struct {
	botToken string
	chatID   string
	client   *http.Client
}

// NewBroadcastChannel creates a BroadcastChannel.
func NewBroadcastChannel(botToken, chatID string, timeout time.Duration) *BroadcastChannel {
	return &BroadcastChannel{
		botToken: botToken,
		chatID:   chatID,
		client:   &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a broadcast destination is set.
func (b *BroadcastChannel) Configured() bool {
	return b.botToken != "" && b.chatID != ""
}

type broadcastMessage struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Publish sends one message to the configured destination.
func (b *BroadcastChannel) Publish(ctx context.Context, subject, body string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", b.botToken)

	msg := broadcastMessage{
		ChatID: b.chatID,
		Text:   subject + "\n\n" + body,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("broadcast returned status %d", resp.StatusCode)
	}

	return nil
}
