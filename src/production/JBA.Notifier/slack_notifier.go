package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	config "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Config"
	logger "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Logger"
)

// SlackMessage represents the webhook payload
type SlackMessage struct {
	Text string `json:"text"`
}

// SlackNotifier posts alert messages to a Slack incoming webhook
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewSlackNotifier creates a new Slack notifier
func NewSlackNotifier(cfg *config.AlertingConfig, log *logger.Logger) *SlackNotifier {
	timeout := cfg.SlackTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SlackNotifier{
		webhookURL: cfg.SlackWebhookURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log.WithComponent("slack-notifier"),
	}
}

// Send posts the message to the configured webhook. An unconfigured webhook
// is not an error: the message is logged and skipped.
func (n *SlackNotifier) Send(ctx context.Context, message string) error {
	if n.webhookURL == "" {
		n.logger.Warn("Slack webhook not configured. Message not sent.")
		return nil
	}

	payload, err := json.Marshal(SlackMessage{Text: message})
	if err != nil {
		return fmt.Errorf("failed to marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post slack message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack webhook returned status %d: %s", resp.StatusCode, string(body))
	}

	n.logger.Info("Slack message sent successfully")
	return nil
}
