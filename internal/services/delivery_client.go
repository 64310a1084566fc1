package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DeliveryClient pushes admin notifications to the external delivery bridge
// (mail relay). An empty base URL disables delivery entirely.
type DeliveryClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewDeliveryClient(baseURL string, log *zap.Logger) *DeliveryClient {
	return &DeliveryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

func (c *DeliveryClient) Notify(ctx context.Context, subject, body string) error {
	if c.baseURL == "" {
		return nil
	}

	payload, _ := json.Marshal(map[string]any{
		"subject": subject,
		"body":    body,
	})

	url := c.baseURL + "/internal/notify"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(payload)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delivery bridge unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delivery bridge returned %d", resp.StatusCode)
	}
	return nil
}
