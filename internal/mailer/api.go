package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"homeRental/internal/config"
)

// APITransport posts messages to a transactional email HTTP API.
type APITransport struct {
	endpoint string
	key      string
	client   *http.Client
}

type apiRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func NewAPITransport(cfg config.MailAPI, timeout time.Duration) (*APITransport, error) {
	if cfg.Endpoint == "" || cfg.Key == "" {
		return nil, errors.New("api transport needs endpoint and key")
	}

	return &APITransport{
		endpoint: cfg.Endpoint,
		key:      cfg.Key,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

func (t *APITransport) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(apiRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.key)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call mail api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail api responded %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	return nil
}
