package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/saphaniox/sap-technologies.ug-sub002/internal/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// resendRequest is the payload for the Resend API.
type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
}

type resendError struct {
	Message string `json:"message"`
}

type emailClient struct {
	apiKey string
	from   string
	http   *http.Client
}

func newEmailClient(cfg config.EmailConfig) *emailClient {
	return &emailClient{
		apiKey: cfg.APIKey,
		from:   cfg.From,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *emailClient) send(to, subject, htmlBody string) error {
	if c.apiKey == "" {
		return fmt.Errorf("email not configured: RESEND_API_KEY is empty")
	}

	payload, err := json.Marshal(resendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach email API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var apiErr resendError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("email API error (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("email API error (status %d): %s", resp.StatusCode, string(body))
	}
	return nil
}
