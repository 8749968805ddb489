package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Arittroskr32/CyberPiT-backend/internal/config"
	"github.com/Arittroskr32/CyberPiT-backend/internal/logger"
)

const defaultBaseURL = "https://api.brevo.com"

// Client is a minimal Brevo transactional-email API client.
type Client struct {
	cfg        config.Brevo
	httpClient *http.Client
}

func NewClient(cfg config.Brevo) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg: cfg,
		// The per-call transport timeout is the only bound on a dispatch.
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type sendRequest struct {
	Sender      party   `json:"sender"`
	To          []party `json:"to"`
	Subject     string  `json:"subject"`
	HTMLContent string  `json:"htmlContent"`
}

type party struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type sendResponse struct {
	MessageId string `json:"messageId"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Send delivers one email through POST /v3/smtp/email.
func (c *Client) Send(ctx context.Context, recipient, subject, htmlContent string) error {
	payload := sendRequest{
		Sender:      party{Name: c.cfg.SenderName, Email: c.cfg.SenderEmail},
		To:          []party{{Email: recipient}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v3/smtp/email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Message != "" {
			return fmt.Errorf("%s", errResp.Message)
		}
		return fmt.Errorf("provider returned %s", resp.Status)
	}

	var sent sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sent); err != nil {
		return fmt.Errorf("malformed provider response: %w", err)
	}
	logger.Log.Debug("email accepted by provider", "recipient", recipient, "message_id", sent.MessageId)

	return nil
}
