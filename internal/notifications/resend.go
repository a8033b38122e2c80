package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultResendEndpoint = "https://api.resend.com/emails"

type ResendClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewResendClient returns nil when apiKey is blank.
func NewResendClient(apiKey string) *ResendClient {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	return &ResendClient{
		apiKey:     apiKey,
		endpoint:   defaultResendEndpoint,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

// WithEndpoint points the client at another API base, e.g. a test server.
func (c *ResendClient) WithEndpoint(endpoint string) *ResendClient {
	if c == nil {
		return nil
	}
	c.endpoint = endpoint
	return c
}

func (c *ResendClient) Send(ctx context.Context, msg Message) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}
	if err := validateMessage(msg); err != nil {
		return "", err
	}

	raw, err := json.Marshal(resendSendRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("resend marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("resend create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("resend send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out resendSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("resend decode response: %w", err)
	}
	if strings.TrimSpace(out.ID) == "" {
		return "", errors.New("resend response missing id")
	}
	return out.ID, nil
}

type resendSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendSendResponse struct {
	ID string `json:"id"`
}
