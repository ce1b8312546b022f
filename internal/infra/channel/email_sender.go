// Package channel implements the outbound delivery providers behind the
// domain's ChannelSender interface. Every provider treats a non-2xx or
// transport error as a failed delivery; retries are left to the caller's
// policy, which for notifications is no retry at all.
package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"garage/config"
	"garage/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultSendTimeout = 30 * time.Second

// emailSender delivers mail through a REST mail API using API-key auth.
type emailSender struct {
	apiKey      string
	baseURL     string
	fromAddress string
	fromName    string
	httpClient  *http.Client
	logger      *slog.Logger
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type emailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type emailPersonalization struct {
	To []emailAddress `json:"to"`
}

type emailSendRequest struct {
	Personalizations []emailPersonalization `json:"personalizations"`
	From             emailAddress           `json:"from"`
	Subject          string                 `json:"subject"`
	Content          []emailContent         `json:"content"`
}

// NewEmailSender creates an email sender from provider credentials.
func NewEmailSender(cfg *config.EmailProviderConfig, logger *slog.Logger) service.ChannelSender {
	return &emailSender{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		httpClient: &http.Client{
			Timeout: defaultSendTimeout,
		},
		logger: logger,
	}
}

// Send delivers one rendered message to a single recipient address.
func (s *emailSender) Send(ctx context.Context, msg *service.OutboundMessage) error {
	payload := emailSendRequest{
		Personalizations: []emailPersonalization{
			{To: []emailAddress{{Email: msg.To}}},
		},
		From: emailAddress{
			Email: s.fromAddress,
			Name:  s.fromName,
		},
		Subject: msg.Subject,
		Content: []emailContent{
			{Type: "text/plain", Value: msg.Body},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "email provider request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("email provider returned status %d: %s", resp.StatusCode, string(detail))
	}

	s.logger.Debug("email delivered",
		slog.String("to", msg.To),
	)

	return nil
}
