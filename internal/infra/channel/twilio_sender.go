package channel

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"garage/config"
	"garage/internal/domain/entity"
	"garage/internal/domain/service"

	"github.com/pkg/errors"
)

// twilioSender delivers SMS and WhatsApp messages through the Twilio
// Messages API. WhatsApp rides the same endpoint with a "whatsapp:" prefix
// on both addresses.
type twilioSender struct {
	accountSID   string
	authToken    string
	baseURL      string
	smsFrom      string
	whatsappFrom string
	channel      entity.Channel
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewTwilioSender creates a sender for one of the two Twilio-backed
// channels (sms or whatsapp).
func NewTwilioSender(cfg *config.TwilioProviderConfig, channel entity.Channel, logger *slog.Logger) service.ChannelSender {
	return &twilioSender{
		accountSID:   cfg.AccountSID,
		authToken:    cfg.AuthToken,
		baseURL:      cfg.BaseURL,
		smsFrom:      cfg.SMSFrom,
		whatsappFrom: cfg.WhatsAppFrom,
		channel:      channel,
		httpClient: &http.Client{
			Timeout: defaultSendTimeout,
		},
		logger: logger,
	}
}

// Send posts one message to the Twilio Messages endpoint.
func (s *twilioSender) Send(ctx context.Context, msg *service.OutboundMessage) error {
	to := msg.To
	from := s.smsFrom
	if s.channel == entity.ChannelWhatsApp {
		to = "whatsapp:" + strings.TrimPrefix(to, "whatsapp:")
		from = "whatsapp:" + strings.TrimPrefix(s.whatsappFrom, "whatsapp:")
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", from)
	form.Set("Body", msg.Body)

	endpoint := s.baseURL + "/2010-04-01/Accounts/" + s.accountSID + "/Messages.json"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.WithStack(err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "twilio request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("twilio returned status %d: %s", resp.StatusCode, string(detail))
	}

	s.logger.Debug("twilio message delivered",
		slog.String("channel", string(s.channel)),
		slog.String("to", msg.To),
	)

	return nil
}
