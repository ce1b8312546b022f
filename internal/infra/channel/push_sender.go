package channel

import (
	"context"
	"log/slog"

	"garage/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// pushSender delivers push notifications through Firebase Cloud Messaging.
// The destination address is the customer's registered device token.
type pushSender struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewPushSender creates a Firebase-backed push sender.
func NewPushSender(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.ChannelSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &pushSender{
		client: client,
		logger: logger,
	}, nil
}

// Send pushes one message to a single device token.
func (s *pushSender) Send(ctx context.Context, msg *service.OutboundMessage) error {
	message := &messaging.Message{
		Token: msg.To,
		Notification: &messaging.Notification{
			Title: msg.Subject,
			Body:  msg.Body,
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send push notification")
	}

	s.logger.Debug("push notification delivered")

	return nil
}
