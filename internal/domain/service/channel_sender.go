// Package service declares the domain-facing interfaces implemented by the
// infrastructure layer.
package service

import (
	"context"

	"garage/internal/domain/entity"
)

// OutboundMessage is a fully rendered message ready for a channel provider.
type OutboundMessage struct {
	Channel entity.Channel `json:"channel"`
	To      string         `json:"to"`      // Email address, phone number or device token.
	Subject string         `json:"subject"` // Used by email and push; ignored by SMS/WhatsApp.
	Body    string         `json:"body"`
}

// ChannelSender delivers one message through a single external provider.
// Providers are unreliable collaborators: a non-nil error means the message
// was not delivered and the caller records a terminal failed status.
type ChannelSender interface {
	Send(ctx context.Context, msg *OutboundMessage) error
}

// SenderRegistry resolves the sender for a delivery channel. Resolution
// fails with a provider-not-configured error when the channel's credentials
// are absent; the dispatcher surfaces that as a failed send, never a crash.
type SenderRegistry interface {
	SenderFor(channel entity.Channel) (ChannelSender, error)
}
