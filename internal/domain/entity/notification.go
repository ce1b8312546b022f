package entity

import (
	"time"

	"github.com/google/uuid"
)

// Channel is a notification delivery medium.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelPush     Channel = "push"
)

// Valid reports whether the channel is one of the supported delivery media.
func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelWhatsApp, ChannelPush:
		return true
	}

	return false
}

// NotificationType classifies what a notification is about.
type NotificationType string

const (
	NotificationTypeConfirm    NotificationType = "confirm"
	NotificationTypeReminder   NotificationType = "reminder"
	NotificationTypeReschedule NotificationType = "reschedule"
	NotificationTypeTest       NotificationType = "test"
)

// NotificationStatus is the delivery state of a notification.
// queued is the only non-terminal state; sent, skipped and failed are
// terminal and a row reaches exactly one of them exactly once.
type NotificationStatus string

const (
	NotificationStatusQueued  NotificationStatus = "queued"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusSkipped NotificationStatus = "skipped"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// Notification is a scheduled, single-delivery message. It is created by the
// preference recorder or the rescheduler and moved to a terminal status by
// the dispatcher. A failed notification stays failed; there is no retry.
type Notification struct {
	ID          uuid.UUID          `json:"id"`
	TicketID    uuid.UUID          `json:"ticket_id"`
	CustomerID  uuid.UUID          `json:"customer_id"`
	Channel     Channel            `json:"channel"`
	Type        NotificationType   `json:"type"`
	Status      NotificationStatus `json:"status"`
	Destination string             `json:"destination"` // Email address, phone number or device token.
	Subject     string             `json:"subject"`
	Body        string             `json:"body"` // Rendered lazily by the dispatcher.
	SendAt      time.Time          `json:"send_at"`
	SentAt      *time.Time         `json:"sent_at,omitempty"`
	ErrorDetail string             `json:"error_detail,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// Terminal reports whether the notification has reached a final status.
func (n *Notification) Terminal() bool {
	return n.Status != NotificationStatusQueued
}
