package service

import (
	"context"
)

// Ticket event types published to the realtime feed.
const (
	EventTicketStatusChanged    = "ticket.status_changed"
	EventNotificationDispatched = "notification.dispatched"
)

// TicketEvent represents a shop event pushed to subscribed frontends.
type TicketEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	Type           string `json:"type"`
	TicketID       string `json:"ticket_id"`
	CustomerID     string `json:"customer_id,omitempty"`
	NotificationID string `json:"notification_id,omitempty"`
	Status         string `json:"status,omitempty"`
	Detail         string `json:"detail,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTicketEvent publishes a ticket event for async consumers.
	PublishTicketEvent(ctx context.Context, event *TicketEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
