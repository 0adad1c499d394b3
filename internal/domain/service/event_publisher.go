package service

import (
	"context"
)

// StatusChangeEvent is published after every successful device status
// transition. The SMS gateway worker consumes these events to text the
// customer; other consumers (dashboards, audit) subscribe to the same topic.
type StatusChangeEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	DeviceID      string `json:"device_id"`
	FromStatus    string `json:"from_status"`
	ToStatus      string `json:"to_status"`
	ActorID       string `json:"actor_id"`
	ActorRole     string `json:"actor_role"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	Message       string `json:"message,omitempty"` // Pre-rendered customer-facing text.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStatusChange publishes a status-change event for async processing
	PublishStatusChange(ctx context.Context, event *StatusChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
