package service

import (
	"context"
	"time"
)

// DomainEvent represents a portal event published for async processing.
// The notifier worker consumes these to maintain notification feeds and
// fan out push messages.
type DomainEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Type       string            `json:"type"`                 // One of the constants.Event* values
	UserID     string            `json:"user_id"`              // The customer the event belongs to
	SourceKey  string            `json:"source_key"`           // Feed aggregation key, e.g. "appointment:<id>"
	Title      string            `json:"title"`                // Human-readable headline
	Body       string            `json:"body"`                 // Human-readable detail line
	OccurredAt time.Time         `json:"occurred_at"`          // When the underlying change happened
	Data       map[string]string `json:"data,omitempty"`       // Extra payload forwarded to push clients
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDomainEvent publishes a portal event for async processing
	PublishDomainEvent(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
