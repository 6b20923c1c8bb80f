package service

import (
	"context"
)

// NotificationService sends push notifications to registered devices. The
// notifier worker is its only caller.
type NotificationService interface {
	// SendBatchNotification fans one message out to many device tokens.
	// invalidTokens lists tokens the provider rejected as unregistered so
	// the caller can prune them.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification delivers one message to one device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
