// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a device registered for push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the device record.
	UserID    uuid.UUID `json:"user_id"`    // The owning user.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging registration token.
	DeviceID  string    `json:"device_id"`  // Client-provided stable device identifier.
	Platform  string    `json:"platform"`   // ios, android or web.
	IsActive  bool      `json:"is_active"`  // Whether pushes should be sent to this device.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
