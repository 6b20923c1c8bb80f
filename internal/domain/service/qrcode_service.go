package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCheckInQR generates a QR code image for appointment check-in
	GenerateCheckInQR(appointmentID uuid.UUID) ([]byte, error)

	// ParseCheckInQR parses QR code data and returns the appointment ID
	ParseCheckInQR(qrData string) (uuid.UUID, error)
}
