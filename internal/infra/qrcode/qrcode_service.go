// Package qrcode renders and parses appointment check-in codes.
package qrcode

import (
	"encoding/json"

	"pinesvet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const checkInType = "checkin"

type qrcodeService struct {
	size          int
	recoveryLevel qrcode.RecoveryLevel
}

// checkInPayload is the JSON encoded into a check-in QR code.
type checkInPayload struct {
	AppointmentID string `json:"appointment_id"`
	Type          string `json:"type"`
}

// NewQRCodeService creates the QR code service. The recovery level uses the
// standard L/M/Q/H notation and defaults to M.
func NewQRCodeService(size int, recoveryLevel string) service.QRCodeService {
	level := qrcode.Medium
	switch recoveryLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	}

	return &qrcodeService{
		size:          size,
		recoveryLevel: level,
	}
}

// GenerateCheckInQR renders a PNG encoding the appointment's check-in
// payload.
func (s *qrcodeService) GenerateCheckInQR(appointmentID uuid.UUID) ([]byte, error) {
	payload, err := json.Marshal(checkInPayload{
		AppointmentID: appointmentID.String(),
		Type:          checkInType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal check-in payload")
	}

	code, err := qrcode.New(string(payload), s.recoveryLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code PNG")
	}

	return png, nil
}

// ParseCheckInQR decodes scanned QR data back into the appointment ID,
// rejecting payloads that are not check-in codes.
func (s *qrcodeService) ParseCheckInQR(qrData string) (uuid.UUID, error) {
	var payload checkInPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal check-in payload")
	}

	if payload.Type != checkInType {
		return uuid.Nil, errors.Errorf("unexpected QR code type: %s", payload.Type)
	}

	appointmentID, err := uuid.Parse(payload.AppointmentID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse appointment ID")
	}

	return appointmentID, nil
}
