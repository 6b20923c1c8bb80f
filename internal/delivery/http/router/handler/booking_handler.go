package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pinesvet/internal/delivery/http/response"
	"pinesvet/internal/domain/entity"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayout is the calendar-day format accepted on the wire.
const dateLayout = "2006-01-02"

// BookingHandler holds dependencies for appointment booking handlers.
type BookingHandler struct {
	uc     usecase.BookingUsecase
	logger *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{uc: uc, logger: logger}
}

// ListSlots returns the slot catalog for a date with availability resolved.
func (h *BookingHandler) ListSlots(c echo.Context) error {
	date, err := time.Parse(dateLayout, c.QueryParam("date"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing date, expected YYYY-MM-DD")
	}

	slots, err := h.uc.ListSlots(c.Request().Context(), date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, slots, "Slots retrieved successfully")
}

type bookRequest struct {
	PetID         uuid.UUID `json:"pet_id" validate:"required"`
	SlotID        uuid.UUID `json:"slot_id" validate:"required"`
	Date          string    `json:"date" validate:"required"`
	Service       string    `json:"service" validate:"required"`
	Category      string    `json:"category"`
	Price         int64     `json:"price"`
	Duration      string    `json:"duration"`
	PaymentMethod string    `json:"payment_method"`
}

// Book creates an appointment, claiming the slot atomically.
func (h *BookingHandler) Book(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
	}

	appointment, err := h.uc.BookAppointment(c.Request().Context(), usecase.BookingInput{
		UserID:        userID,
		PetID:         req.PetID,
		SlotID:        req.SlotID,
		Date:          date,
		Service:       req.Service,
		Category:      req.Category,
		Price:         req.Price,
		Duration:      req.Duration,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, appointment, "Appointment booked successfully")
}

// Cancel cancels one of the current user's appointments and frees its slot.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	appointmentID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment ID")
	}

	if err := h.uc.CancelAppointment(c.Request().Context(), userID, appointmentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Appointment cancelled successfully")
}

// ListMine returns the current user's appointments with display statuses.
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	appointments, err := h.uc.ListUserAppointments(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "Appointments retrieved successfully")
}

// CheckInQR streams the check-in QR code PNG for a confirmed appointment.
func (h *BookingHandler) CheckInQR(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	appointmentID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment ID")
	}

	png, err := h.uc.GenerateCheckInQR(c.Request().Context(), userID, appointmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type slotRequest struct {
	Label string `json:"label" validate:"required"`
}

// AddSlot adds a slot to the global catalog (back-office).
func (h *BookingHandler) AddSlot(c echo.Context) error {
	var req slotRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid slot input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	slot, err := h.uc.AddSlot(c.Request().Context(), req.Label)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, slot, "Slot added successfully")
}

// RemoveSlot removes a slot from the global catalog (back-office).
func (h *BookingHandler) RemoveSlot(c echo.Context) error {
	slotID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid slot ID")
	}

	if err := h.uc.RemoveSlot(c.Request().Context(), slotID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Slot removed successfully")
}

// ListAppointments returns all appointments (back-office).
func (h *BookingHandler) ListAppointments(c echo.Context) error {
	limit, offset := pagination(c)

	appointments, err := h.uc.ListAppointments(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "Appointments retrieved successfully")
}

type appointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetStatus transitions an appointment (back-office).
func (h *BookingHandler) SetStatus(c echo.Context) error {
	appointmentID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment ID")
	}

	var req appointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.uc.SetAppointmentStatus(c.Request().Context(), appointmentID, entity.AppointmentStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Appointment status updated")
}

type checkInRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// CheckIn resolves a scanned QR payload to its appointment (back-office).
func (h *BookingHandler) CheckIn(c echo.Context) error {
	var req checkInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	appointment, err := h.uc.CheckIn(c.Request().Context(), req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Check-in successful")
}
