package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "pinesvet/internal/delivery/context"
	"pinesvet/internal/domain/constants"
	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/domain/schedule"
	"pinesvet/internal/domain/service"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager       repository.TransactionManager
	appointmentRepo repository.AppointmentRepository
	reservationRepo repository.ReservationRepository
	timeSlotRepo    repository.TimeSlotRepository
	petRepo         repository.PetRepository
	qrcodeService   service.QRCodeService
	publisher       service.EventPublisher
	logger          *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	AppointmentRepo repository.AppointmentRepository
	ReservationRepo repository.ReservationRepository
	TimeSlotRepo    repository.TimeSlotRepository
	PetRepo         repository.PetRepository
	QRCodeService   service.QRCodeService
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:       params.TxManager,
		appointmentRepo: params.AppointmentRepo,
		reservationRepo: params.ReservationRepo,
		timeSlotRepo:    params.TimeSlotRepo,
		petRepo:         params.PetRepo,
		qrcodeService:   params.QRCodeService,
		publisher:       params.Publisher,
		logger:          params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSlots returns the slot catalog for a date with availability resolved.
func (srv *bookingService) ListSlots(ctx context.Context, date time.Time) ([]usecase.SlotView, error) {
	slots, err := srv.timeSlotRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list time slots")
	}
	schedule.SortSlots(slots)

	reservations, err := srv.reservationRepo.ListByDate(ctx, schedule.DateKey(date))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	taken := make(map[uuid.UUID]struct{}, len(reservations))
	for _, reservation := range reservations {
		taken[reservation.SlotID] = struct{}{}
	}

	views := make([]usecase.SlotView, 0, len(slots))
	for _, slot := range slots {
		_, isTaken := taken[slot.ID]
		views = append(views, usecase.SlotView{
			ID:        slot.ID,
			Label:     slot.Label,
			Available: !isTaken,
		})
	}

	return views, nil
}

// BookAppointment books a visit, claiming the slot atomically.
func (srv *bookingService) BookAppointment(ctx context.Context, input usecase.BookingInput) (*entity.Appointment, error) {
	if err := schedule.ValidateNotPast(input.Date, time.Now()); err != nil {
		return nil, domainerrors.ErrInvalidBookingDate.WrapMessage(err.Error())
	}

	pet, err := srv.petRepo.FindByID(ctx, input.PetID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound.WrapMessage("booking failed")
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}
	if pet.UserID != input.UserID {
		return nil, domainerrors.ErrPetOwnershipViolation.WrapMessage("pet belongs to another account")
	}

	slot, err := srv.timeSlotRepo.FindByID(ctx, input.SlotID)
	if err != nil {
		if errors.Is(err, repository.ErrTimeSlotNotFound) {
			return nil, domainerrors.ErrSlotUnavailable.WrapMessage("slot no longer offered")
		}

		return nil, errors.Wrap(err, "failed to find time slot")
	}

	scheduledAt, dateLabel, err := schedule.Combine(input.Date, slot.Label)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	appointment := &entity.Appointment{
		ID:            uuid.New(),
		UserID:        input.UserID,
		PetID:         pet.ID,
		PetName:       pet.Name,
		Service:       input.Service,
		Category:      input.Category,
		DateLabel:     dateLabel,
		ScheduledAt:   scheduledAt,
		Status:        entity.AppointmentStatusPending,
		Price:         input.Price,
		Duration:      input.Duration,
		PaymentMethod: input.PaymentMethod,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.NewAppointmentRepository()
		reservationRepo := repoFactory.NewReservationRepository()

		// One appointment per customer per date and time.
		_, dupErr := appointmentRepo.FindByUserAndDateLabel(ctx, input.UserID, dateLabel)
		if dupErr == nil {
			return domainerrors.ErrDuplicateBooking.WrapMessage(dateLabel)
		}
		if !errors.Is(dupErr, repository.ErrAppointmentNotFound) {
			return errors.Wrap(dupErr, "failed to check for duplicate booking")
		}

		if createErr := appointmentRepo.Create(ctx, appointment); createErr != nil {
			return errors.Wrap(createErr, "failed to create appointment")
		}

		reservation := &entity.SlotReservation{
			ID:            uuid.New(),
			SlotID:        slot.ID,
			Date:          schedule.DateKey(input.Date),
			UserID:        input.UserID,
			AppointmentID: appointment.ID,
			BookedAt:      time.Now(),
		}
		if claimErr := reservationRepo.Claim(ctx, reservation); claimErr != nil {
			if errors.Is(claimErr, repository.ErrSlotTaken) {
				return domainerrors.ErrSlotUnavailable.WrapMessage(slot.Label)
			}

			return errors.Wrap(claimErr, "failed to claim slot")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Booking failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.publishAppointmentEvent(ctx, constants.EventAppointmentBooked, appointment,
		"Appointment requested",
		fmt.Sprintf("%s for %s on %s is awaiting confirmation.", appointment.Service, appointment.PetName, appointment.DateLabel))

	return appointment, nil
}

// CancelAppointment cancels a customer's own appointment and frees its slot.
func (srv *bookingService) CancelAppointment(ctx context.Context, userID, appointmentID uuid.UUID) error {
	appointment, err := srv.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return domainerrors.ErrAppointmentNotFound.WrapMessage("cancel failed")
		}

		return errors.Wrap(err, "failed to find appointment")
	}
	if appointment.UserID != userID {
		return domainerrors.ErrForbidden.WrapMessage("appointment belongs to another account")
	}
	if appointment.Status == entity.AppointmentStatusCancelled {
		return nil
	}

	if err := srv.cancelAndRelease(ctx, appointment); err != nil {
		return err
	}

	srv.publishAppointmentEvent(ctx, constants.EventAppointmentCancelled, appointment,
		"Appointment cancelled",
		fmt.Sprintf("%s for %s on %s was cancelled.", appointment.Service, appointment.PetName, appointment.DateLabel))

	return nil
}

// ListUserAppointments purges stale pending bookings, then returns the
// customer's appointments with display statuses derived.
func (srv *bookingService) ListUserAppointments(ctx context.Context, userID uuid.UUID) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find appointments by user")
	}

	now := time.Now()
	kept := make([]*entity.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.Status == entity.AppointmentStatusPending && appointment.ScheduledAt.Before(now) {
			if purgeErr := srv.purgeStalePending(ctx, appointment); purgeErr != nil {
				srv.log(ctx).Error("Failed to purge stale pending appointment",
					slog.Any("appointmentID", appointment.ID), slog.Any("error", purgeErr))
				kept = append(kept, appointment)
			}

			continue
		}

		appointment.Status = schedule.DeriveStatus(appointment, now)
		kept = append(kept, appointment)
	}

	return kept, nil
}

// GenerateCheckInQR produces the check-in QR image for an appointment owned
// by the user.
func (srv *bookingService) GenerateCheckInQR(ctx context.Context, userID, appointmentID uuid.UUID) ([]byte, error) {
	appointment, err := srv.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil, domainerrors.ErrAppointmentNotFound.WrapMessage("qr generation failed")
		}

		return nil, errors.Wrap(err, "failed to find appointment")
	}
	if appointment.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("appointment belongs to another account")
	}
	if appointment.Status != entity.AppointmentStatusConfirmed {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("only confirmed appointments can be checked in")
	}

	qrCode, err := srv.qrcodeService.GenerateCheckInQR(appointment.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate check-in QR")
	}

	return qrCode, nil
}

// AddSlot adds a slot to the global catalog.
func (srv *bookingService) AddSlot(ctx context.Context, label string) (*entity.TimeSlot, error) {
	if _, err := schedule.ParseSlotLabel(label); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	slot := &entity.TimeSlot{
		ID:    uuid.New(),
		Label: label,
	}
	if err := srv.timeSlotRepo.Create(ctx, slot); err != nil {
		return nil, errors.Wrap(err, "failed to create time slot")
	}

	return slot, nil
}

// RemoveSlot removes a slot from the global catalog. Existing reservations
// keep their rows; only future bookings lose the option.
func (srv *bookingService) RemoveSlot(ctx context.Context, slotID uuid.UUID) error {
	if err := srv.timeSlotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, repository.ErrTimeSlotNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("time slot not found")
		}

		return errors.Wrap(err, "failed to delete time slot")
	}

	return nil
}

// ListAppointments returns all appointments for the back-office with display
// statuses derived.
func (srv *bookingService) ListAppointments(ctx context.Context, limit, offset int) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	now := time.Now()
	for _, appointment := range appointments {
		appointment.Status = schedule.DeriveStatus(appointment, now)
	}

	return appointments, nil
}

// SetAppointmentStatus transitions an appointment from the back-office.
func (srv *bookingService) SetAppointmentStatus(ctx context.Context, appointmentID uuid.UUID, status entity.AppointmentStatus) error {
	if status != entity.AppointmentStatusConfirmed && status != entity.AppointmentStatusCancelled {
		return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("status %q cannot be set", status))
	}

	appointment, err := srv.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return domainerrors.ErrAppointmentNotFound.WrapMessage("status update failed")
		}

		return errors.Wrap(err, "failed to find appointment")
	}
	if appointment.Status == status {
		return nil
	}

	if status == entity.AppointmentStatusCancelled {
		if err := srv.cancelAndRelease(ctx, appointment); err != nil {
			return err
		}

		srv.publishAppointmentEvent(ctx, constants.EventAppointmentCancelled, appointment,
			"Appointment cancelled",
			fmt.Sprintf("%s for %s on %s was cancelled by the clinic.", appointment.Service, appointment.PetName, appointment.DateLabel))

		return nil
	}

	if err := srv.appointmentRepo.UpdateStatus(ctx, appointmentID, status); err != nil {
		return errors.Wrap(err, "failed to update appointment status")
	}
	appointment.Status = status

	srv.publishAppointmentEvent(ctx, constants.EventAppointmentConfirmed, appointment,
		"Appointment confirmed",
		fmt.Sprintf("%s for %s on %s is confirmed. See you there!", appointment.Service, appointment.PetName, appointment.DateLabel))

	return nil
}

// CheckIn resolves a scanned QR payload to the appointment it belongs to.
func (srv *bookingService) CheckIn(ctx context.Context, qrData string) (*entity.Appointment, error) {
	appointmentID, err := srv.qrcodeService.ParseCheckInQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unrecognized check-in code")
	}

	appointment, err := srv.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil, domainerrors.ErrAppointmentNotFound.WrapMessage("check-in failed")
		}

		return nil, errors.Wrap(err, "failed to find appointment")
	}

	return appointment, nil
}

// cancelAndRelease flips the appointment to Cancelled and frees its slot in
// one transaction.
func (srv *bookingService) cancelAndRelease(ctx context.Context, appointment *entity.Appointment) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if updateErr := repoFactory.NewAppointmentRepository().
			UpdateStatus(ctx, appointment.ID, entity.AppointmentStatusCancelled); updateErr != nil {
			return errors.Wrap(updateErr, "failed to cancel appointment")
		}

		if releaseErr := repoFactory.NewReservationRepository().
			ReleaseByAppointment(ctx, appointment.ID); releaseErr != nil &&
			!errors.Is(releaseErr, repository.ErrReservationNotFound) {
			return errors.Wrap(releaseErr, "failed to release slot reservation")
		}

		return nil
	})
	if err != nil {
		return err
	}
	appointment.Status = entity.AppointmentStatusCancelled

	return nil
}

// purgeStalePending removes a pending appointment whose date passed without
// confirmation, freeing the slot row with it.
func (srv *bookingService) purgeStalePending(ctx context.Context, appointment *entity.Appointment) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if releaseErr := repoFactory.NewReservationRepository().
			ReleaseByAppointment(ctx, appointment.ID); releaseErr != nil &&
			!errors.Is(releaseErr, repository.ErrReservationNotFound) {
			return errors.Wrap(releaseErr, "failed to release slot reservation")
		}

		return errors.Wrap(repoFactory.NewAppointmentRepository().Delete(ctx, appointment.ID),
			"failed to delete stale appointment")
	})
}

// publishAppointmentEvent pushes an appointment notification onto the event
// bus. Publish failures are logged, never surfaced.
func (srv *bookingService) publishAppointmentEvent(ctx context.Context, eventType string, appointment *entity.Appointment, title, body string) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     appointment.UserID.String(),
		SourceKey:  "appointment:" + appointment.ID.String(),
		Title:      title,
		Body:       body,
		OccurredAt: time.Now(),
		Data: map[string]string{
			"appointment_id": appointment.ID.String(),
			"status":         string(appointment.Status),
		},
	}
	if err := srv.publisher.PublishDomainEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish appointment event", slog.String("type", eventType), slog.Any("error", err))
	}
}
