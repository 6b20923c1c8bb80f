package impl

import (
	"context"
	"testing"
	"time"

	"pinesvet/internal/domain/constants"
	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/domain/schedule"
	domainservice "pinesvet/internal/domain/service"
	mockRepo "pinesvet/internal/mocks/repository"
	mockSvc "pinesvet/internal/mocks/service"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingServiceMocks struct {
	txManager       *mockRepo.MockTransactionManager
	factory         *mockRepo.MockRepositoryFactory
	appointmentRepo *mockRepo.MockAppointmentRepository
	reservationRepo *mockRepo.MockReservationRepository
	timeSlotRepo    *mockRepo.MockTimeSlotRepository
	petRepo         *mockRepo.MockPetRepository
	qrcodeService   *mockSvc.MockQRCodeService
	publisher       *mockSvc.MockEventPublisher
}

func newBookingService(t *testing.T) (usecase.BookingUsecase, *bookingServiceMocks) {
	mocks := &bookingServiceMocks{
		txManager:       mockRepo.NewMockTransactionManager(t),
		factory:         mockRepo.NewMockRepositoryFactory(t),
		appointmentRepo: mockRepo.NewMockAppointmentRepository(t),
		reservationRepo: mockRepo.NewMockReservationRepository(t),
		timeSlotRepo:    mockRepo.NewMockTimeSlotRepository(t),
		petRepo:         mockRepo.NewMockPetRepository(t),
		qrcodeService:   mockSvc.NewMockQRCodeService(t),
		publisher:       mockSvc.NewMockEventPublisher(t),
	}
	bookingService := NewBookingService(BookingServiceParams{
		TxManager:       mocks.txManager,
		AppointmentRepo: mocks.appointmentRepo,
		ReservationRepo: mocks.reservationRepo,
		TimeSlotRepo:    mocks.timeSlotRepo,
		PetRepo:         mocks.petRepo,
		QRCodeService:   mocks.qrcodeService,
		Publisher:       mocks.publisher,
		Logger:          newDiscardLogger(),
	})

	return bookingService, mocks
}

func tomorrow() time.Time {
	return time.Now().AddDate(0, 0, 1)
}

func TestBookingService_ListSlots_ResolvesAvailability(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	date := tomorrow()
	morning := &entity.TimeSlot{ID: uuid.New(), Label: "9:00 AM"}
	afternoon := &entity.TimeSlot{ID: uuid.New(), Label: "2:00 PM"}

	mocks.timeSlotRepo.EXPECT().
		List(ctx).
		Return([]*entity.TimeSlot{afternoon, morning}, nil)
	mocks.reservationRepo.EXPECT().
		ListByDate(ctx, schedule.DateKey(date)).
		Return([]*entity.SlotReservation{{SlotID: morning.ID}}, nil)

	views, err := bookingService.ListSlots(ctx, date)
	require.NoError(t, err)
	require.Len(t, views, 2)
	// Sorted by time of day, with the reserved slot flagged taken.
	assert.Equal(t, "9:00 AM", views[0].Label)
	assert.False(t, views[0].Available)
	assert.Equal(t, "2:00 PM", views[1].Label)
	assert.True(t, views[1].Available)
}

func TestBookingService_BookAppointment_Success(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	pet := &entity.Pet{ID: uuid.New(), UserID: userID, Name: "Milo"}
	slot := &entity.TimeSlot{ID: uuid.New(), Label: "9:00 AM"}
	input := usecase.BookingInput{
		UserID:        userID,
		PetID:         pet.ID,
		SlotID:        slot.ID,
		Date:          tomorrow(),
		Service:       "Wellness Exam",
		Category:      "Consultation",
		Price:         500,
		Duration:      "45 mins",
		PaymentMethod: "cash",
	}

	mocks.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
	mocks.timeSlotRepo.EXPECT().FindByID(ctx, slot.ID).Return(slot, nil)

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewAppointmentRepository().Return(mocks.appointmentRepo)
	mocks.factory.EXPECT().NewReservationRepository().Return(mocks.reservationRepo)

	mocks.appointmentRepo.EXPECT().
		FindByUserAndDateLabel(ctx, userID, mock.AnythingOfType("string")).
		Return(nil, repository.ErrAppointmentNotFound)
	mocks.appointmentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Appointment")).
		Return(nil)
	mocks.reservationRepo.EXPECT().
		Claim(ctx, mock.AnythingOfType("*entity.SlotReservation")).
		Run(func(_ context.Context, reservation *entity.SlotReservation) {
			assert.Equal(t, slot.ID, reservation.SlotID)
			assert.Equal(t, schedule.DateKey(input.Date), reservation.Date)
		}).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *domainservice.DomainEvent) {
			assert.Equal(t, constants.EventAppointmentBooked, event.Type)
		}).
		Return(nil)

	appointment, err := bookingService.BookAppointment(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusPending, appointment.Status)
	assert.Equal(t, "Milo", appointment.PetName)
	assert.Contains(t, appointment.DateLabel, "9:00 AM")
}

func TestBookingService_BookAppointment_PastDate(t *testing.T) {
	bookingService, _ := newBookingService(t)

	input := usecase.BookingInput{
		UserID: uuid.New(),
		PetID:  uuid.New(),
		SlotID: uuid.New(),
		Date:   time.Now().AddDate(0, 0, -1),
	}

	appointment, err := bookingService.BookAppointment(context.Background(), input)
	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBookingDate)
}

func TestBookingService_BookAppointment_ForeignPet(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	petID := uuid.New()
	pet := &entity.Pet{ID: petID, UserID: uuid.New(), Name: "Milo"}

	mocks.petRepo.EXPECT().FindByID(ctx, petID).Return(pet, nil)

	appointment, err := bookingService.BookAppointment(ctx, usecase.BookingInput{
		UserID: uuid.New(),
		PetID:  petID,
		SlotID: uuid.New(),
		Date:   tomorrow(),
	})
	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, domainerrors.ErrPetOwnershipViolation)
}

func TestBookingService_BookAppointment_DuplicateDate(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	pet := &entity.Pet{ID: uuid.New(), UserID: userID, Name: "Milo"}
	slot := &entity.TimeSlot{ID: uuid.New(), Label: "9:00 AM"}

	mocks.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
	mocks.timeSlotRepo.EXPECT().FindByID(ctx, slot.ID).Return(slot, nil)

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewAppointmentRepository().Return(mocks.appointmentRepo)
	mocks.factory.EXPECT().NewReservationRepository().Return(mocks.reservationRepo)

	existing := &entity.Appointment{ID: uuid.New(), UserID: userID}
	mocks.appointmentRepo.EXPECT().
		FindByUserAndDateLabel(ctx, userID, mock.AnythingOfType("string")).
		Return(existing, nil)

	appointment, err := bookingService.BookAppointment(ctx, usecase.BookingInput{
		UserID: userID,
		PetID:  pet.ID,
		SlotID: slot.ID,
		Date:   tomorrow(),
	})
	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateBooking)
}

func TestBookingService_BookAppointment_SlotTaken(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	pet := &entity.Pet{ID: uuid.New(), UserID: userID, Name: "Milo"}
	slot := &entity.TimeSlot{ID: uuid.New(), Label: "9:00 AM"}

	mocks.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
	mocks.timeSlotRepo.EXPECT().FindByID(ctx, slot.ID).Return(slot, nil)

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewAppointmentRepository().Return(mocks.appointmentRepo)
	mocks.factory.EXPECT().NewReservationRepository().Return(mocks.reservationRepo)

	mocks.appointmentRepo.EXPECT().
		FindByUserAndDateLabel(ctx, userID, mock.AnythingOfType("string")).
		Return(nil, repository.ErrAppointmentNotFound)
	mocks.appointmentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Appointment")).
		Return(nil)
	mocks.reservationRepo.EXPECT().
		Claim(ctx, mock.AnythingOfType("*entity.SlotReservation")).
		Return(repository.ErrSlotTaken)

	appointment, err := bookingService.BookAppointment(ctx, usecase.BookingInput{
		UserID: userID,
		PetID:  pet.ID,
		SlotID: slot.ID,
		Date:   tomorrow(),
	})
	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, domainerrors.ErrSlotUnavailable)
}

func TestBookingService_CancelAppointment_ReleasesSlot(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	appointment := &entity.Appointment{
		ID:      uuid.New(),
		UserID:  userID,
		PetName: "Milo",
		Status:  entity.AppointmentStatusConfirmed,
	}

	mocks.appointmentRepo.EXPECT().FindByID(ctx, appointment.ID).Return(appointment, nil)

	passthroughTx(mocks.txManager, mocks.factory)
	txAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	mocks.factory.EXPECT().NewAppointmentRepository().Return(txAppointmentRepo)
	mocks.factory.EXPECT().NewReservationRepository().Return(mocks.reservationRepo)

	txAppointmentRepo.EXPECT().
		UpdateStatus(ctx, appointment.ID, entity.AppointmentStatusCancelled).
		Return(nil)
	mocks.reservationRepo.EXPECT().
		ReleaseByAppointment(ctx, appointment.ID).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *domainservice.DomainEvent) {
			assert.Equal(t, constants.EventAppointmentCancelled, event.Type)
		}).
		Return(nil)

	err := bookingService.CancelAppointment(ctx, userID, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCancelled, appointment.Status)
}

func TestBookingService_CancelAppointment_AlreadyCancelled(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	appointment := &entity.Appointment{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.AppointmentStatusCancelled,
	}

	mocks.appointmentRepo.EXPECT().FindByID(ctx, appointment.ID).Return(appointment, nil)

	err := bookingService.CancelAppointment(ctx, userID, appointment.ID)
	require.NoError(t, err)
}

func TestBookingService_CancelAppointment_ForeignAppointment(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	appointment := &entity.Appointment{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: entity.AppointmentStatusPending,
	}

	mocks.appointmentRepo.EXPECT().FindByID(ctx, appointment.ID).Return(appointment, nil)

	err := bookingService.CancelAppointment(ctx, uuid.New(), appointment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBookingService_ListUserAppointments_PurgesStalePending(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	stale := &entity.Appointment{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      entity.AppointmentStatusPending,
		ScheduledAt: time.Now().Add(-48 * time.Hour),
	}
	upcoming := &entity.Appointment{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      entity.AppointmentStatusConfirmed,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	}

	mocks.appointmentRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.Appointment{stale, upcoming}, nil)

	passthroughTx(mocks.txManager, mocks.factory)
	txAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	mocks.factory.EXPECT().NewAppointmentRepository().Return(txAppointmentRepo)
	mocks.factory.EXPECT().NewReservationRepository().Return(mocks.reservationRepo)

	mocks.reservationRepo.EXPECT().
		ReleaseByAppointment(ctx, stale.ID).
		Return(repository.ErrReservationNotFound)
	txAppointmentRepo.EXPECT().Delete(ctx, stale.ID).Return(nil)

	appointments, err := bookingService.ListUserAppointments(ctx, userID)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, upcoming.ID, appointments[0].ID)
}

func TestBookingService_ListUserAppointments_KeepsConcludedPast(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	past := &entity.Appointment{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      entity.AppointmentStatusConfirmed,
		ScheduledAt: time.Now().Add(-48 * time.Hour),
	}

	mocks.appointmentRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.Appointment{past}, nil)

	appointments, err := bookingService.ListUserAppointments(ctx, userID)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, entity.AppointmentStatusConcluded, appointments[0].Status)
}

func TestBookingService_GenerateCheckInQR_ConfirmedOnly(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	appointment := &entity.Appointment{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      entity.AppointmentStatusPending,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	}

	mocks.appointmentRepo.EXPECT().FindByID(ctx, appointment.ID).Return(appointment, nil)

	qrCode, err := bookingService.GenerateCheckInQR(ctx, userID, appointment.ID)
	assert.Nil(t, qrCode)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBookingService_GenerateCheckInQR_Success(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	appointment := &entity.Appointment{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      entity.AppointmentStatusConfirmed,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	}
	expectedQR := []byte("qr-png-bytes")

	mocks.appointmentRepo.EXPECT().FindByID(ctx, appointment.ID).Return(appointment, nil)
	mocks.qrcodeService.EXPECT().GenerateCheckInQR(appointment.ID).Return(expectedQR, nil)

	qrCode, err := bookingService.GenerateCheckInQR(ctx, userID, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, expectedQR, qrCode)
}

func TestBookingService_AddSlot_RejectsBadLabel(t *testing.T) {
	bookingService, _ := newBookingService(t)

	slot, err := bookingService.AddSlot(context.Background(), "25:99")
	assert.Nil(t, slot)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBookingService_AddSlot_Success(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	mocks.timeSlotRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.TimeSlot")).
		Return(nil)

	slot, err := bookingService.AddSlot(ctx, "10:30 AM")
	require.NoError(t, err)
	assert.Equal(t, "10:30 AM", slot.Label)
	assert.NotEqual(t, uuid.Nil, slot.ID)
}

func TestBookingService_SetAppointmentStatus_Confirm(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	appointment := &entity.Appointment{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		PetName: "Milo",
		Status:  entity.AppointmentStatusPending,
	}

	mocks.appointmentRepo.EXPECT().FindByID(ctx, appointment.ID).Return(appointment, nil)
	mocks.appointmentRepo.EXPECT().
		UpdateStatus(ctx, appointment.ID, entity.AppointmentStatusConfirmed).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *domainservice.DomainEvent) {
			assert.Equal(t, constants.EventAppointmentConfirmed, event.Type)
			assert.Equal(t, "appointment:"+appointment.ID.String(), event.SourceKey)
		}).
		Return(nil)

	err := bookingService.SetAppointmentStatus(ctx, appointment.ID, entity.AppointmentStatusConfirmed)
	require.NoError(t, err)
}

func TestBookingService_SetAppointmentStatus_RejectsPending(t *testing.T) {
	bookingService, _ := newBookingService(t)

	err := bookingService.SetAppointmentStatus(context.Background(), uuid.New(), entity.AppointmentStatusPending)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBookingService_CheckIn_Success(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	ctx := context.Background()
	appointment := &entity.Appointment{ID: uuid.New(), UserID: uuid.New()}
	qrData := "checkin-payload"

	mocks.qrcodeService.EXPECT().ParseCheckInQR(qrData).Return(appointment.ID, nil)
	mocks.appointmentRepo.EXPECT().FindByID(ctx, appointment.ID).Return(appointment, nil)

	resolved, err := bookingService.CheckIn(ctx, qrData)
	require.NoError(t, err)
	assert.Equal(t, appointment.ID, resolved.ID)
}

func TestBookingService_CheckIn_BadPayload(t *testing.T) {
	bookingService, mocks := newBookingService(t)

	mocks.qrcodeService.EXPECT().
		ParseCheckInQR("garbage").
		Return(uuid.Nil, errors.New("parse error"))

	appointment, err := bookingService.CheckIn(context.Background(), "garbage")
	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
