package impl

import (
	"context"
	"testing"
	"time"

	"pinesvet/config"
	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	mockRepo "pinesvet/internal/mocks/repository"
	mockSvc "pinesvet/internal/mocks/service"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceMocks struct {
	adminRepo       *mockRepo.MockAdminRepository
	userRepo        *mockRepo.MockUserRepository
	appointmentRepo *mockRepo.MockAppointmentRepository
	orderRepo       *mockRepo.MockOrderRepository
	newsletterRepo  *mockRepo.MockNewsletterRepository
	overlayRepo     *mockRepo.MockOverlayRepository
	sessionStore    *mockSvc.MockAdminSessionStore
	hasher          *mockSvc.MockPasswordHasher
}

func newAdminService(t *testing.T, cfg *config.Config) (usecase.AdminUsecase, *adminServiceMocks) {
	mocks := &adminServiceMocks{
		adminRepo:       mockRepo.NewMockAdminRepository(t),
		userRepo:        mockRepo.NewMockUserRepository(t),
		appointmentRepo: mockRepo.NewMockAppointmentRepository(t),
		orderRepo:       mockRepo.NewMockOrderRepository(t),
		newsletterRepo:  mockRepo.NewMockNewsletterRepository(t),
		overlayRepo:     mockRepo.NewMockOverlayRepository(t),
		sessionStore:    mockSvc.NewMockAdminSessionStore(t),
		hasher:          mockSvc.NewMockPasswordHasher(t),
	}
	adminService := NewAdminService(AdminServiceParams{
		AdminRepo:       mocks.adminRepo,
		UserRepo:        mocks.userRepo,
		AppointmentRepo: mocks.appointmentRepo,
		OrderRepo:       mocks.orderRepo,
		NewsletterRepo:  mocks.newsletterRepo,
		OverlayRepo:     mocks.overlayRepo,
		SessionStore:    mocks.sessionStore,
		Hasher:          mocks.hasher,
		Config:          cfg,
		Logger:          newDiscardLogger(),
	})

	return adminService, mocks
}

func emergencyConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.EmergencyLogin = config.EmergencyLoginConfig{
		Enabled:  true,
		AdminID:  "clinic-admin",
		Password: "break-glass",
	}

	return cfg
}

func TestAdminService_Login_EmergencyCredentials(t *testing.T) {
	adminService, mocks := newAdminService(t, emergencyConfig())

	ctx := context.Background()

	mocks.sessionStore.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.AdminSession")).
		Return(nil)
	mocks.adminRepo.EXPECT().
		RecordActivity(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Return(nil)

	session, err := adminService.Login(ctx, "clinic-admin", "break-glass")
	require.NoError(t, err)
	assert.True(t, session.Emergency)
	assert.Equal(t, "clinic-admin", session.AdminID)
	assert.Len(t, session.Token, 64)
}

func TestAdminService_Login_StoredCredential(t *testing.T) {
	adminService, mocks := newAdminService(t, &config.Config{})

	ctx := context.Background()
	credential := &entity.AdminCredential{AdminID: "drlopez", PasswordHash: "hashed"}

	mocks.adminRepo.EXPECT().FindCredential(ctx).Return(credential, nil)
	mocks.hasher.EXPECT().Check("s3cret", "hashed").Return(true)
	mocks.sessionStore.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.AdminSession")).
		Return(nil)
	mocks.adminRepo.EXPECT().
		RecordActivity(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Return(nil)

	session, err := adminService.Login(ctx, "drlopez", "s3cret")
	require.NoError(t, err)
	assert.False(t, session.Emergency)
}

func TestAdminService_Login_EmergencyStaysValidAfterCustomCredential(t *testing.T) {
	// A saved credential must not lock out the emergency login.
	adminService, mocks := newAdminService(t, emergencyConfig())

	ctx := context.Background()

	mocks.sessionStore.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.AdminSession")).
		Return(nil)
	mocks.adminRepo.EXPECT().
		RecordActivity(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Return(nil)

	session, err := adminService.Login(ctx, "clinic-admin", "break-glass")
	require.NoError(t, err)
	assert.True(t, session.Emergency)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	adminService, mocks := newAdminService(t, &config.Config{})

	ctx := context.Background()
	credential := &entity.AdminCredential{AdminID: "drlopez", PasswordHash: "hashed"}

	mocks.adminRepo.EXPECT().FindCredential(ctx).Return(credential, nil)
	mocks.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	session, err := adminService.Login(ctx, "drlopez", "wrong")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrAdminInvalidCredentials)
}

func TestAdminService_Login_NoCredentialConfigured(t *testing.T) {
	adminService, mocks := newAdminService(t, &config.Config{})

	ctx := context.Background()

	mocks.adminRepo.EXPECT().
		FindCredential(ctx).
		Return(nil, repository.ErrAdminCredentialNotFound)

	session, err := adminService.Login(ctx, "anyone", "anything")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrAdminInvalidCredentials)
}

func TestAdminService_ValidateSession_ExtendsTTL(t *testing.T) {
	adminService, mocks := newAdminService(t, &config.Config{})

	ctx := context.Background()
	session := &entity.AdminSession{Token: "tok", AdminID: "drlopez"}

	mocks.sessionStore.EXPECT().Find(ctx, "tok").Return(session, nil)
	mocks.sessionStore.EXPECT().Touch(ctx, "tok").Return(nil)

	resolved, err := adminService.ValidateSession(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "drlopez", resolved.AdminID)
}

func TestAdminService_ValidateSession_Expired(t *testing.T) {
	adminService, mocks := newAdminService(t, &config.Config{})

	ctx := context.Background()

	mocks.sessionStore.EXPECT().Find(ctx, "stale").Return(nil, nil)

	resolved, err := adminService.ValidateSession(ctx, "stale")
	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, domainerrors.ErrAdminSessionExpired)
}

func TestAdminService_UpdateCredentials_HashesAndAudits(t *testing.T) {
	adminService, mocks := newAdminService(t, &config.Config{})

	ctx := context.Background()
	session := &entity.AdminSession{Token: "tok", AdminID: "clinic-admin"}

	mocks.hasher.EXPECT().Hash("NewPass123!").Return("new-hash", nil)
	mocks.adminRepo.EXPECT().
		SaveCredential(ctx, mock.AnythingOfType("*entity.AdminCredential")).
		Run(func(_ context.Context, credential *entity.AdminCredential) {
			assert.Equal(t, "drlopez", credential.AdminID)
			assert.Equal(t, "new-hash", credential.PasswordHash)
		}).
		Return(nil)
	mocks.adminRepo.EXPECT().
		RecordActivity(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Return(nil)

	err := adminService.UpdateCredentials(ctx, session, "drlopez", "NewPass123!")
	require.NoError(t, err)
}

func TestAdminService_UpdateCredentials_WeakPassword(t *testing.T) {
	adminService, mocks := newAdminService(t, &config.Config{})

	session := &entity.AdminSession{Token: "tok", AdminID: "clinic-admin"}

	mocks.hasher.EXPECT().
		Hash("weak").
		Return("", domainerrors.ErrPasswordStrength.WrapMessage("password must be at least 8 characters long"))

	err := adminService.UpdateCredentials(context.Background(), session, "drlopez", "weak")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_SetCustomerStatus_Deactivate(t *testing.T) {
	adminService, mocks := newAdminService(t, &config.Config{})

	ctx := context.Background()
	session := &entity.AdminSession{Token: "tok", AdminID: "clinic-admin"}
	customerID := uuid.New()

	mocks.userRepo.EXPECT().
		UpdateStatus(ctx, customerID, entity.UserStatusInactive).
		Return(nil)
	mocks.adminRepo.EXPECT().
		RecordActivity(ctx, mock.AnythingOfType("*entity.AdminActivity")).
		Return(nil)

	err := adminService.SetCustomerStatus(ctx, session, customerID, entity.UserStatusInactive)
	require.NoError(t, err)
}

func TestAdminService_SetCustomerStatus_UnknownStatus(t *testing.T) {
	adminService, _ := newAdminService(t, &config.Config{})

	session := &entity.AdminSession{Token: "tok", AdminID: "clinic-admin"}

	err := adminService.SetCustomerStatus(context.Background(), session, uuid.New(), entity.UserStatus("Banned"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_Report_Aggregates(t *testing.T) {
	adminService, mocks := newAdminService(t, &config.Config{})

	ctx := context.Background()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	appointments := []*entity.Appointment{
		{Status: entity.AppointmentStatusConfirmed, Price: 500},
		{Status: entity.AppointmentStatusConfirmed, Price: 700},
		{Status: entity.AppointmentStatusCancelled, Price: 300},
		{Status: entity.AppointmentStatusPending, Price: 200},
	}
	orders := []*entity.Order{
		{Status: entity.OrderStatusConfirmed, UnitPrice: 850, Quantity: 2},
		{Status: entity.OrderStatusCancelled, UnitPrice: 400, Quantity: 1},
	}
	subscribers := []*entity.NewsletterSubscriber{
		{Email: "a@example.com", SubscribedAt: from.Add(24 * time.Hour)},
		{Email: "b@example.com", SubscribedAt: from.Add(-24 * time.Hour)},
	}
	customers := []*entity.User{
		{Status: entity.UserStatusActive},
		{Status: entity.UserStatusInactive},
		{Status: entity.UserStatusActive},
	}

	mocks.appointmentRepo.EXPECT().ListBetween(ctx, from, to).Return(appointments, nil)
	mocks.orderRepo.EXPECT().ListBetween(ctx, from, to).Return(orders, nil)
	mocks.newsletterRepo.EXPECT().List(ctx).Return(subscribers, nil)
	mocks.userRepo.EXPECT().List(ctx, 0, 0).Return(customers, nil)

	summary, err := adminService.Report(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.AppointmentCount)
	assert.Equal(t, 2, summary.ConfirmedBookings)
	assert.Equal(t, 1, summary.CancelledBookings)
	assert.Equal(t, int64(1200), summary.AppointmentRevenue)
	assert.Equal(t, 1, summary.OrderCount)
	assert.Equal(t, int64(1700), summary.OrderRevenue)
	assert.Equal(t, 1, summary.NewsletterSignups)
	assert.Equal(t, 2, summary.ActiveCustomerCount)
}

func TestAdminService_Report_EmptyWindow(t *testing.T) {
	adminService, _ := newAdminService(t, &config.Config{})

	now := time.Now()
	summary, err := adminService.Report(context.Background(), now, now)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_GetOverlay_UnconfiguredPageIsEmpty(t *testing.T) {
	adminService, mocks := newAdminService(t, &config.Config{})

	ctx := context.Background()

	mocks.overlayRepo.EXPECT().
		FindByPage(ctx, "shop").
		Return(nil, repository.ErrOverlayNotFound)

	settings, err := adminService.GetOverlay(ctx, "shop")
	require.NoError(t, err)
	assert.Equal(t, "shop", settings.Page)
	assert.Empty(t, settings.Title)
}

func TestAdminService_SaveOverlay_RequiresPage(t *testing.T) {
	adminService, _ := newAdminService(t, &config.Config{})

	session := &entity.AdminSession{Token: "tok", AdminID: "clinic-admin"}

	err := adminService.SaveOverlay(context.Background(), session, &entity.OverlaySettings{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_Logout(t *testing.T) {
	adminService, mocks := newAdminService(t, &config.Config{})

	ctx := context.Background()

	mocks.sessionStore.EXPECT().Delete(ctx, "tok").Return(nil)

	err := adminService.Logout(ctx, "tok")
	require.NoError(t, err)
}
