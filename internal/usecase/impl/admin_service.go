package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"pinesvet/config"
	deliverycontext "pinesvet/internal/delivery/context"
	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/domain/service"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	adminRepo       repository.AdminRepository
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	orderRepo       repository.OrderRepository
	newsletterRepo  repository.NewsletterRepository
	overlayRepo     repository.OverlayRepository
	sessionStore    service.AdminSessionStore
	hasher          service.PasswordHasher
	emergency       config.EmergencyLoginConfig
	logger          *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AdminRepo       repository.AdminRepository
	UserRepo        repository.UserRepository
	AppointmentRepo repository.AppointmentRepository
	OrderRepo       repository.OrderRepository
	NewsletterRepo  repository.NewsletterRepository
	OverlayRepo     repository.OverlayRepository
	SessionStore    service.AdminSessionStore
	Hasher          service.PasswordHasher
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	emergency := config.EmergencyLoginConfig{}
	if params.Config != nil {
		emergency = params.Config.Admin.EmergencyLogin
	}

	return &adminService{
		adminRepo:       params.AdminRepo,
		userRepo:        params.UserRepo,
		appointmentRepo: params.AppointmentRepo,
		orderRepo:       params.OrderRepo,
		newsletterRepo:  params.NewsletterRepo,
		overlayRepo:     params.OverlayRepo,
		sessionStore:    params.SessionStore,
		hasher:          params.Hasher,
		emergency:       emergency,
		logger:          params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies back-office credentials and opens a server-side session.
// The emergency credentials stay valid alongside a stored credential so a
// forgotten custom password never locks the clinic out.
func (srv *adminService) Login(ctx context.Context, adminID, password string) (*entity.AdminSession, error) {
	emergency, err := srv.verifyCredentials(ctx, adminID, password)
	if err != nil {
		srv.log(ctx).Warn("Admin login failed", slog.String("adminID", adminID))

		return nil, err
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	session := &entity.AdminSession{
		Token:     token,
		AdminID:   adminID,
		Emergency: emergency,
		CreatedAt: time.Now(),
	}
	if err := srv.sessionStore.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to save admin session")
	}

	srv.recordActivity(ctx, adminID, "login", sessionKind(emergency))

	return session, nil
}

func (srv *adminService) verifyCredentials(ctx context.Context, adminID, password string) (emergency bool, err error) {
	if srv.emergency.Enabled && adminID == srv.emergency.AdminID && password == srv.emergency.Password {
		return true, nil
	}

	credential, err := srv.adminRepo.FindCredential(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrAdminCredentialNotFound) {
			return false, domainerrors.ErrAdminInvalidCredentials.WrapMessage("no credential configured")
		}

		return false, errors.Wrap(err, "failed to load admin credential")
	}

	if credential.AdminID != adminID || !srv.hasher.Check(password, credential.PasswordHash) {
		return false, domainerrors.ErrAdminInvalidCredentials.WrapMessage("login failed")
	}

	return false, nil
}

// Logout revokes a back-office session.
func (srv *adminService) Logout(ctx context.Context, token string) error {
	return errors.Wrap(srv.sessionStore.Delete(ctx, token), "failed to delete admin session")
}

// ValidateSession resolves a session token, extending its TTL on use.
func (srv *adminService) ValidateSession(ctx context.Context, token string) (*entity.AdminSession, error) {
	session, err := srv.sessionStore.Find(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find admin session")
	}
	if session == nil {
		return nil, domainerrors.ErrAdminSessionExpired.WrapMessage("session not found")
	}

	if err := srv.sessionStore.Touch(ctx, token); err != nil {
		srv.log(ctx).Warn("Failed to extend admin session", slog.Any("error", err))
	}

	return session, nil
}

// UpdateCredentials replaces the custom back-office credential.
func (srv *adminService) UpdateCredentials(ctx context.Context, session *entity.AdminSession, adminID, password string) error {
	if adminID == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("admin id is required")
	}

	hashed, err := srv.hasher.Hash(password)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	credential := &entity.AdminCredential{
		AdminID:      adminID,
		PasswordHash: hashed,
		UpdatedAt:    time.Now(),
	}
	if err := srv.adminRepo.SaveCredential(ctx, credential); err != nil {
		return errors.Wrap(err, "failed to save admin credential")
	}

	srv.recordActivity(ctx, session.AdminID, "credentials.update", "admin id set to "+adminID)

	return nil
}

// ListCustomers returns customer accounts for the back-office.
func (srv *adminService) ListCustomers(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// SetCustomerStatus activates or deactivates a customer account.
func (srv *adminService) SetCustomerStatus(ctx context.Context, session *entity.AdminSession, customerID uuid.UUID, status entity.UserStatus) error {
	if status != entity.UserStatusActive && status != entity.UserStatusInactive {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown status")
	}

	if err := srv.userRepo.UpdateStatus(ctx, customerID, status); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("status update failed")
		}

		return errors.Wrap(err, "failed to update user status")
	}

	srv.recordActivity(ctx, session.AdminID, "customer.status", customerID.String()+" -> "+string(status))

	return nil
}

// Report aggregates appointments, orders and signups within [from, to).
func (srv *adminService) Report(ctx context.Context, from, to time.Time) (*usecase.ReportSummary, error) {
	if !to.After(from) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("reporting window is empty")
	}

	summary := &usecase.ReportSummary{From: from, To: to}

	appointments, err := srv.appointmentRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments for report")
	}
	for _, appointment := range appointments {
		summary.AppointmentCount++
		switch appointment.Status {
		case entity.AppointmentStatusCancelled:
			summary.CancelledBookings++
		case entity.AppointmentStatusConfirmed:
			summary.ConfirmedBookings++
			summary.AppointmentRevenue += appointment.Price
		}
	}

	orders, err := srv.orderRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders for report")
	}
	for _, order := range orders {
		if order.Status == entity.OrderStatusCancelled {
			continue
		}
		summary.OrderCount++
		summary.OrderRevenue += order.UnitPrice * int64(order.Quantity)
	}

	subscribers, err := srv.newsletterRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list newsletter subscribers for report")
	}
	for _, subscriber := range subscribers {
		if !subscriber.SubscribedAt.Before(from) && subscriber.SubscribedAt.Before(to) {
			summary.NewsletterSignups++
		}
	}

	customers, err := srv.userRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers for report")
	}
	for _, customer := range customers {
		if customer.Status == entity.UserStatusActive {
			summary.ActiveCustomerCount++
		}
	}

	return summary, nil
}

// GetOverlay returns the overlay settings for a portal page.
func (srv *adminService) GetOverlay(ctx context.Context, page string) (*entity.OverlaySettings, error) {
	settings, err := srv.overlayRepo.FindByPage(ctx, page)
	if err != nil {
		if errors.Is(err, repository.ErrOverlayNotFound) {
			// An unconfigured page simply has no overlay.
			return &entity.OverlaySettings{Page: page}, nil
		}

		return nil, errors.Wrap(err, "failed to find overlay settings")
	}

	return settings, nil
}

// SaveOverlay stores the overlay settings for a portal page.
func (srv *adminService) SaveOverlay(ctx context.Context, session *entity.AdminSession, settings *entity.OverlaySettings) error {
	if settings == nil || settings.Page == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("overlay page is required")
	}

	if err := srv.overlayRepo.Save(ctx, settings); err != nil {
		return errors.Wrap(err, "failed to save overlay settings")
	}

	srv.recordActivity(ctx, session.AdminID, "overlay.save", settings.Page)

	return nil
}

// ListOverlays returns the overlay settings of every configured page.
func (srv *adminService) ListOverlays(ctx context.Context) ([]*entity.OverlaySettings, error) {
	overlays, err := srv.overlayRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list overlay settings")
	}

	return overlays, nil
}

// ListActivity returns the back-office audit trail within [from, to).
func (srv *adminService) ListActivity(ctx context.Context, from, to time.Time, limit int) ([]*entity.AdminActivity, error) {
	activity, err := srv.adminRepo.ListActivity(ctx, from, to, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admin activity")
	}

	return activity, nil
}

// recordActivity appends an audit line. Audit failures are logged, never
// surfaced: the primary action already succeeded.
func (srv *adminService) recordActivity(ctx context.Context, adminID, action, detail string) {
	entry := &entity.AdminActivity{
		AdminID:    adminID,
		Action:     action,
		Detail:     detail,
		OccurredAt: time.Now(),
	}
	if err := srv.adminRepo.RecordActivity(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to record admin activity", slog.String("action", action), slog.Any("error", err))
	}
}

func sessionKind(emergency bool) string {
	if emergency {
		return "emergency"
	}

	return "standard"
}

// newSessionToken returns a 64-character random hex token.
func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
