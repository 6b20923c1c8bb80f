package usecase

import (
	"context"
	"time"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportSummary aggregates back-office figures for a reporting window.
type ReportSummary struct {
	From                time.Time `json:"from"`
	To                  time.Time `json:"to"`
	AppointmentCount    int       `json:"appointment_count"`
	AppointmentRevenue  int64     `json:"appointment_revenue"`
	OrderCount          int       `json:"order_count"`
	OrderRevenue        int64     `json:"order_revenue"`
	CancelledBookings   int       `json:"cancelled_bookings"`
	ConfirmedBookings   int       `json:"confirmed_bookings"`
	NewsletterSignups   int       `json:"newsletter_signups"`
	ActiveCustomerCount int       `json:"active_customer_count"`
}

// AdminUsecase defines the interface for back-office use cases.
type AdminUsecase interface {
	// Login verifies back-office credentials and opens a server-side
	// session. The emergency credentials work only when enabled in
	// configuration, and remain valid alongside a custom credential.
	Login(ctx context.Context, adminID, password string) (*entity.AdminSession, error)

	// Logout revokes a back-office session.
	Logout(ctx context.Context, token string) error

	// ValidateSession resolves a session token, extending its TTL on use.
	ValidateSession(ctx context.Context, token string) (*entity.AdminSession, error)

	// UpdateCredentials replaces the custom back-office credential.
	UpdateCredentials(ctx context.Context, session *entity.AdminSession, adminID, password string) error

	// ListCustomers returns customer accounts for the back-office.
	ListCustomers(ctx context.Context, limit, offset int) ([]*entity.User, error)

	// SetCustomerStatus activates or deactivates a customer account.
	SetCustomerStatus(ctx context.Context, session *entity.AdminSession, customerID uuid.UUID, status entity.UserStatus) error

	// Report aggregates appointments, orders and signups within [from, to).
	Report(ctx context.Context, from, to time.Time) (*ReportSummary, error)

	// GetOverlay returns the overlay settings for a portal page.
	GetOverlay(ctx context.Context, page string) (*entity.OverlaySettings, error)

	// SaveOverlay stores the overlay settings for a portal page.
	SaveOverlay(ctx context.Context, session *entity.AdminSession, settings *entity.OverlaySettings) error

	// ListOverlays returns the overlay settings of every configured page.
	ListOverlays(ctx context.Context) ([]*entity.OverlaySettings, error)

	// ListActivity returns the back-office audit trail within [from, to).
	ListActivity(ctx context.Context, from, to time.Time, limit int) ([]*entity.AdminActivity, error)
}
