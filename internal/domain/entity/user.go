// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus is the administrative standing of a customer account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

// PlanStatus tracks the approval state of a customer's care-plan request.
type PlanStatus string

const (
	PlanStatusNone     PlanStatus = ""
	PlanStatusPending  PlanStatus = "Pending"
	PlanStatusApproved PlanStatus = "Approved"
	PlanStatusRejected PlanStatus = "Rejected"
)

// User is the core entity in the system, representing a single customer account.
// Care-plan bookkeeping lives directly on the user: the active plan, an optional
// pending request awaiting admin approval, and an optional deferred downgrade
// that takes effect on the first day of the next month.
type User struct {
	ID                uuid.UUID  // The unique identifier for the user.
	Email             string     // The user's primary contact email, used as a login identifier.
	Name              string     // The user's display name.
	Phone             string     // Contact phone number.
	Status            UserStatus // Active or Inactive (admin-managed).
	Plan              string     // The currently effective care-plan tier.
	PlanStatus        PlanStatus // Approval state of the latest plan request.
	PlanRequest       string     // The requested tier while PlanStatus is Pending.
	PlanRequestPeriod string     // Billing period of the pending request, monthly or yearly.
	PlanExpiryDate    *time.Time // When the current paid plan period ends.
	NextMonthPlan     string     // Deferred downgrade target, empty when none is scheduled.
	NextMonthPlanDate *time.Time // First day of the month the deferred downgrade applies.
	SoundEnabled      bool       // Whether notification sound cues are enabled for this user.
	CreatedAt         time.Time  // Timestamp of when this account was created.
	UpdatedAt         time.Time  // Timestamp of the last modification.
}

// PlanChange is one entry in a user's subscription history.
type PlanChange struct {
	ID        uuid.UUID // The unique identifier for the history entry.
	UserID    uuid.UUID // The user whose plan changed.
	FromPlan  string    // Tier before the change.
	ToPlan    string    // Tier after the change (or requested tier for rejected entries).
	Action    string    // requested, approved, rejected, cancelled, downgraded.
	ChangedAt time.Time // When the change was recorded.
}
