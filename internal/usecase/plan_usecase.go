package usecase

import (
	"context"

	"pinesvet/internal/domain/entity"
	"pinesvet/internal/domain/plan"

	"github.com/google/uuid"
)

// PlanState is the care-plan bookkeeping of one customer, as shown on the
// portal: the effective tier plus any pending request or scheduled downgrade.
type PlanState struct {
	Plan              string            `json:"plan"`
	PlanStatus        entity.PlanStatus `json:"plan_status"`
	PlanRequest       string            `json:"plan_request,omitempty"`
	PlanExpiryDate    string            `json:"plan_expiry_date,omitempty"`
	NextMonthPlan     string            `json:"next_month_plan,omitempty"`
	NextMonthPlanDate string            `json:"next_month_plan_date,omitempty"`
	DiscountPercent   int               `json:"discount_percent"`
}

// PlanUsecase defines the interface for care-plan bookkeeping use cases.
type PlanUsecase interface {
	// RequestPlanChange records a customer's request for a different tier,
	// pending admin approval. Only one request may be pending at a time.
	RequestPlanChange(ctx context.Context, userID uuid.UUID, requested plan.Tier, period plan.BillingPeriod) (*PlanState, error)

	// CancelPlan drops the customer to the free tier immediately and clears
	// any pending request or scheduled downgrade.
	CancelPlan(ctx context.Context, userID uuid.UUID) (*PlanState, error)

	// ApprovePlanRequest applies a pending request (back-office). Upgrades
	// and lateral moves take effect immediately; downgrades are deferred to
	// the first day of the next month.
	ApprovePlanRequest(ctx context.Context, userID uuid.UUID) (*PlanState, error)

	// RejectPlanRequest declines a pending request (back-office).
	RejectPlanRequest(ctx context.Context, userID uuid.UUID) (*PlanState, error)

	// GetPlanState returns the customer's plan bookkeeping, applying any
	// deferred downgrade that has come due.
	GetPlanState(ctx context.Context, userID uuid.UUID) (*PlanState, error)

	// GetPlanHistory returns the customer's plan change log, newest first.
	GetPlanHistory(ctx context.Context, userID uuid.UUID) ([]*entity.PlanChange, error)
}
