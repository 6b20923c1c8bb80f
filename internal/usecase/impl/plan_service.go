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
	"pinesvet/internal/domain/plan"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/domain/schedule"
	"pinesvet/internal/domain/service"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// planService implements the PlanUsecase interface.
type planService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	planChangeRepo repository.PlanChangeRepository
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// PlanServiceParams holds dependencies for PlanService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	PlanChangeRepo repository.PlanChangeRepository
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewPlanService is the constructor for planService.
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	return &planService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		planChangeRepo: params.PlanChangeRepo,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

func (srv *planService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestPlanChange records a customer's request for a different tier.
func (srv *planService) RequestPlanChange(ctx context.Context, userID uuid.UUID, requested plan.Tier, period plan.BillingPeriod) (*usecase.PlanState, error) {
	if !requested.Valid() {
		return nil, domainerrors.ErrPlanUnknown.WrapMessage(fmt.Sprintf("tier %q", requested))
	}
	if period != plan.BillingMonthly && period != plan.BillingYearly {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("billing period %q", period))
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find user by id")
		}
		user = found

		if user.PlanStatus == entity.PlanStatusPending {
			return domainerrors.ErrPlanRequestPending.WrapMessage("request already pending")
		}
		if _, classifyErr := plan.Classify(currentTier(user), requested); classifyErr != nil {
			return domainerrors.ErrPlanUnknown.WrapMessage(classifyErr.Error())
		}

		user.PlanStatus = entity.PlanStatusPending
		user.PlanRequest = string(requested)
		user.PlanRequestPeriod = string(period)

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update user plan request")
		}

		change := &entity.PlanChange{
			ID:        uuid.New(),
			UserID:    user.ID,
			FromPlan:  user.Plan,
			ToPlan:    string(requested),
			Action:    "requested",
			ChangedAt: time.Now(),
		}

		return errors.Wrap(repoFactory.NewPlanChangeRepository().Record(ctx, change), "failed to record plan change")
	})
	if err != nil {
		return nil, err
	}

	srv.publishPlanEvent(ctx, constants.EventPlanRequested, user,
		"Plan change requested",
		fmt.Sprintf("Your request for the %s plan is awaiting approval.", requested))

	return buildPlanState(user), nil
}

// CancelPlan drops the customer to the free tier immediately.
func (srv *planService) CancelPlan(ctx context.Context, userID uuid.UUID) (*usecase.PlanState, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find user by id")
		}
		user = found

		fromPlan := user.Plan
		user.Plan = string(plan.TierFree)
		user.PlanStatus = entity.PlanStatusNone
		user.PlanRequest = ""
		user.PlanRequestPeriod = ""
		user.PlanExpiryDate = nil
		user.NextMonthPlan = ""
		user.NextMonthPlanDate = nil

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to cancel plan")
		}

		change := &entity.PlanChange{
			ID:        uuid.New(),
			UserID:    user.ID,
			FromPlan:  fromPlan,
			ToPlan:    string(plan.TierFree),
			Action:    "cancelled",
			ChangedAt: time.Now(),
		}

		return errors.Wrap(repoFactory.NewPlanChangeRepository().Record(ctx, change), "failed to record plan change")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Plan cancelled", slog.Any("userID", userID))

	return buildPlanState(user), nil
}

// ApprovePlanRequest applies a pending request. Downgrades defer to the first
// day of the next month; the current plan stays active until then.
func (srv *planService) ApprovePlanRequest(ctx context.Context, userID uuid.UUID) (*usecase.PlanState, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find user by id")
		}
		user = found

		if user.PlanStatus != entity.PlanStatusPending || user.PlanRequest == "" {
			return domainerrors.ErrPlanRequestNotFound.WrapMessage("no pending request")
		}

		requested := plan.Tier(user.PlanRequest)
		change, classifyErr := plan.Classify(currentTier(user), requested)
		if classifyErr != nil {
			return domainerrors.ErrPlanUnknown.WrapMessage(classifyErr.Error())
		}

		now := time.Now()
		fromPlan := user.Plan

		switch change {
		case plan.ChangeDowngrade:
			effective := plan.NextMonthStart(now)
			user.NextMonthPlan = string(requested)
			user.NextMonthPlanDate = &effective
		default:
			period := plan.BillingPeriod(user.PlanRequestPeriod)
			if period == "" {
				period = plan.BillingMonthly
			}
			expiry, expiryErr := plan.ExpiryDate(now, period)
			if expiryErr != nil {
				return domainerrors.ErrValidationFailed.WrapMessage(expiryErr.Error())
			}
			user.Plan = string(requested)
			user.PlanExpiryDate = &expiry
			user.NextMonthPlan = ""
			user.NextMonthPlanDate = nil
		}

		user.PlanStatus = entity.PlanStatusApproved
		user.PlanRequest = ""
		user.PlanRequestPeriod = ""

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to apply plan approval")
		}

		record := &entity.PlanChange{
			ID:        uuid.New(),
			UserID:    user.ID,
			FromPlan:  fromPlan,
			ToPlan:    string(requested),
			Action:    "approved",
			ChangedAt: now,
		}

		return errors.Wrap(repoFactory.NewPlanChangeRepository().Record(ctx, record), "failed to record plan change")
	})
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Your %s plan is now active.", user.Plan)
	if user.NextMonthPlan != "" {
		body = fmt.Sprintf("Your change to the %s plan takes effect on %s.",
			user.NextMonthPlan, user.NextMonthPlanDate.Format(schedule.DateKeyLayout))
	}
	srv.publishPlanEvent(ctx, constants.EventPlanApproved, user, "Plan change approved", body)

	return buildPlanState(user), nil
}

// RejectPlanRequest declines a pending request.
func (srv *planService) RejectPlanRequest(ctx context.Context, userID uuid.UUID) (*usecase.PlanState, error) {
	var user *entity.User
	var rejected string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find user by id")
		}
		user = found

		if user.PlanStatus != entity.PlanStatusPending || user.PlanRequest == "" {
			return domainerrors.ErrPlanRequestNotFound.WrapMessage("no pending request")
		}

		rejected = user.PlanRequest
		user.PlanStatus = entity.PlanStatusRejected
		user.PlanRequest = ""
		user.PlanRequestPeriod = ""

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to apply plan rejection")
		}

		change := &entity.PlanChange{
			ID:        uuid.New(),
			UserID:    user.ID,
			FromPlan:  user.Plan,
			ToPlan:    rejected,
			Action:    "rejected",
			ChangedAt: time.Now(),
		}

		return errors.Wrap(repoFactory.NewPlanChangeRepository().Record(ctx, change), "failed to record plan change")
	})
	if err != nil {
		return nil, err
	}

	srv.publishPlanEvent(ctx, constants.EventPlanRejected, user,
		"Plan change declined",
		fmt.Sprintf("Your request for the %s plan was declined.", rejected))

	return buildPlanState(user), nil
}

// GetPlanState returns the customer's plan bookkeeping, applying any deferred
// downgrade that has come due.
func (srv *planService) GetPlanState(ctx context.Context, userID uuid.UUID) (*usecase.PlanState, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("plan lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if downgradeDue(user, time.Now()) {
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return applyDueDowngrade(ctx, repoFactory, user, time.Now())
		}); err != nil {
			return nil, errors.Wrap(err, "failed to apply scheduled downgrade")
		}
		srv.log(ctx).Info("Applied scheduled downgrade", slog.Any("userID", userID), slog.String("plan", user.Plan))
	}

	return buildPlanState(user), nil
}

// GetPlanHistory returns the customer's plan change log, newest first.
func (srv *planService) GetPlanHistory(ctx context.Context, userID uuid.UUID) ([]*entity.PlanChange, error) {
	changes, err := srv.planChangeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find plan changes")
	}

	return changes, nil
}

// publishPlanEvent pushes a care-plan notification onto the event bus.
// Publish failures are logged, never surfaced: the plan change itself stuck.
func (srv *planService) publishPlanEvent(ctx context.Context, eventType string, user *entity.User, title, body string) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     user.ID.String(),
		SourceKey:  carePlanSourceKey(user.ID),
		Title:      title,
		Body:       body,
		OccurredAt: time.Now(),
	}
	if err := srv.publisher.PublishDomainEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish plan event", slog.String("type", eventType), slog.Any("error", err))
	}
}

// carePlanSourceKey keys every care-plan notification of one user to a single
// feed entry, so a newer status replaces the previous one.
func carePlanSourceKey(userID uuid.UUID) string {
	return "care-plan:" + userID.String()
}

// currentTier treats a blank plan column as the free tier.
func currentTier(user *entity.User) plan.Tier {
	if user.Plan == "" {
		return plan.TierFree
	}

	return plan.Tier(user.Plan)
}

// downgradeDue reports whether a scheduled downgrade should be applied now.
func downgradeDue(user *entity.User, now time.Time) bool {
	return user.NextMonthPlan != "" && user.NextMonthPlanDate != nil && !now.Before(*user.NextMonthPlanDate)
}

// applyDueDowngrade flips the user to the scheduled tier and records the
// change. The caller decides when it is due; this runs inside a transaction.
func applyDueDowngrade(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User, now time.Time) error {
	fromPlan := user.Plan

	user.Plan = user.NextMonthPlan
	user.NextMonthPlan = ""
	user.NextMonthPlanDate = nil
	if user.Plan == string(plan.TierFree) {
		user.PlanExpiryDate = nil
	}

	if err := repoFactory.NewUserRepository().Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to apply downgrade")
	}

	change := &entity.PlanChange{
		ID:        uuid.New(),
		UserID:    user.ID,
		FromPlan:  fromPlan,
		ToPlan:    user.Plan,
		Action:    "downgraded",
		ChangedAt: now,
	}

	return errors.Wrap(repoFactory.NewPlanChangeRepository().Record(ctx, change), "failed to record plan change")
}

// buildPlanState projects the user's plan columns into the API shape.
func buildPlanState(user *entity.User) *usecase.PlanState {
	state := &usecase.PlanState{
		Plan:            user.Plan,
		PlanStatus:      user.PlanStatus,
		PlanRequest:     user.PlanRequest,
		NextMonthPlan:   user.NextMonthPlan,
		DiscountPercent: plan.DiscountPercent(currentTier(user)),
	}
	if user.PlanExpiryDate != nil {
		state.PlanExpiryDate = user.PlanExpiryDate.Format(schedule.DateKeyLayout)
	}
	if user.NextMonthPlanDate != nil {
		state.NextMonthPlanDate = user.NextMonthPlanDate.Format(schedule.DateKeyLayout)
	}

	return state
}
