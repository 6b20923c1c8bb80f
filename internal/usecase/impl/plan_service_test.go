package impl

import (
	"context"
	"testing"
	"time"

	"pinesvet/internal/domain/constants"
	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/plan"
	domainservice "pinesvet/internal/domain/service"
	mockRepo "pinesvet/internal/mocks/repository"
	mockSvc "pinesvet/internal/mocks/service"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type planServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	userRepo       *mockRepo.MockUserRepository
	planChangeRepo *mockRepo.MockPlanChangeRepository
	publisher      *mockSvc.MockEventPublisher
}

func newPlanService(t *testing.T) (usecase.PlanUsecase, *planServiceMocks) {
	mocks := &planServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		planChangeRepo: mockRepo.NewMockPlanChangeRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}
	service := NewPlanService(PlanServiceParams{
		TxManager:      mocks.txManager,
		UserRepo:       mocks.userRepo,
		PlanChangeRepo: mocks.planChangeRepo,
		Publisher:      mocks.publisher,
		Logger:         newDiscardLogger(),
	})

	return service, mocks
}

func TestPlanService_RequestPlanChange_Success(t *testing.T) {
	service, mocks := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Plan: string(plan.TierFree)}

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewPlanChangeRepository().Return(mocks.planChangeRepo)

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	mocks.planChangeRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.PlanChange")).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	state, err := service.RequestPlanChange(ctx, userID, plan.TierStandard, plan.BillingMonthly)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusPending, state.PlanStatus)
	assert.Equal(t, string(plan.TierStandard), state.PlanRequest)
	assert.Equal(t, string(plan.TierFree), state.Plan)
}

func TestPlanService_RequestPlanChange_UnknownTier(t *testing.T) {
	service, _ := newPlanService(t)

	state, err := service.RequestPlanChange(context.Background(), uuid.New(), plan.Tier("gold"), plan.BillingMonthly)
	assert.Nil(t, state)
	assert.ErrorIs(t, err, domainerrors.ErrPlanUnknown)
}

func TestPlanService_RequestPlanChange_BadPeriod(t *testing.T) {
	service, _ := newPlanService(t)

	state, err := service.RequestPlanChange(context.Background(), uuid.New(), plan.TierBasic, plan.BillingPeriod("weekly"))
	assert.Nil(t, state)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPlanService_RequestPlanChange_AlreadyPending(t *testing.T) {
	service, mocks := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:          userID,
		Plan:        string(plan.TierBasic),
		PlanStatus:  entity.PlanStatusPending,
		PlanRequest: string(plan.TierStandard),
	}

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	state, err := service.RequestPlanChange(ctx, userID, plan.TierPremium, plan.BillingMonthly)
	assert.Nil(t, state)
	assert.ErrorIs(t, err, domainerrors.ErrPlanRequestPending)
}

func TestPlanService_CancelPlan_ResetsEverything(t *testing.T) {
	service, mocks := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	expiry := time.Now().AddDate(0, 1, 0)
	nextMonth := plan.NextMonthStart(time.Now())
	user := &entity.User{
		ID:                userID,
		Plan:              string(plan.TierPremium),
		PlanStatus:        entity.PlanStatusApproved,
		PlanExpiryDate:    &expiry,
		NextMonthPlan:     string(plan.TierBasic),
		NextMonthPlanDate: &nextMonth,
	}

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewPlanChangeRepository().Return(mocks.planChangeRepo)

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	mocks.planChangeRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.PlanChange")).
		Run(func(_ context.Context, change *entity.PlanChange) {
			assert.Equal(t, "cancelled", change.Action)
			assert.Equal(t, string(plan.TierPremium), change.FromPlan)
			assert.Equal(t, string(plan.TierFree), change.ToPlan)
		}).
		Return(nil)

	state, err := service.CancelPlan(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, string(plan.TierFree), state.Plan)
	assert.Equal(t, entity.PlanStatusNone, state.PlanStatus)
	assert.Empty(t, state.PlanExpiryDate)
	assert.Empty(t, state.NextMonthPlan)
	assert.Equal(t, 0, state.DiscountPercent)
}

func TestPlanService_ApprovePlanRequest_Upgrade(t *testing.T) {
	service, mocks := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:                userID,
		Plan:              string(plan.TierFree),
		PlanStatus:        entity.PlanStatusPending,
		PlanRequest:       string(plan.TierPremium),
		PlanRequestPeriod: string(plan.BillingYearly),
	}

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewPlanChangeRepository().Return(mocks.planChangeRepo)

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	mocks.planChangeRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.PlanChange")).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *domainservice.DomainEvent) {
			assert.Equal(t, constants.EventPlanApproved, event.Type)
			assert.Equal(t, "care-plan:"+userID.String(), event.SourceKey)
		}).
		Return(nil)

	state, err := service.ApprovePlanRequest(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, string(plan.TierPremium), state.Plan)
	assert.Equal(t, entity.PlanStatusApproved, state.PlanStatus)
	assert.Empty(t, state.PlanRequest)
	assert.NotEmpty(t, state.PlanExpiryDate)
	assert.Equal(t, 20, state.DiscountPercent)
}

func TestPlanService_ApprovePlanRequest_DowngradeDefers(t *testing.T) {
	service, mocks := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:          userID,
		Plan:        string(plan.TierPremium),
		PlanStatus:  entity.PlanStatusPending,
		PlanRequest: string(plan.TierBasic),
	}

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewPlanChangeRepository().Return(mocks.planChangeRepo)

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	mocks.planChangeRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.PlanChange")).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	state, err := service.ApprovePlanRequest(ctx, userID)
	require.NoError(t, err)
	// The current plan stays active until the first of next month.
	assert.Equal(t, string(plan.TierPremium), state.Plan)
	assert.Equal(t, string(plan.TierBasic), state.NextMonthPlan)
	assert.NotEmpty(t, state.NextMonthPlanDate)
	assert.Equal(t, entity.PlanStatusApproved, state.PlanStatus)
}

func TestPlanService_ApprovePlanRequest_NothingPending(t *testing.T) {
	service, mocks := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Plan: string(plan.TierBasic)}

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	state, err := service.ApprovePlanRequest(ctx, userID)
	assert.Nil(t, state)
	assert.ErrorIs(t, err, domainerrors.ErrPlanRequestNotFound)
}

func TestPlanService_RejectPlanRequest_Success(t *testing.T) {
	service, mocks := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:          userID,
		Plan:        string(plan.TierBasic),
		PlanStatus:  entity.PlanStatusPending,
		PlanRequest: string(plan.TierPremium),
	}

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewPlanChangeRepository().Return(mocks.planChangeRepo)

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	mocks.planChangeRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.PlanChange")).
		Run(func(_ context.Context, change *entity.PlanChange) {
			assert.Equal(t, "rejected", change.Action)
			assert.Equal(t, string(plan.TierPremium), change.ToPlan)
		}).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	state, err := service.RejectPlanRequest(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusRejected, state.PlanStatus)
	assert.Empty(t, state.PlanRequest)
	// The active plan is untouched by a rejection.
	assert.Equal(t, string(plan.TierBasic), state.Plan)
}

func TestPlanService_GetPlanState_AppliesDueDowngrade(t *testing.T) {
	service, mocks := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	due := time.Now().Add(-24 * time.Hour)
	user := &entity.User{
		ID:                userID,
		Plan:              string(plan.TierPremium),
		NextMonthPlan:     string(plan.TierFree),
		NextMonthPlanDate: &due,
	}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	passthroughTx(mocks.txManager, mocks.factory)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	mocks.factory.EXPECT().NewUserRepository().Return(txUserRepo)
	mocks.factory.EXPECT().NewPlanChangeRepository().Return(mocks.planChangeRepo)

	txUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	mocks.planChangeRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.PlanChange")).
		Run(func(_ context.Context, change *entity.PlanChange) {
			assert.Equal(t, "downgraded", change.Action)
		}).
		Return(nil)

	state, err := service.GetPlanState(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, string(plan.TierFree), state.Plan)
	assert.Empty(t, state.NextMonthPlan)
	assert.Empty(t, state.PlanExpiryDate)
}

func TestPlanService_GetPlanState_NoDowngradeScheduled(t *testing.T) {
	service, mocks := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Plan: string(plan.TierStandard)}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	state, err := service.GetPlanState(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, string(plan.TierStandard), state.Plan)
	assert.Equal(t, 15, state.DiscountPercent)
}

func TestPlanService_GetPlanHistory(t *testing.T) {
	service, mocks := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.PlanChange{
		{ID: uuid.New(), UserID: userID, Action: "approved"},
	}

	mocks.planChangeRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	changes, err := service.GetPlanHistory(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, changes)
}
