package impl

import (
	"context"
	"testing"

	"pinesvet/internal/domain/constants"
	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/plan"
	"pinesvet/internal/domain/repository"
	domainservice "pinesvet/internal/domain/service"
	mockRepo "pinesvet/internal/mocks/repository"
	mockSvc "pinesvet/internal/mocks/service"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	cartRepo    *mockRepo.MockCartRepository
	orderRepo   *mockRepo.MockOrderRepository
	userRepo    *mockRepo.MockUserRepository
	publisher   *mockSvc.MockEventPublisher
}

func newShopService(t *testing.T) (usecase.ShopUsecase, *shopServiceMocks) {
	mocks := &shopServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	shopService := NewShopService(ShopServiceParams{
		TxManager:   mocks.txManager,
		ProductRepo: mocks.productRepo,
		CartRepo:    mocks.cartRepo,
		OrderRepo:   mocks.orderRepo,
		UserRepo:    mocks.userRepo,
		Publisher:   mocks.publisher,
		Logger:      newDiscardLogger(),
	})

	return shopService, mocks
}

func TestShopService_ListProducts_AnonymousGetsNoDiscount(t *testing.T) {
	shopService, mocks := newShopService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Dog Food 3kg", Price: 1000, Stock: 50},
	}

	mocks.productRepo.EXPECT().List(ctx, 20, 0).Return(products, nil)

	views, err := shopService.ListProducts(ctx, uuid.Nil, 20, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(1000), views[0].DiscountedPrice)
	assert.Equal(t, 0, views[0].DiscountPercent)
	assert.Equal(t, entity.StockStatusInStock, views[0].StockStatus)
}

func TestShopService_ListProducts_PremiumDiscount(t *testing.T) {
	shopService, mocks := newShopService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Plan: string(plan.TierPremium)}
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Dog Food 3kg", Price: 1000, Stock: 10},
	}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.productRepo.EXPECT().List(ctx, 20, 0).Return(products, nil)

	views, err := shopService.ListProducts(ctx, userID, 20, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(800), views[0].DiscountedPrice)
	assert.Equal(t, 20, views[0].DiscountPercent)
	assert.Equal(t, entity.StockStatusLowStock, views[0].StockStatus)
}

func TestShopService_AddToCart_LocksDiscountedPrice(t *testing.T) {
	shopService, mocks := newShopService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Plan: string(plan.TierStandard)}
	product := &entity.Product{ID: uuid.New(), Name: "Cat Litter", Price: 400, Stock: 8}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	mocks.cartRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(nil)

	item, err := shopService.AddToCart(ctx, userID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(340), item.UnitPrice)
	assert.Equal(t, int64(400), item.OriginalPrice)
	assert.Equal(t, 2, item.Quantity)
}

func TestShopService_AddToCart_RejectsZeroQuantity(t *testing.T) {
	shopService, _ := newShopService(t)

	item, err := shopService.AddToCart(context.Background(), uuid.New(), uuid.New(), 0)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestShopService_AddToCart_InsufficientStock(t *testing.T) {
	shopService, mocks := newShopService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Plan: string(plan.TierFree)}
	product := &entity.Product{ID: uuid.New(), Name: "Cat Litter", Price: 400, Stock: 1}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	item, err := shopService.AddToCart(ctx, userID, product.ID, 5)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestShopService_GetCart_SumsLockedPrices(t *testing.T) {
	shopService, mocks := newShopService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		{ProductID: uuid.New(), Quantity: 2, UnitPrice: 340},
		{ProductID: uuid.New(), Quantity: 1, UnitPrice: 950},
	}

	mocks.cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)

	cart, err := shopService.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1630), cart.Total)
	assert.Len(t, cart.Items, 2)
}

func TestShopService_Checkout_Success(t *testing.T) {
	shopService, mocks := newShopService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Dog Food 3kg", Price: 1000, Stock: 5}
	items := []*entity.CartItem{
		{ProductID: product.ID, Quantity: 2, UnitPrice: 850},
	}

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewCartRepository().Return(mocks.cartRepo)
	mocks.factory.EXPECT().NewProductRepository().Return(mocks.productRepo)
	mocks.factory.EXPECT().NewOrderRepository().Return(mocks.orderRepo)

	mocks.cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
	mocks.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{product.ID}).
		Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)
	mocks.productRepo.EXPECT().DecrementStock(ctx, product.ID, 2).Return(nil)
	mocks.orderRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.Order")).
		Run(func(_ context.Context, orders []*entity.Order) {
			require.Len(t, orders, 1)
			assert.Equal(t, int64(850), orders[0].UnitPrice)
			assert.Equal(t, entity.OrderStatusPending, orders[0].Status)
		}).
		Return(nil)
	mocks.cartRepo.EXPECT().Clear(ctx, userID).Return(nil)
	mocks.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *domainservice.DomainEvent) {
			assert.Equal(t, constants.EventOrderPlaced, event.Type)
		}).
		Return(nil)

	orders, err := shopService.Checkout(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Dog Food 3kg", orders[0].ProductName)
}

func TestShopService_Checkout_EmptyCart(t *testing.T) {
	shopService, mocks := newShopService(t)

	ctx := context.Background()
	userID := uuid.New()

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewCartRepository().Return(mocks.cartRepo)
	mocks.factory.EXPECT().NewProductRepository().Return(mocks.productRepo)
	mocks.factory.EXPECT().NewOrderRepository().Return(mocks.orderRepo)

	mocks.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{}, nil)

	orders, err := shopService.Checkout(ctx, userID)
	assert.Nil(t, orders)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestShopService_Checkout_StockShortfallAborts(t *testing.T) {
	shopService, mocks := newShopService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Dog Food 3kg", Price: 1000, Stock: 1}
	items := []*entity.CartItem{
		{ProductID: product.ID, Quantity: 2, UnitPrice: 1000},
	}

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewCartRepository().Return(mocks.cartRepo)
	mocks.factory.EXPECT().NewProductRepository().Return(mocks.productRepo)
	mocks.factory.EXPECT().NewOrderRepository().Return(mocks.orderRepo)

	mocks.cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
	mocks.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{product.ID}).
		Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)
	mocks.productRepo.EXPECT().
		DecrementStock(ctx, product.ID, 2).
		Return(repository.ErrInsufficientStock)

	orders, err := shopService.Checkout(ctx, userID)
	assert.Nil(t, orders)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestShopService_SetOrderStatus_PublishesUpdate(t *testing.T) {
	shopService, mocks := newShopService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ProductName: "Dog Food 3kg",
		Status:      entity.OrderStatusPending,
	}

	mocks.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	mocks.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *domainservice.DomainEvent) {
			assert.Equal(t, constants.EventOrderStatusChanged, event.Type)
			assert.Equal(t, "order:"+order.ID.String(), event.SourceKey)
		}).
		Return(nil)

	err := shopService.SetOrderStatus(ctx, order.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
}

func TestShopService_SetOrderStatus_NoOpOnSameStatus(t *testing.T) {
	shopService, mocks := newShopService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}

	mocks.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	err := shopService.SetOrderStatus(ctx, order.ID, entity.OrderStatusPending)
	require.NoError(t, err)
}

func TestShopService_CreateProduct_Validation(t *testing.T) {
	shopService, _ := newShopService(t)

	product, err := shopService.CreateProduct(context.Background(), usecase.ProductInput{
		Name:  "",
		Price: 100,
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestShopService_UpdateProduct_PartialFields(t *testing.T) {
	shopService, mocks := newShopService(t)

	ctx := context.Background()
	product := &entity.Product{
		ID:       uuid.New(),
		Name:     "Cat Litter",
		Category: "Supplies",
		Price:    400,
		Stock:    8,
	}

	mocks.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	mocks.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	updated, err := shopService.UpdateProduct(ctx, product.ID, usecase.ProductInput{
		Name:  "Cat Litter 5L",
		Price: 450,
		Stock: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cat Litter 5L", updated.Name)
	assert.Equal(t, int64(450), updated.Price)
	assert.Equal(t, "Supplies", updated.Category)
}
