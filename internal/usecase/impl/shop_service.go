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
	"pinesvet/internal/domain/service"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	UserRepo    repository.UserRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		cartRepo:    params.CartRepo,
		orderRepo:   params.OrderRepo,
		userRepo:    params.UserRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the catalog with viewer-discounted prices.
func (srv *shopService) ListProducts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]usecase.ProductView, error) {
	tier, err := srv.viewerTier(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	views := make([]usecase.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, buildProductView(product, tier))
	}

	return views, nil
}

// GetProduct returns one product with derived fields for the viewer.
func (srv *shopService) GetProduct(ctx context.Context, userID, productID uuid.UUID) (*usecase.ProductView, error) {
	tier, err := srv.viewerTier(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	view := buildProductView(product, tier)

	return &view, nil
}

// AddToCart puts a product in the customer's cart, locking in the discounted
// unit price at add time.
func (srv *shopService) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	tier, err := srv.viewerTier(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("add to cart failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if product.Stock < quantity {
		return nil, domainerrors.ErrInsufficientStock.WrapMessage(product.Name)
	}

	item := &entity.CartItem{
		ID:            uuid.New(),
		UserID:        userID,
		ProductID:     product.ID,
		Quantity:      quantity,
		UnitPrice:     plan.DiscountedPrice(product.Price, tier),
		OriginalPrice: product.Price,
	}
	if err := srv.cartRepo.Upsert(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to upsert cart item")
	}

	return item, nil
}

// GetCart returns the customer's cart with its total.
func (srv *shopService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart items")
	}

	var total int64
	for _, item := range items {
		total += item.UnitPrice * int64(item.Quantity)
	}

	return &usecase.CartView{Items: items, Total: total}, nil
}

// RemoveFromCart drops one product line from the cart.
func (srv *shopService) RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.cartRepo.Remove(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("cart item not found")
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// Checkout converts every cart line into an order in one transaction. Stock
// is decremented with a conditional update, so a shortfall on any line rolls
// the whole purchase back.
func (srv *shopService) Checkout(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		items, findErr := cartRepo.FindByUser(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find cart items")
		}
		if len(items) == 0 {
			return domainerrors.ErrCartEmpty.WrapMessage("checkout failed")
		}

		productIDs := make([]uuid.UUID, 0, len(items))
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}
		products, findErr := productRepo.FindByIDs(ctx, productIDs)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load cart products")
		}

		orders = make([]*entity.Order, 0, len(items))
		for _, item := range items {
			product, ok := products[item.ProductID]
			if !ok {
				return domainerrors.ErrProductNotFound.WrapMessage("product removed from catalog")
			}

			if decErr := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); decErr != nil {
				if errors.Is(decErr, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WrapMessage(product.Name)
				}
				if errors.Is(decErr, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WrapMessage(product.Name)
				}

				return errors.Wrap(decErr, "failed to decrement stock")
			}

			orders = append(orders, &entity.Order{
				ID:          uuid.New(),
				UserID:      userID,
				ProductID:   item.ProductID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Status:      entity.OrderStatusPending,
			})
		}

		if createErr := orderRepo.CreateBatch(ctx, orders); createErr != nil {
			return errors.Wrap(createErr, "failed to create orders")
		}

		return errors.Wrap(cartRepo.Clear(ctx, userID), "failed to clear cart")
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	for _, order := range orders {
		srv.publishOrderEvent(ctx, constants.EventOrderPlaced, order,
			"Order placed",
			fmt.Sprintf("Your order for %d x %s was received.", order.Quantity, order.ProductName))
	}

	return orders, nil
}

// ListOrders returns the customer's orders, newest first.
func (srv *shopService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return orders, nil
}

// ListAllOrders returns all orders for the back-office.
func (srv *shopService) ListAllOrders(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// SetOrderStatus transitions an order from the back-office.
func (srv *shopService) SetOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound.WrapMessage("status update failed")
		}

		return errors.Wrap(err, "failed to find order")
	}
	if order.Status == status {
		return nil
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return errors.Wrap(err, "failed to update order status")
	}
	order.Status = status

	srv.publishOrderEvent(ctx, constants.EventOrderStatusChanged, order,
		"Order update",
		fmt.Sprintf("Your order for %s is now %s.", order.ProductName, status))

	return nil
}

// CreateProduct adds a product to the catalog.
func (srv *shopService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if input.Name == "" || input.Price < 0 || input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid product fields")
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct modifies a catalog product.
func (srv *shopService) UpdateProduct(ctx context.Context, productID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product update failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price >= 0 {
		product.Price = input.Price
	}
	if input.Stock >= 0 {
		product.Stock = input.Stock
	}
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (srv *shopService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product delete failed")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// viewerTier resolves the requesting customer's care-plan tier. The zero
// UUID (anonymous browsing) gets the free tier.
func (srv *shopService) viewerTier(ctx context.Context, userID uuid.UUID) (plan.Tier, error) {
	if userID == uuid.Nil {
		return plan.TierFree, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return plan.TierFree, nil
		}

		return plan.TierFree, errors.Wrap(err, "failed to find user by id")
	}

	return currentTier(user), nil
}

// buildProductView attaches display-only derived fields to a product.
func buildProductView(product *entity.Product, tier plan.Tier) usecase.ProductView {
	return usecase.ProductView{
		Product:         product,
		StockStatus:     product.StockStatus(),
		DiscountedPrice: plan.DiscountedPrice(product.Price, tier),
		DiscountPercent: plan.DiscountPercent(tier),
	}
}

// publishOrderEvent pushes an order notification onto the event bus.
// Publish failures are logged, never surfaced.
func (srv *shopService) publishOrderEvent(ctx context.Context, eventType string, order *entity.Order, title, body string) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     order.UserID.String(),
		SourceKey:  "order:" + order.ID.String(),
		Title:      title,
		Body:       body,
		OccurredAt: time.Now(),
		Data: map[string]string{
			"order_id": order.ID.String(),
			"status":   string(order.Status),
		},
	}
	if err := srv.publisher.PublishDomainEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event", slog.String("type", eventType), slog.Any("error", err))
	}
}
