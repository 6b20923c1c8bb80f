// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pinesvet/internal/delivery/http/middleware"
	"pinesvet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	PetHandler          *handler.PetHandler
	BookingHandler      *handler.BookingHandler
	ShopHandler         *handler.ShopHandler
	PlanHandler         *handler.PlanHandler
	NotificationHandler *handler.NotificationHandler
	NewsletterHandler   *handler.NewsletterHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	AdminMiddleware     *middleware.AdminMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authed := p.AuthMiddleware.Authenticate
	adminOnly := p.AdminMiddleware.RequireSession

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/google", p.UserHandler.GoogleSignIn)
		authGroup.POST("/refresh", p.UserHandler.Refresh)
		authGroup.POST("/logout", p.UserHandler.Logout)
	}

	// Account routes that require authentication
	userGroup := e.Group("/user", authed)
	{
		userGroup.GET("/profile", p.UserHandler.GetProfile)
		userGroup.PUT("/profile", p.UserHandler.UpdateProfile)
		userGroup.POST("/devices", p.UserHandler.RegisterDevice)
		userGroup.PUT("/sound", p.UserHandler.SetSound)
	}

	// Pet routes
	petGroup := e.Group("/pets", authed)
	{
		petGroup.POST("", p.PetHandler.AddPet)
		petGroup.GET("", p.PetHandler.ListPets)
		petGroup.GET("/:id", p.PetHandler.GetPet)
		petGroup.PUT("/:id", p.PetHandler.UpdatePet)
		petGroup.DELETE("/:id", p.PetHandler.RemovePet)
	}

	// Appointment booking routes
	bookingGroup := e.Group("/appointments", authed)
	{
		bookingGroup.GET("/slots", p.BookingHandler.ListSlots)
		bookingGroup.POST("", p.BookingHandler.Book)
		bookingGroup.GET("", p.BookingHandler.ListMine)
		bookingGroup.DELETE("/:id", p.BookingHandler.Cancel)
		bookingGroup.GET("/:id/qr", p.BookingHandler.CheckInQR)
	}

	// Storefront routes; the catalog is public with personalized pricing
	// for signed-in customers.
	shopGroup := e.Group("/shop")
	{
		shopGroup.GET("/products", p.ShopHandler.ListProducts, p.AuthMiddleware.AuthenticateOptional)
		shopGroup.GET("/products/:id", p.ShopHandler.GetProduct, p.AuthMiddleware.AuthenticateOptional)
		shopGroup.POST("/cart", p.ShopHandler.AddToCart, authed)
		shopGroup.GET("/cart", p.ShopHandler.GetCart, authed)
		shopGroup.DELETE("/cart/:productId", p.ShopHandler.RemoveFromCart, authed)
		shopGroup.POST("/checkout", p.ShopHandler.Checkout, authed)
		shopGroup.GET("/orders", p.ShopHandler.ListOrders, authed)
	}

	// Care-plan routes
	planGroup := e.Group("/plan", authed)
	{
		planGroup.POST("/request", p.PlanHandler.RequestChange)
		planGroup.POST("/cancel", p.PlanHandler.Cancel)
		planGroup.GET("", p.PlanHandler.GetState)
		planGroup.GET("/history", p.PlanHandler.GetHistory)
	}

	// Notification feed routes
	feedGroup := e.Group("/notifications", authed)
	{
		feedGroup.GET("", p.NotificationHandler.GetFeed)
		feedGroup.POST("/read", p.NotificationHandler.MarkAllRead)
	}

	// Newsletter routes; subscribing does not require an account.
	newsletterGroup := e.Group("/newsletter")
	{
		newsletterGroup.POST("/subscribe", p.NewsletterHandler.Subscribe)
		newsletterGroup.POST("/unsubscribe", p.NewsletterHandler.Unsubscribe)
	}

	// Overlay settings are public reads so every visitor sees the banner.
	e.GET("/overlays/:page", p.AdminHandler.GetOverlay)

	// Back-office routes guarded by the server-side admin session.
	adminGroup := e.Group("/admin")
	{
		adminGroup.POST("/login", p.AdminHandler.Login)
		adminGroup.POST("/logout", p.AdminHandler.Logout)
		adminGroup.GET("/session", p.AdminHandler.Session, adminOnly)
		adminGroup.PUT("/credentials", p.AdminHandler.UpdateCredentials, adminOnly)

		adminGroup.GET("/customers", p.AdminHandler.ListCustomers, adminOnly)
		adminGroup.PUT("/customers/:id/status", p.AdminHandler.SetCustomerStatus, adminOnly)

		adminGroup.GET("/appointments", p.BookingHandler.ListAppointments, adminOnly)
		adminGroup.PUT("/appointments/:id/status", p.BookingHandler.SetStatus, adminOnly)
		adminGroup.POST("/slots", p.BookingHandler.AddSlot, adminOnly)
		adminGroup.DELETE("/slots/:id", p.BookingHandler.RemoveSlot, adminOnly)
		adminGroup.POST("/checkin", p.BookingHandler.CheckIn, adminOnly)

		adminGroup.GET("/orders", p.ShopHandler.ListAllOrders, adminOnly)
		adminGroup.PUT("/orders/:id/status", p.ShopHandler.SetOrderStatus, adminOnly)
		adminGroup.POST("/products", p.ShopHandler.CreateProduct, adminOnly)
		adminGroup.PUT("/products/:id", p.ShopHandler.UpdateProduct, adminOnly)
		adminGroup.DELETE("/products/:id", p.ShopHandler.DeleteProduct, adminOnly)

		adminGroup.PUT("/plans/:userId/approve", p.PlanHandler.Approve, adminOnly)
		adminGroup.PUT("/plans/:userId/reject", p.PlanHandler.Reject, adminOnly)

		adminGroup.GET("/newsletter", p.NewsletterHandler.ListSubscribers, adminOnly)
		adminGroup.GET("/report", p.AdminHandler.Report, adminOnly)
		adminGroup.GET("/overlays", p.AdminHandler.ListOverlays, adminOnly)
		adminGroup.PUT("/overlays", p.AdminHandler.SaveOverlay, adminOnly)
		adminGroup.GET("/activity", p.AdminHandler.ListActivity, adminOnly)
	}
}
