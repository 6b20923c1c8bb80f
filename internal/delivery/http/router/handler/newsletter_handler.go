package handler

import (
	"log/slog"
	"net/http"

	"pinesvet/internal/delivery/http/response"
	"pinesvet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewsletterHandler holds dependencies for mailing list handlers.
type NewsletterHandler struct {
	uc     usecase.NewsletterUsecase
	logger *slog.Logger
}

// NewNewsletterHandler is the constructor for NewsletterHandler, injected by Fx.
func NewNewsletterHandler(uc usecase.NewsletterUsecase, logger *slog.Logger) *NewsletterHandler {
	return &NewsletterHandler{uc: uc, logger: logger}
}

type newsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe adds an email to the mailing list.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid newsletter input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	subscriber, err := h.uc.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subscriber, "Subscribed successfully")
}

// Unsubscribe removes an email from the mailing list.
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid newsletter input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Unsubscribed successfully")
}

// ListSubscribers returns the full mailing list (back-office).
func (h *NewsletterHandler) ListSubscribers(c echo.Context) error {
	subscribers, err := h.uc.ListSubscribers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscribers, "Subscribers retrieved successfully")
}
