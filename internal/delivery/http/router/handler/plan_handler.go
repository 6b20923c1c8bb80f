package handler

import (
	"log/slog"
	"net/http"

	"pinesvet/internal/delivery/http/response"
	"pinesvet/internal/domain/plan"
	"pinesvet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlanHandler holds dependencies for care-plan bookkeeping handlers.
type PlanHandler struct {
	uc     usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler, injected by Fx.
func NewPlanHandler(uc usecase.PlanUsecase, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{uc: uc, logger: logger}
}

type planChangeRequest struct {
	Plan   string `json:"plan" validate:"required"`
	Period string `json:"period" validate:"required"`
}

// RequestChange records a customer's request for a different tier.
func (h *PlanHandler) RequestChange(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req planChangeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan change input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	state, err := h.uc.RequestPlanChange(c.Request().Context(), userID, plan.Tier(req.Plan), plan.BillingPeriod(req.Period))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "Plan change requested")
}

// Cancel drops the customer to the free tier immediately.
func (h *PlanHandler) Cancel(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	state, err := h.uc.CancelPlan(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "Plan cancelled")
}

// GetState returns the customer's plan bookkeeping.
func (h *PlanHandler) GetState(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	state, err := h.uc.GetPlanState(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "Plan state retrieved")
}

// GetHistory returns the customer's plan change log, newest first.
func (h *PlanHandler) GetHistory(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	history, err := h.uc.GetPlanHistory(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "Plan history retrieved")
}

// Approve applies a customer's pending plan request (back-office).
func (h *PlanHandler) Approve(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	state, err := h.uc.ApprovePlanRequest(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "Plan request approved")
}

// Reject declines a customer's pending plan request (back-office).
func (h *PlanHandler) Reject(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	state, err := h.uc.RejectPlanRequest(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "Plan request rejected")
}
