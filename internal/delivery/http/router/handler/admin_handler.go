package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pinesvet/internal/delivery/http/middleware"
	"pinesvet/internal/delivery/http/response"
	"pinesvet/internal/domain/entity"
	"pinesvet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for back-office handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

type adminLoginRequest struct {
	AdminID  string `json:"admin_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies back-office credentials and opens a server-side session.
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.uc.Login(c.Request().Context(), req.AdminID, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token":    session.Token,
		"admin_id": session.AdminID,
	}, "Admin login successful")
}

// Logout revokes the back-office session presented in the request header.
func (h *AdminHandler) Logout(c echo.Context) error {
	token := c.Request().Header.Get(middleware.HeaderAdminToken)
	if token == "" {
		return response.Unauthorized(c, "ADMIN_TOKEN_MISSING", "Admin session token is missing")
	}

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Admin logout successful")
}

// Session returns the session resolved by the admin middleware, letting the
// back-office client verify its token is still valid.
func (h *AdminHandler) Session(c echo.Context) error {
	session, ok := middleware.AdminSessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "ADMIN_SESSION_EXPIRED", "Admin session has expired, please log in again")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"admin_id":  session.AdminID,
		"emergency": session.Emergency,
	}, "Session is valid")
}

type adminCredentialsRequest struct {
	AdminID  string `json:"admin_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateCredentials replaces the custom back-office credential.
func (h *AdminHandler) UpdateCredentials(c echo.Context) error {
	session, ok := middleware.AdminSessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "ADMIN_SESSION_EXPIRED", "Admin session has expired, please log in again")
	}

	var req adminCredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credentials input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateCredentials(c.Request().Context(), session, req.AdminID, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Credentials updated successfully")
}

// ListCustomers returns customer accounts for the back-office.
func (h *AdminHandler) ListCustomers(c echo.Context) error {
	limit, offset := pagination(c)

	customers, err := h.uc.ListCustomers(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers, "Customers retrieved successfully")
}

type customerStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetCustomerStatus activates or deactivates a customer account.
func (h *AdminHandler) SetCustomerStatus(c echo.Context) error {
	session, ok := middleware.AdminSessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "ADMIN_SESSION_EXPIRED", "Admin session has expired, please log in again")
	}

	customerID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	var req customerStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.uc.SetCustomerStatus(c.Request().Context(), session, customerID, entity.UserStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer status updated")
}

// reportWindow parses the from/to query parameters of reporting endpoints.
func reportWindow(c echo.Context) (from, to time.Time, err error) {
	from, err = time.Parse(dateLayout, c.QueryParam("from"))
	if err != nil {
		return from, to, err
	}

	to, err = time.Parse(dateLayout, c.QueryParam("to"))
	return from, to, err
}

// Report aggregates appointments, orders and signups within a window.
func (h *AdminHandler) Report(c echo.Context) error {
	from, to, err := reportWindow(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reporting window, expected from/to as YYYY-MM-DD")
	}

	summary, err := h.uc.Report(c.Request().Context(), from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Report generated successfully")
}

// GetOverlay returns the overlay settings for one portal page. This route is
// public so the portal can render the banner for every visitor.
func (h *AdminHandler) GetOverlay(c echo.Context) error {
	page := c.Param("page")

	settings, err := h.uc.GetOverlay(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "Overlay retrieved successfully")
}

// SaveOverlay stores the overlay settings for a portal page.
func (h *AdminHandler) SaveOverlay(c echo.Context) error {
	session, ok := middleware.AdminSessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "ADMIN_SESSION_EXPIRED", "Admin session has expired, please log in again")
	}

	var settings entity.OverlaySettings
	if err := c.Bind(&settings); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid overlay input")
	}

	if err := h.uc.SaveOverlay(c.Request().Context(), session, &settings); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "Overlay saved successfully")
}

// ListOverlays returns the overlay settings of every configured page.
func (h *AdminHandler) ListOverlays(c echo.Context) error {
	overlays, err := h.uc.ListOverlays(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, overlays, "Overlays retrieved successfully")
}

// ListActivity returns the back-office audit trail within a window.
func (h *AdminHandler) ListActivity(c echo.Context) error {
	from, to, err := reportWindow(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid activity window, expected from/to as YYYY-MM-DD")
	}

	limit, _ := pagination(c)

	activity, err := h.uc.ListActivity(c.Request().Context(), from, to, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activity, "Activity retrieved successfully")
}
