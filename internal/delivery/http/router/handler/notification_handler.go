package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pinesvet/internal/delivery/http/response"
	"pinesvet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification feed handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: logger}
}

// GetFeed returns the merged feed for one poll. The last_seen query parameter
// is the unread count the client observed on its previous poll.
func (h *NotificationHandler) GetFeed(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	lastSeen := 0
	if v, err := strconv.Atoi(c.QueryParam("last_seen")); err == nil && v >= 0 {
		lastSeen = v
	}

	feed, err := h.uc.GetFeed(c.Request().Context(), userID, lastSeen)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feed, "Feed retrieved successfully")
}

// MarkAllRead flags the whole feed as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	count, err := h.uc.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"marked": count}, "Feed marked as read")
}
