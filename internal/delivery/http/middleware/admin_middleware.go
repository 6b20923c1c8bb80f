package middleware

import (
	"pinesvet/internal/delivery/http/response"
	"pinesvet/internal/domain/entity"
	"pinesvet/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HeaderAdminToken is the header carrying the back-office session token.
const HeaderAdminToken = "X-Admin-Token"

// ContextKeyAdminSession is the echo.Context key holding the resolved session.
const ContextKeyAdminSession = "adminSession"

// AdminMiddleware guards back-office routes with the server-side session.
type AdminMiddleware struct {
	adminUC usecase.AdminUsecase
}

// NewAdminMiddleware is the constructor for AdminMiddleware.
func NewAdminMiddleware(adminUC usecase.AdminUsecase) *AdminMiddleware {
	return &AdminMiddleware{adminUC: adminUC}
}

// RequireSession validates the session token and extends its TTL. The
// resolved session is stored on the context for handlers that audit actions.
func (m *AdminMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(HeaderAdminToken)
		if token == "" {
			return response.Unauthorized(c, "ADMIN_TOKEN_MISSING", "Admin session token is missing")
		}

		session, err := m.adminUC.ValidateSession(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "ADMIN_SESSION_EXPIRED", "Admin session has expired, please log in again")
		}

		c.Set(ContextKeyAdminSession, session)

		return next(c)
	}
}

// AdminSessionFromContext returns the session stored by RequireSession.
func AdminSessionFromContext(c echo.Context) (*entity.AdminSession, bool) {
	session, ok := c.Get(ContextKeyAdminSession).(*entity.AdminSession)
	return session, ok
}
