package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/complaintdesk/portal/internal/api/flash"
	"github.com/complaintdesk/portal/internal/core/domain"
	"github.com/complaintdesk/portal/internal/core/ports"
)

// CookieName is the session cookie issued at login.
const CookieName = "portal_session"

// UserKey is the echo context key under which Session stores the resolved
// *domain.User.
const UserKey = "user"

// Session resolves the session cookie into a fresh user record and stores
// it in the request context. Requests without a valid session pass through
// anonymously; the Require* gates decide what that means per route.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			user, err := auth.ResolveSession(c.Request().Context(), cookie.Value)
			if err != nil {
				// Invalid or expired session: treat as anonymous. A
				// failing session backend is not an invalid session;
				// it propagates to the central handler as a 500.
				if errors.Is(err, domain.ErrSessionInvalid) {
					return next(c)
				}
				return err
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user stored by Session, or nil for
// an anonymous request.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(UserKey).(*domain.User)
	return user
}

// RequireAuth gates a route behind any authenticated session. Anonymous
// requests are redirected to the login page with a notice, never given a
// raw 401 body.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				flash.Set(c, flash.Error, "You are not authorized to view this page")
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// RequireRole gates a route behind a single exact role. There is no role
// hierarchy: admin does not imply jeng. Authenticated users with the wrong
// role are sent home with a notice.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				flash.Set(c, flash.Error, "You are not authorized to view this page")
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			if user.Role != role {
				flash.Set(c, flash.Error, "You are not authorized to view this page")
				return c.Redirect(http.StatusSeeOther, "/")
			}
			return next(c)
		}
	}
}
