package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"tasker/internal/errors"
	"tasker/internal/model"
	"tasker/internal/service"
)

// Context keys set by the CurrentUser middleware.
const (
	ContextUserKey  = "current_user"
	ContextTokenKey = "access_token"
)

// CurrentUser resolves the bearer token into a full user record and stores
// it in the request context along with the raw token. The echo-jwt middleware
// has already verified signature and expiry; this step checks the revocation
// denylist and binds the token subject to a real user.
func CurrentUser(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return httpError(errors.ErrUnauthenticated)
			}

			user, err := authService.Authenticate(c.Request().Context(), token)
			if err != nil {
				return httpError(err)
			}

			c.Set(ContextUserKey, user)
			c.Set(ContextTokenKey, token)
			return next(c)
		}
	}
}

// currentUser returns the authenticated user stored by the middleware.
func currentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	if !ok || user == nil {
		return nil, httpError(errors.ErrUnauthenticated)
	}
	return user, nil
}

// bearerToken returns the raw token from the Authorization header. The Bearer
// scheme prefix is optional so the helper agrees with the jwt gate, which has
// already stripped it before the request reaches this middleware.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return header
}
