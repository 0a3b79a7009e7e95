package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskdeck/todo-system/internal/api/metrics"
	"github.com/taskdeck/todo-system/internal/core/domain"
	"github.com/taskdeck/todo-system/internal/core/ports"
)

// UserContextKey is where the resolved user is stored on the echo context.
const UserContextKey = "current_user"

// Auth resolves the acting user from the Authorization header and injects it
// into the request context. The user is looked up on every invocation, one
// repository call per request. All rejection branches collapse into
// domain.ErrUnauthorized so the response never reveals why auth failed.
func Auth(tokens ports.TokenService, users ports.AuthRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return domain.ErrUnauthorized
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrUnauthorized
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("bad_subject").Inc()
				return domain.ErrUnauthorized
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("unknown_user").Inc()
				return domain.ErrUnauthorized
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user injected by Auth, or domain.ErrUnauthorized
// when the middleware did not run.
func CurrentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
