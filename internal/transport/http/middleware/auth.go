package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ANURA4G/event-ticketing-app/internal/api"
	"github.com/ANURA4G/event-ticketing-app/internal/entities"
	"github.com/ANURA4G/event-ticketing-app/internal/security"
)

// ClaimsKey is the fiber.Ctx locals key holding the caller's token claims
// after RequireRole has run.
const ClaimsKey = "claims"

// Auth guards routes with Bearer JWT authentication.
type Auth struct {
	log    *zap.SugaredLogger
	tokens *security.Tokens
}

func NewAuth(log *zap.SugaredLogger, tokens *security.Tokens) *Auth {
	return &Auth{log: log, tokens: tokens}
}

// RequireRole parses the Authorization header and admits only the given
// roles. Missing or invalid tokens get 401, a wrong role gets 403.
func (a *Auth) RequireRole(roles ...entities.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c, "missing bearer token")
		}

		claims, err := a.tokens.Parse(token)
		if err != nil {
			a.log.Infow("token rejected", "path", c.Path(), "error", err)
			return unauthorized(c, "invalid or expired token")
		}

		allowed := false
		for _, role := range roles {
			if entities.Role(claims.Role) == role {
				allowed = true
				break
			}
		}
		if !allowed {
			a.log.Infow("role rejected", "path", c.Path(), "role", claims.Role)
			return c.Status(http.StatusForbidden).JSON(api.ErrorResponse{Error: api.ErrorDetail{
				Code:    api.FORBIDDEN,
				Message: "insufficient role",
			}})
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// Claims returns the token claims stored by RequireRole, or nil on an
// unguarded route.
func Claims(c *fiber.Ctx) *security.Claims {
	claims, _ := c.Locals(ClaimsKey).(*security.Claims)
	return claims
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{Error: api.ErrorDetail{
		Code:    api.UNAUTHORIZED,
		Message: msg,
	}})
}
