package middleware

import (
	"fmt"
	"strings"

	"failcourse.com/internal/auth"
	"failcourse.com/internal/domain"
	"github.com/casbin/casbin/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Locals keys set by JWTMiddleware
const (
	LocalClaims = "claims"
	LocalRole   = "role"
)

// JWTMiddleware verifies the bearer token and rejects logged-out tokens.
// Failures are returned as *domain.AppError for the app ErrorHandler.
func JWTMiddleware(tokens *auth.TokenManager, revoked domain.TokenStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Extract Token
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Missing Authorization header")
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		// 2. Parse Token
		claims, err := tokens.Parse(tokenString)
		if err != nil {
			return domain.NewUnauthorizedError("Invalid or expired token")
		}

		// 3. 检查是否已注销
		isRevoked, err := revoked.IsRevoked(c.UserContext(), claims.ID)
		if err != nil {
			log.Error().Err(err).Msg("JWTMiddleware: revocation check failed")
			return domain.NewInternalError("Token check failed", err)
		}
		if isRevoked {
			return domain.NewUnauthorizedError("Token has been revoked")
		}

		c.Locals(LocalClaims, claims)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// CasbinMiddleware checks the role from JWTMiddleware against path and method
func CasbinMiddleware(enforcer *casbin.Enforcer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Subject is the Role
		sub, _ := c.Locals(LocalRole).(string)
		obj := c.Path()
		act := c.Method()

		permit, err := enforcer.Enforce(sub, obj, act)
		if err != nil {
			return domain.NewInternalError("Permission check failed", err)
		}
		if permit {
			return c.Next()
		}

		return domain.NewForbiddenError("Permission denied").
			WithDetails(fmt.Sprintf("Role %q is not allowed to %s %s", sub, act, obj))
	}
}

// ClaimsFromCtx returns the claims stored by JWTMiddleware.
func ClaimsFromCtx(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(LocalClaims).(*auth.Claims)
	return claims, ok
}
