package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TamTranZrgz/ecom-nest/internal/auth"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/users"
	"github.com/TamTranZrgz/ecom-nest/internal/shared/apperr"
)

const (
	ctxKeyUserID = "auth_user_id"
	ctxKeyRole   = "auth_role"
)

// RequireAuth validates the bearer token and stashes the caller identity
// on the context. Tokens are issued by the auth service, not here.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			Fail(c, apperr.UnauthorizedErr("Missing access token"))
			return
		}

		claims, err := auth.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			Fail(c, apperr.UnauthorizedErr("Invalid access token"))
			return
		}

		c.Set(ctxKeyUserID, claims.UserID)
		c.Set(ctxKeyRole, claims.Role)
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) int64 {
	if v, ok := c.Get(ctxKeyUserID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// RequireRole gates a route on the token's role claim. The role cache
// double-checks the role still exists in the database, so a deleted role
// locks its tokens out without waiting for expiry.
func RequireRole(roles *users.RoleCache, roleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, _ := c.Get(ctxKeyRole)
		role, _ := v.(string)
		if role != roleName {
			Fail(c, apperr.ForbiddenErr("Insufficient permissions"))
			return
		}
		if _, err := roles.IDByName(c.Request.Context(), roleName); err != nil {
			Fail(c, apperr.ForbiddenErr("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// RequirePaymentAPIKey guards the gateway webhook endpoint.
func RequirePaymentAPIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		got, ok := strings.CutPrefix(header, "Apikey ")
		if apiKey == "" || !ok ||
			subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
			Fail(c, apperr.UnauthorizedErr("Invalid payment API key"))
			return
		}
		c.Next()
	}
}
