package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vasanthsingh/QuickPass/internal/model"
	"github.com/vasanthsingh/QuickPass/pkg/jwt"
	"github.com/vasanthsingh/QuickPass/pkg/redis"
	"github.com/vasanthsingh/QuickPass/pkg/response"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	CtxPrincipalID  = "principal_id"
	CtxRole         = "role"
	CtxPrincipalKey = "principal_key"
	CtxTokenJTI     = "token_jti"
	CtxTokenExpiry  = "token_expiry"
)

// JWTAuth extracts the token from the Authorization header, verifies it
// and injects the principal into the request context. Both a bare token
// and the Bearer <token> form are accepted. With Redis available the
// token's jti is also checked against the logout blacklist; a nil rdb
// skips that check.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if raw == "" {
			response.Unauthorized(c, "No token provided. Access denied.")
			c.Abort()
			return
		}
		if after, ok := strings.CutPrefix(raw, "Bearer "); ok {
			raw = after
		}

		claims, err := jwtMgr.Parse(raw)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.RegisteredClaims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, "Invalid or expired token")
				c.Abort()
				return
			}
			// A Redis error degrades to accepting the token.
		}

		c.Set(CtxPrincipalID, claims.ID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxPrincipalKey, claims.PrincipalKey())
		c.Set(CtxTokenJTI, claims.RegisteredClaims.ID)
		if claims.ExpiresAt != nil {
			c.Set(CtxTokenExpiry, claims.ExpiresAt.Time)
		} else {
			c.Set(CtxTokenExpiry, time.Time{})
		}

		c.Next()
	}
}

// RoleAuth allows the request through only when the verified role is one
// of the given roles. Runs after JWTAuth.
func RoleAuth(allowedRoles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			response.Unauthorized(c, "No token provided. Access denied.")
			c.Abort()
			return
		}

		current := role.(string)
		for _, r := range allowedRoles {
			if current == r.String() {
				c.Next()
				return
			}
		}

		response.Forbidden(c, allowedRoles[0].String()+" access required")
		c.Abort()
	}
}
