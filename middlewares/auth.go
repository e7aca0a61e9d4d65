package middlewares

import (
	"strings"

	"medmatch/configs"
	"medmatch/entity"
	"medmatch/pkg/resp"
	"medmatch/services"
	"medmatch/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the bearer token and, when roles are given,
// enforces that the caller holds one of them.
func AuthMiddleware(cfg *configs.Config, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, cfg.JWTSecret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		// Logged-out tokens are denylisted until they expire.
		if rdb := configs.Redis(); rdb != nil {
			if n, err := rdb.Exists(c.Request.Context(), services.DenylistKey(tokenStr)).Result(); err == nil && n > 0 {
				resp.Unauthorized(c, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("token", tokenStr)
		if claims.ExpiresAt != nil {
			c.Set("tokenExpiresAt", claims.ExpiresAt.Time)
		}

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// RequireVerified re-reads the user row so a freshly issued verification is
// honored without re-login. Attach after AuthMiddleware.
func RequireVerified(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user entity.User
		if err := db.First(&user, utils.CurrentUserID(c)).Error; err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		if !user.IsVerified {
			resp.Forbidden(c, "account not verified")
			c.Abort()
			return
		}
		c.Next()
	}
}
