package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"goblog/internal/config"
	"goblog/internal/db"
	"goblog/internal/user"
)

// identityKey is where the request identity lives on the gin context.
const identityKey = "currentUser"

// CurrentUser resolves the request identity from the bearer session token.
// A missing or invalid token is not an error: the request proceeds with an
// AnonymousUser identity, which denies every permission check.
func CurrentUser(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, user.AnonymousUser{})
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := ParseSessionToken(cfg.Server.SecretKey, tokenStr); err == nil {
				if u, err := user.ByID(db.DB, claims.UserID); err == nil {
					c.Set(identityKey, u)
				}
			}
		}
		c.Next()
	}
}

// RequireUser aborts with 401 unless a real account is logged in.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Login required"}})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the identity holds the full
// administrator mask.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IdentityFrom(c).IsAdministrator() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": gin.H{"message": "Admin only"}})
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the request identity, anonymous when nobody is
// logged in. Safe to call whether or not CurrentUser ran.
func IdentityFrom(c *gin.Context) user.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(user.Identity); ok {
			return id
		}
	}
	return user.AnonymousUser{}
}

// UserFrom returns the authenticated account, or nil for anonymous
// requests.
func UserFrom(c *gin.Context) *user.User {
	if v, ok := c.Get(identityKey); ok {
		if u, ok := v.(*user.User); ok {
			return u
		}
	}
	return nil
}

// RequestIsSecure reports whether the inbound request arrived over a
// secure transport, honoring the X-Forwarded-Proto header set by fronting
// proxies.
func RequestIsSecure(c *gin.Context) bool {
	if c.Request.TLS != nil {
		return true
	}
	return c.GetHeader("X-Forwarded-Proto") == "https"
}
