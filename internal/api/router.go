package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goblog/internal/auth"
	"goblog/internal/config"
	"goblog/internal/user"
)

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.GET("/health", healthHandler)

	group := r.Group("/")
	group.Use(auth.CurrentUser(cfg))
	{
		// Auth
		group.POST("/auth/register", RegisterHandler(cfg))
		group.POST("/auth/login", LoginHandler(cfg))
		group.GET("/auth/me", auth.RequireUser(), MeHandler())
		group.POST("/auth/confirm", auth.RequireUser(), ConfirmHandler(cfg))

		// Admin: accounts
		group.GET("/users", auth.RequireAdmin(), ListUsersHandler())

		// Public profiles
		group.GET("/users/:id", GetUserHandler())

		// Posts: only the sanitized HTML is ever served, writing needs the
		// write-articles permission.
		group.GET("/posts", ListPostsHandler())
		group.POST("/posts", auth.RequireUser(), RequirePermission(user.WriteArticles), CreatePostHandler())
	}
	return r
}

// RequirePermission aborts with 403 unless the request identity holds
// every requested permission bit.
func RequirePermission(p user.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.IdentityFrom(c).Can(p) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": gin.H{"message": "Forbidden"}})
			return
		}
		c.Next()
	}
}
