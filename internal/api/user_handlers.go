package api

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"goblog/internal/auth"
	"goblog/internal/config"
	"goblog/internal/db"
	"goblog/internal/user"
)

const sessionDuration = 7 * 24 * time.Hour

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /auth/register
// Creates the account and returns the confirmation token the caller is
// expected to deliver by email. Role assignment happens inside
// user.Create: the configured admin email gets the administrator role,
// everyone else the default role.
func RegisterHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Email, username and password required"}})
			return
		}
		u := user.User{
			Email:    req.Email,
			Username: req.Username,
		}
		if err := u.SetPassword(req.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Password hash failed"}})
			return
		}
		if err := user.Create(db.DB, cfg.Admin.Email, &u); err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Email already registered"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}
		token, err := u.GenerateConfirmToken(cfg.Server.SecretKey, user.DefaultConfirmTokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to generate token"}})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"id":           u.ID,
			"email":        u.Email,
			"username":     u.Username,
			"confirmToken": token,
		})
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
}

// POST /auth/login
func LoginHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		u, err := user.ByEmail(db.DB, req.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Invalid email or password"}})
			return
		}
		if !u.VerifyPassword(req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Invalid email or password"}})
			return
		}
		token, err := auth.GenerateSessionToken(cfg.Server.SecretKey, u.ID, u.Username, sessionDuration)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to generate token"}})
			return
		}
		c.JSON(http.StatusOK, LoginResponse{
			Token:    token,
			UserID:   u.ID,
			Username: u.Username,
		})
	}
}

// GET /auth/me
// Refreshes the last-seen timestamp on every call.
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := auth.UserFrom(c)
		if err := u.Ping(db.DB); err != nil {
			log.Printf("[Api] last-seen refresh failed for user %d: %v", u.ID, err)
		}
		c.JSON(http.StatusOK, gin.H{
			"id":          u.ID,
			"email":       u.Email,
			"username":    u.Username,
			"confirmed":   u.Confirmed,
			"name":        u.Name,
			"location":    u.Location,
			"aboutMe":     u.AboutMe,
			"memberSince": u.MemberSince,
			"lastSeen":    u.LastSeen,
			"gravatar":    u.Gravatar(auth.RequestIsSecure(c), 100, "identicon", "g"),
			"isAdmin":     u.IsAdministrator(),
		})
	}
}

type ConfirmRequest struct {
	Token string `json:"token"`
}

// POST /auth/confirm
// Pass/fail only: expired, tampered and wrong-account tokens all look the
// same to the caller.
func ConfirmHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConfirmRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Token required"}})
			return
		}
		u := auth.UserFrom(c)
		if !u.Confirm(db.DB, cfg.Server.SecretKey, req.Token) {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid or expired confirmation token"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"confirmed": true})
	}
}

// GET /users  [admin only]
func ListUsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []user.User
		if err := db.DB.Preload("Role").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}
		result := make([]gin.H, 0, len(users))
		for _, u := range users {
			entry := gin.H{
				"id":          u.ID,
				"email":       u.Email,
				"username":    u.Username,
				"confirmed":   u.Confirmed,
				"memberSince": u.MemberSince,
				"lastSeen":    u.LastSeen,
			}
			if u.Role != nil {
				entry["role"] = u.Role.Name
			}
			result = append(result, entry)
		}
		c.JSON(http.StatusOK, result)
	}
}

// GET /users/:id  (public profile)
func GetUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid user id"}})
			return
		}
		u, err := user.ByID(db.DB, uint(id))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "User not found"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":          u.ID,
			"username":    u.Username,
			"name":        u.Name,
			"location":    u.Location,
			"aboutMe":     u.AboutMe,
			"memberSince": u.MemberSince,
			"lastSeen":    u.LastSeen,
			"gravatar":    u.Gravatar(auth.RequestIsSecure(c), 100, "identicon", "g"),
		})
	}
}
