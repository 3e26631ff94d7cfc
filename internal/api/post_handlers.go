package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"goblog/internal/auth"
	"goblog/internal/db"
	"goblog/internal/post"
)

const defaultPostLimit = 50

// GET /posts
// Serves the sanitized BodyHTML only; the raw body never reaches readers.
func ListPostsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := post.Recent(db.DB, defaultPostLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}
		result := make([]gin.H, 0, len(posts))
		for _, p := range posts {
			result = append(result, gin.H{
				"id":        p.ID,
				"bodyHtml":  p.BodyHTML,
				"timestamp": p.Timestamp,
				"authorId":  p.AuthorID,
			})
		}
		c.JSON(http.StatusOK, result)
	}
}

type CreatePostRequest struct {
	Body string `json:"body"`
}

// POST /posts  [requires WriteArticles]
func CreatePostHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Body == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Body required"}})
			return
		}
		author := auth.UserFrom(c)
		p := post.New(author, req.Body, time.Now().UTC())
		if err := db.DB.Create(p).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"id":        p.ID,
			"bodyHtml":  p.BodyHTML,
			"timestamp": p.Timestamp,
			"authorId":  p.AuthorID,
		})
	}
}
