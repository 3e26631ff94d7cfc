package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"goblog/internal/config"
	"goblog/internal/db"
	"goblog/internal/post"
	"goblog/internal/user"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// MIGRATE ALL MODELS USED IN TESTS!
	if err := conn.AutoMigrate(
		&user.Role{},
		&user.User{},
		&post.Post{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.DB = conn
	resetTables(t)
	return conn
}

func resetTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{"posts", "users", "roles"} {
		if err := db.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to reset %s table: %v", table, err)
		}
	}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.SecretKey = "test_api_secret"
	cfg.Admin.Email = "admin@example.com"
	return cfg
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	return bytes.NewReader(b)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

func newTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(cfg)
}
