package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"artisan-backend/config"
	"artisan-backend/database"
	"artisan-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&users.User{}))
	database.DB = db

	r := gin.New()
	r.POST("/api/users/register", Register)
	r.POST("/api/users/login", Login)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterThenLogin(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/api/users/register", gin.H{
		"name":     "Buyer",
		"email":    "buyer@example.com",
		"password": "sunflower7",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user", resp.User.Role)

	w = postJSON(r, "/api/users/login", gin.H{
		"email":    "buyer@example.com",
		"password": "sunflower7",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/api/users/login", gin.H{
		"email":    "buyer@example.com",
		"password": "wrongpass1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/api/users/register", gin.H{
		"name":     "Buyer",
		"email":    "buyer@example.com",
		"password": "short1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/users/register", gin.H{
		"name":     "Buyer",
		"email":    "buyer@example.com",
		"password": "lettersonly",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupRouter(t)

	body := gin.H{"name": "Buyer", "email": "buyer@example.com", "password": "sunflower7"}
	w := postJSON(r, "/api/users/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/users/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}
