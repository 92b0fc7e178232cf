// handlers_test.go - Shared test setup for the HTTP surface
// Run with: go test ./...
//
// Handler tests run against the volatile (in-memory) backend; the
// storage contract tests guarantee the SQLite backend behaves the same.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-shop-backend/config"
	"go-shop-backend/models"
	"go-shop-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:          "8080",
		Storage:       "memory",
		JWTSecret:     "testsecret",
		CreateAdmin:   true,
		AdminUsername: "admin",
		AdminPassword: "adminpass",
	}
}

// setupTest returns a router with the full route table over a fresh
// in-memory store, plus the handler for direct storage access.
func setupTest(t *testing.T) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	store, err := storage.NewMemoryStorage(cfg)
	require.NoError(t, err)
	h := New(cfg, store)
	r := gin.New()
	h.RegisterRoutes(r)
	return r, h
}

// tokenFor signs a JWT for the given user ID, the same way Login does.
func tokenFor(t *testing.T, h *Handler, userID uint) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	})
	signed, err := token.SignedString([]byte(h.Cfg.JWTSecret))
	require.NoError(t, err)
	return signed
}

// createRegularUser seeds a non-admin user and returns it with a token.
func createRegularUser(t *testing.T, h *Handler, username string) (*models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("userpass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user, err := h.Store.CreateUser(&models.User{Username: username, Password: string(hash)})
	require.NoError(t, err)
	return user, tokenFor(t, h, user.ID)
}

// adminToken returns a token for the seeded admin account.
func adminToken(t *testing.T, h *Handler) string {
	t.Helper()
	admin, err := h.Store.GetUserByUsername(h.Cfg.AdminUsername)
	require.NoError(t, err)
	return tokenFor(t, h, admin.ID)
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(encoded)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorded JSON response body into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
