package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/license-management-toolkit/keyserve/config"
)

func loginTestConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			AdminUsername: "admin",
			AdminPassword: "secret",
			JWTKey:        "test_jwt_key",
			JWTExpiration: time.Hour,
		},
	}
}

func loginEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	login := NewLoginRoute(cfg)

	engine := gin.New()
	engine.POST("/api/v1/authorize", login.Login)

	protected := engine.Group("/api/v1/admin", login.JWTAuthMiddleware())
	protected.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	return engine
}

func TestLogin_ValidCredentials(t *testing.T) {
	t.Parallel()

	engine := loginEngine(loginTestConfig())

	w := postJSON(t, engine, http.MethodPost, "/api/v1/authorize", `{"username":"admin","password":"secret"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var got TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotEmpty(t, got.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	engine := loginEngine(loginTestConfig())

	w := postJSON(t, engine, http.MethodPost, "/api/v1/authorize", `{"username":"admin","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Parallel()

	engine := loginEngine(loginTestConfig())

	// no token
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", http.NoBody)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// malformed token
	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", http.NoBody)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// token issued by Login is accepted
	lw := postJSON(t, engine, http.MethodPost, "/api/v1/authorize", `{"username":"admin","password":"secret"}`)
	require.Equal(t, http.StatusOK, lw.Code)

	var token TokenResponse
	require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &token))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
