package middleware

import (
	"ai_eng_tam_backend/internal/config"
	"ai_eng_tam_backend/internal/service"
	"ai_eng_tam_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminRouter(admin *service.AdminService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", AdminAuth(admin), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func adminService(cfg config.AdminConfig) *service.AdminService {
	return service.NewAdminService(&config.Config{Admin: cfg})
}

func TestAdminAuthPasswordHeader(t *testing.T) {
	router := newAdminRouter(adminService(config.AdminConfig{Password: "admin2025"}))

	tests := []struct {
		name     string
		password string
		want     int
	}{
		{"correct password", "admin2025", http.StatusOK},
		{"wrong password", "nope", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.password != "" {
				req.Header.Set("X-Admin-Password", tt.password)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAdminAuthBearerToken(t *testing.T) {
	svc := adminService(config.AdminConfig{Password: "admin2025", JWTSecret: "test-secret", TokenHours: 1})
	router := newAdminRouter(svc)

	token, _, err := svc.IssueToken()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthSetsContextClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := adminService(config.AdminConfig{Password: "admin2025"})
	r := gin.New()
	r.GET("/admin/whoami", AdminAuth(svc), func(c *gin.Context) {
		claims := util.GetAdminFromContext(c)
		require.NotNil(t, claims)
		c.String(http.StatusOK, claims.Role)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	req.Header.Set("X-Admin-Password", "admin2025")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())
}

func TestAdminAuthUnconfiguredReturns503(t *testing.T) {
	router := newAdminRouter(adminService(config.AdminConfig{}))

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-Admin-Password", "anything")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "password_set")
}
