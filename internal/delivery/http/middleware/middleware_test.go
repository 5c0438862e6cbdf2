package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-backend/config"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *jwt.JWTService, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	return NewAuthMiddleware(jwtService, client), jwtService, mr
}

func issueAccessToken(t *testing.T, jwtService *jwt.JWTService, mr *miniredis.Miniredis, userID int64, role string) string {
	token, tokenID, err := jwtService.GenerateAccessToken(userID, "user", role)
	require.NoError(t, err)
	require.NoError(t, mr.Set(accessKey(userID, tokenID), "valid"))
	return token
}

func accessKey(userID int64, tokenID string) string {
	return fmt.Sprintf("access_token:%d:%s", userID, tokenID)
}

type capture struct {
	userID int64
	role   entity.Role
	ip     string
	hit    bool
}

func (c *capture) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.hit = true
		c.userID, _ = GetUserIDFromContext(r.Context())
		c.role, _ = GetRoleFromContext(r.Context())
		c.ip = GetClientIPFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	m, jwtService, mr := newTestAuthMiddleware(t)
	valid := issueAccessToken(t, jwtService, mr, 5, "doctor")
	revoked, _, err := jwtService.GenerateAccessToken(6, "user", "admin")
	require.NoError(t, err)
	refresh, _, err := jwtService.GenerateRefreshToken(5, "user", "doctor")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"bad scheme", "Token " + valid, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized},
		{"revoked token", "Bearer " + revoked, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &capture{}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			m.Authenticate(c.handler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, c.hit)
		})
	}
}

func TestAuthenticate_PopulatesContext(t *testing.T) {
	m, jwtService, mr := newTestAuthMiddleware(t)
	token := issueAccessToken(t, jwtService, mr, 5, "doctor")
	c := &capture{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	m.Authenticate(c.handler()).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, int64(5), c.userID)
	assert.Equal(t, entity.RoleDoctor, c.role)
}

func TestOptionalAuthenticate(t *testing.T) {
	m, _, _ := newTestAuthMiddleware(t)

	t.Run("anonymous passes", func(t *testing.T) {
		c := &capture{}
		rec := httptest.NewRecorder()
		m.OptionalAuthenticate(c.handler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, c.hit)
		assert.Zero(t, c.userID)
	})

	t.Run("invalid token still rejected", func(t *testing.T) {
		c := &capture{}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		m.OptionalAuthenticate(c.handler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, c.hit)
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       *entity.Role
		wantStatus int
	}{
		{"no role", nil, http.StatusUnauthorized},
		{"patient", rolePtr(entity.RolePatient), http.StatusForbidden},
		{"admin", rolePtr(entity.RoleAdmin), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.role != nil {
				req = req.WithContext(WithRole(req.Context(), *tt.role))
			}
			rec := httptest.NewRecorder()

			RequireAdmin((&capture{}).handler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func rolePtr(role entity.Role) *entity.Role {
	return &role
}

func TestResolveClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"remote addr", nil, "198.51.100.4:5123", "198.51.100.4"},
		{"client ip header", map[string]string{"X-Client-IP": "203.0.113.9"}, "10.0.0.2:80", "203.0.113.9"},
		{"first public in chain", map[string]string{"X-Forwarded-For": "10.0.0.5, 203.0.113.7, 198.51.100.1"}, "10.0.0.2:80", "203.0.113.7"},
		{"private only", map[string]string{"X-Forwarded-For": "192.168.1.20"}, "10.0.0.2:80", "192.168.1.20"},
		{"forwarded header", map[string]string{"Forwarded": `for="[2001:db8::1]:443";proto=https`}, "10.0.0.2:80", "2001:db8::1"},
		{"garbage header", map[string]string{"X-Forwarded-For": "unknown"}, "10.0.0.2:80", "10.0.0.2"},
		{"nothing", nil, "", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, ResolveClientIP(req))
		})
	}
}

func TestClientIP_StoresAddress(t *testing.T) {
	c := &capture{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Client-IP", "203.0.113.9")

	ClientIP(c.handler()).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.9", c.ip)
}

func TestCORSMiddleware(t *testing.T) {
	c := &capture{}
	handler := NewCORSMiddleware("").Handle(c.handler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/queue", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, c.hit)
}
