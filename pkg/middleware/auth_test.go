package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ytanya/FreshNoodle/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testJWTConfig() utils.JWTConfig {
	return utils.JWTConfig{
		Secret:      "test-secret-key",
		ExpiryHours: 1,
		Issuer:      "FreshNoodleAPI",
		Audience:    "FreshNoodleClient",
	}
}

func TestAuthJWT(t *testing.T) {
	config := testJWTConfig()

	token, err := utils.GenerateToken(7, "bob", "bob@x.com", []string{"Admin"}, config)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid token",
			authHeader: "Bearer " + token,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: token,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.token",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				userID, ok := utils.GetUserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, int64(7), userID)

				roles, ok := utils.GetRolesFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, []string{"Admin"}, roles)

				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			AuthJWT(config, zap.NewNop())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	config := testJWTConfig()

	other := config
	other.Secret = "another-secret"
	token, err := utils.GenerateToken(7, "bob", "bob@x.com", nil, other)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	AuthJWT(config, zap.NewNop())(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		userRoles  []string
		required   []string
		wantStatus int
	}{
		{
			name:       "exact role",
			userRoles:  []string{"Admin"},
			required:   []string{"Admin"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "any-of match",
			userRoles:  []string{"Accounting"},
			required:   []string{"Admin", "Accounting"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing role",
			userRoles:  []string{"Accounting"},
			required:   []string{"Admin"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no roles at all",
			userRoles:  []string{},
			required:   []string{"Admin"},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			req = req.WithContext(utils.SetUserContext(req.Context(), 7, tt.userRoles))
			rec := httptest.NewRecorder()

			RequireRole(zap.NewNop(), tt.required...)(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireRole_WithoutAuthContext(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()

	RequireRole(zap.NewNop(), "Admin")(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
