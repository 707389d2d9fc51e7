package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	token, err := jwtService.GenerateJWT("operador", time.Now().Add(time.Hour))
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "operador", r.Context().Value(AdminKey))
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "Valid token", authHeader: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "Missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "Wrong scheme", authHeader: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "Invalid token", authHeader: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/actividades", http.NoBody)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
