package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelbooker/internal/http-server/middleware/auth"
	"hotelbooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		authHeader     func(t *testing.T) string
		expectedStatus int
		expectedUserID int
	}{
		{
			name: "Valid token",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signToken(t, secret, jwt.MapClaims{"user_id": 42})
			},
			expectedStatus: http.StatusOK,
			expectedUserID: 42,
		},
		{
			name:           "Missing header",
			authHeader:     func(t *testing.T) string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Not a bearer token",
			authHeader:     func(t *testing.T) string { return "Basic dXNlcjpwYXNz" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Garbage token",
			authHeader:     func(t *testing.T) string { return "Bearer e124545rd5a158f1wz2315z" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Wrong signing key",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signToken(t, "other-secret", jwt.MapClaims{"user_id": 42})
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Expired token",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signToken(t, secret, jwt.MapClaims{
					"user_id": 42,
					"exp":     time.Now().Add(-time.Hour).Unix(),
				})
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Missing user_id claim",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signToken(t, secret, jwt.MapClaims{"sub": "someone"})
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Non-numeric user_id claim",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signToken(t, secret, jwt.MapClaims{"user_id": "42"})
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotUserID int
			var called bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotUserID, _ = auth.UserID(r.Context())
			})

			handler := auth.New(logger, secret)(next)

			req, err := http.NewRequest("GET", "/booking", nil)
			require.NoError(t, err)

			if header := tc.authHeader(t); header != "" {
				req.Header.Set("Authorization", header)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				assert.True(t, called, "next handler should run")
				assert.Equal(t, tc.expectedUserID, gotUserID)
			} else {
				assert.False(t, called, "next handler should not run")
				assert.Contains(t, rr.Body.String(), `"status":"Error"`)
			}
		})
	}
}

func TestUserIDMissing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)

	_, ok := auth.UserID(req.Context())
	assert.False(t, ok)
}
