package getAllHotels_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelbooker/internal/http-server/handlers/hotels/getAllHotels"
	"hotelbooker/internal/http-server/handlers/hotels/getAllHotels/mocks"
	"hotelbooker/internal/http-server/middleware/auth"
	"hotelbooker/internal/lib/api/apperr"
	"hotelbooker/internal/lib/logger/handlers/slogdiscard"
	"hotelbooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllHotelsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.HotelsProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(mock *mocks.HotelsProvider) {
				mock.On("GetAllHotels", 1).Return([]models.Hotel{{ID: 1, Name: "Plaza"}}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "Plaza")
			},
		},
		{
			name: "No enrollment",
			mockSetup: func(mock *mocks.HotelsProvider) {
				mock.On("GetAllHotels", 1).Return(nil, apperr.NotFound("user has no enrollment"))
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "user has no enrollment")
			},
		},
		{
			name: "Ticket does not grant hotel access",
			mockSetup: func(mock *mocks.HotelsProvider) {
				mock.On("GetAllHotels", 1).Return(nil, apperr.PaymentRequired("ticket does not grant hotel access"))
			},
			expectedStatus: http.StatusPaymentRequired,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "ticket does not grant hotel access")
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(mock *mocks.HotelsProvider) {
				mock.On("GetAllHotels", 1).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to get hotels")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewHotelsProvider(t)
			tc.mockSetup(mockProvider)

			handler := getAllHotels.New(logger, mockProvider)

			router := chi.NewRouter()
			router.Use(stubAuth(1))
			router.Get("/hotels", handler)

			req, err := http.NewRequest("GET", "/hotels", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}

func stubAuth(userID int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}
