package createBooking_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelbooker/internal/http-server/handlers/booking/createBooking"
	"hotelbooker/internal/http-server/handlers/booking/createBooking/mocks"
	"hotelbooker/internal/http-server/middleware/auth"
	"hotelbooker/internal/lib/api/apperr"
	"hotelbooker/internal/lib/logger/handlers/slogdiscard"
	"hotelbooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.BookingCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"room_id": 2}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", 1, 2).Return(&models.Booking{ID: 9, UserID: 1, RoomID: 2}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","booking_id":9}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing room_id",
			requestBody:    `{}`,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "RoomID")
			},
		},
		{
			name:        "Unknown room",
			requestBody: `{"room_id": 2}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", 1, 2).Return(nil, apperr.NotFound("room not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"room not found"}`,
		},
		{
			name:        "Already booked",
			requestBody: `{"room_id": 2}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", 1, 2).Return(nil, apperr.Conflict("user already has a booking with bookingId 7"))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"user already has a booking with bookingId 7"}`,
		},
		{
			name:        "Ticket does not grant hotel access",
			requestBody: `{"room_id": 2}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", 1, 2).Return(nil, apperr.PaymentRequired("ticket does not grant hotel access"))
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedBody:   `{"status":"Error","error":"ticket does not grant hotel access"}`,
		},
		{
			name:        "Room is full",
			requestBody: `{"room_id": 2}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", 1, 2).Return(nil, apperr.Forbidden("Room is already full"))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"Room is already full"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"room_id": 2}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", 1, 2).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewBookingCreator(t)
			tc.mockSetup(mockCreator)

			handler := createBooking.New(logger, mockCreator)

			router := chi.NewRouter()
			router.Use(stubAuth(1))
			router.Post("/booking", handler)

			req, err := http.NewRequest("POST", "/booking", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestCreateBookingWithoutIdentity(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockCreator := mocks.NewBookingCreator(t)
	handler := createBooking.New(logger, mockCreator)

	req, err := http.NewRequest("POST", "/booking", bytes.NewBufferString(`{"room_id": 2}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "unauthorized")
}

func stubAuth(userID int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}
