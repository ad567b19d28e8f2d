package getBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"hotelbooker/internal/http-server/middleware/auth"
	"hotelbooker/internal/lib/api/apperr"
	"hotelbooker/internal/lib/api/response"
	"hotelbooker/internal/lib/logger/sl"
	"hotelbooker/internal/models"

	"github.com/go-chi/render"
)

type BookingResponse struct {
	response.Response
	Booking *models.UserBooking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingProvider
type BookingProvider interface {
	GetUserBooking(userID int) (*models.UserBooking, error)
}

func New(log *slog.Logger, provider BookingProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no user id in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		booking, err := provider.GetUserBooking(userID)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			if errors.Is(err, apperr.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		log.Info("booking retrieved", slog.Int("booking_id", booking.ID))

		responseOK(w, r, booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.UserBooking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
