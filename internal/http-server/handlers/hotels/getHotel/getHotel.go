package getHotel

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"hotelbooker/internal/http-server/middleware/auth"
	"hotelbooker/internal/lib/api/apperr"
	"hotelbooker/internal/lib/api/response"
	"hotelbooker/internal/lib/logger/sl"
	"hotelbooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type HotelResponse struct {
	response.Response
	Hotel *models.HotelWithRooms `json:"hotel"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HotelProvider
type HotelProvider interface {
	GetHotelWithRooms(userID, hotelID int) (*models.HotelWithRooms, error)
}

func New(log *slog.Logger, provider HotelProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hotels.getHotel.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no user id in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		hotelIDStr := chi.URLParam(r, "hotelId")
		if hotelIDStr == "" {
			log.Error("hotel id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("hotel id is required"))
			return
		}

		hotelID, err := strconv.Atoi(hotelIDStr)
		if err != nil {
			log.Error("invalid hotel id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid hotel id format"))
			return
		}

		log = log.With(slog.Int("hotel_id", hotelID))

		hotel, err := provider.GetHotelWithRooms(userID, hotelID)
		if err != nil {
			log.Error("failed to get hotel", sl.Err(err))

			switch {
			case errors.Is(err, apperr.ErrNotFound):
				render.Status(r, http.StatusNotFound)
			case errors.Is(err, apperr.ErrPaymentRequired):
				render.Status(r, http.StatusPaymentRequired)
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get hotel"))
				return
			}

			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log.Info("hotel retrieved", slog.Int("rooms", len(hotel.Rooms)))

		responseOK(w, r, hotel)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, hotel *models.HotelWithRooms) {
	render.JSON(w, r, HotelResponse{
		Response: response.OK(),
		Hotel:    hotel,
	})
}
