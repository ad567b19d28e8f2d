package getAllHotels

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

type HotelsResponse struct {
	response.Response
	Hotels []models.Hotel `json:"hotels"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HotelsProvider
type HotelsProvider interface {
	GetAllHotels(userID int) ([]models.Hotel, error)
}

func New(log *slog.Logger, provider HotelsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hotels.getAllHotels.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no user id in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		hotels, err := provider.GetAllHotels(userID)
		if err != nil {
			log.Error("failed to get hotels", sl.Err(err))

			switch {
			case errors.Is(err, apperr.ErrNotFound):
				render.Status(r, http.StatusNotFound)
			case errors.Is(err, apperr.ErrPaymentRequired):
				render.Status(r, http.StatusPaymentRequired)
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get hotels"))
				return
			}

			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log.Info("hotels retrieved", slog.Int("count", len(hotels)))

		responseOK(w, r, hotels)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, hotels []models.Hotel) {
	render.JSON(w, r, HotelsResponse{
		Response: response.OK(),
		Hotels:   hotels,
	})
}
