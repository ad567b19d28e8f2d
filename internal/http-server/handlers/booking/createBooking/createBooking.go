package createBooking

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
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	RoomID int `json:"room_id" validate:"required"`
}

type BookingResponse struct {
	response.Response
	BookingID int `json:"booking_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(userID, roomID int) (*models.Booking, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no user id in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		booking, err := creator.CreateBooking(userID, req.RoomID)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, apperr.ErrNotFound):
				render.Status(r, http.StatusNotFound)
			case errors.Is(err, apperr.ErrConflict):
				render.Status(r, http.StatusConflict)
			case errors.Is(err, apperr.ErrPaymentRequired):
				render.Status(r, http.StatusPaymentRequired)
			case errors.Is(err, apperr.ErrForbidden):
				render.Status(r, http.StatusForbidden)
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
				return
			}

			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log.Info("booking created", slog.Int("booking_id", booking.ID))

		responseOK(w, r, booking.ID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookingID int) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response:  response.OK(),
		BookingID: bookingID,
	})
}
