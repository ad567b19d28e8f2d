// Package booking holds the decision logic behind the /booking endpoints:
// who may book a room, whether the room still has space, and the
// one-booking-per-user rule. All shared state lives behind the Gateway;
// the service itself is stateless.
package booking

import (
	"errors"
	"fmt"

	"hotelbooker/internal/lib/api/apperr"
	"hotelbooker/internal/models"
	"hotelbooker/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Gateway
type Gateway interface {
	FindEnrollmentByUserID(userID int) (*models.Enrollment, error)
	FindTicketByEnrollmentID(enrollmentID int) (*models.Ticket, error)
	FindUserBooking(userID int) (*models.Booking, error)
	FindRoomByID(roomID int) (*models.Room, error)
	CountBookingsByRoomID(roomID int) (int, error)
	CreateBooking(userID, roomID int) (*models.Booking, error)
	ReplaceBooking(bookingID, roomID int) (*models.Booking, error)
}

type Service struct {
	gw Gateway
}

func New(gw Gateway) *Service {
	return &Service{gw: gw}
}

// GetUserBooking returns the caller's booking stripped down to its id and
// room details.
func (s *Service) GetUserBooking(userID int) (*models.UserBooking, error) {
	booking, err := s.gw.FindUserBooking(userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("user has no booking")
	}

	return &models.UserBooking{ID: booking.ID, Room: *booking.Room}, nil
}

// CreateBooking books a room for the user. The checks run in a fixed
// order so a user who is both already booked and ineligible always gets
// the conflict, not an eligibility failure: existing booking, then
// eligibility, then room capacity, then the write itself.
func (s *Service) CreateBooking(userID, roomID int) (*models.Booking, error) {
	booking, err := s.gw.FindUserBooking(userID)
	if err != nil {
		return nil, err
	}
	if booking != nil {
		return nil, apperr.Conflict(fmt.Sprintf("user already has a booking with bookingId %d", booking.ID))
	}

	if err = s.checkEligibility(userID); err != nil {
		return nil, err
	}

	if err = s.checkRoom(roomID); err != nil {
		return nil, err
	}

	created, err := s.gw.CreateBooking(userID, roomID)
	if err != nil {
		// The gateway re-checks both invariants under lock; a writer
		// that raced past the checks above loses here.
		if errors.Is(err, storage.ErrRoomFull) {
			return nil, apperr.Forbidden("Room is already full")
		}
		if errors.Is(err, storage.ErrAlreadyBooked) {
			return nil, apperr.Conflict("user already has a booking")
		}
		return nil, err
	}

	return created, nil
}

// ReplaceBooking moves the user's existing booking to another room. The
// supplied booking id must match the user's own booking; a mismatch is
// forbidden rather than not-found so the call never reveals whether the
// id belongs to someone else. Eligibility is not re-checked on replace:
// a user who booked while eligible may keep reassigning rooms.
func (s *Service) ReplaceBooking(userID, bookingID, roomID int) (*models.Booking, error) {
	booking, err := s.gw.FindUserBooking(userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperr.Forbidden("user has no booking to replace")
	}
	if booking.ID != bookingID {
		return nil, apperr.Forbidden(fmt.Sprintf("invalid bookingId, user's bookingId is %d", booking.ID))
	}

	if err = s.checkRoom(roomID); err != nil {
		return nil, err
	}

	replaced, err := s.gw.ReplaceBooking(bookingID, roomID)
	if err != nil {
		if errors.Is(err, storage.ErrRoomFull) {
			return nil, apperr.Forbidden("Room is already full")
		}
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, apperr.Forbidden("user has no booking to replace")
		}
		return nil, err
	}

	return replaced, nil
}

// checkEligibility gates booking creation on the user's enrollment and
// ticket state: the ticket must be paid, in-person and include hotel
// accommodation.
func (s *Service) checkEligibility(userID int) error {
	enrollment, err := s.gw.FindEnrollmentByUserID(userID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return apperr.NotFound("user has no enrollment")
	}

	ticket, err := s.gw.FindTicketByEnrollmentID(enrollment.ID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return apperr.NotFound("user has no ticket")
	}

	if !ticket.GrantsHotelAccess() {
		return apperr.PaymentRequired("ticket does not grant hotel access")
	}

	return nil
}

// checkRoom verifies the room exists and still has a free slot at
// decision time. Concurrent winners are settled again by the gateway.
func (s *Service) checkRoom(roomID int) error {
	room, err := s.gw.FindRoomByID(roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return apperr.NotFound("room not found")
	}

	count, err := s.gw.CountBookingsByRoomID(roomID)
	if err != nil {
		return err
	}
	if count >= room.Capacity {
		return apperr.Forbidden("Room is already full")
	}

	return nil
}
