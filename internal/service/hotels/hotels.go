// Package hotels serves the read-only hotel catalog. Browsing is gated by
// the same ticket rule as booking: only an enrolled attendee whose ticket
// is paid, in-person and hotel-included may see the catalog.
package hotels

import (
	"hotelbooker/internal/lib/api/apperr"
	"hotelbooker/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Gateway
type Gateway interface {
	FindEnrollmentByUserID(userID int) (*models.Enrollment, error)
	FindTicketByEnrollmentID(enrollmentID int) (*models.Ticket, error)
	FindHotels() ([]models.Hotel, error)
	FindHotelByID(hotelID int) (*models.HotelWithRooms, error)
}

type Service struct {
	gw Gateway
}

func New(gw Gateway) *Service {
	return &Service{gw: gw}
}

func (s *Service) GetAllHotels(userID int) ([]models.Hotel, error) {
	if err := s.checkAccess(userID); err != nil {
		return nil, err
	}

	return s.gw.FindHotels()
}

func (s *Service) GetHotelWithRooms(userID, hotelID int) (*models.HotelWithRooms, error) {
	if err := s.checkAccess(userID); err != nil {
		return nil, err
	}

	hotel, err := s.gw.FindHotelByID(hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, apperr.NotFound("hotel not found")
	}

	return hotel, nil
}

// checkAccess differs from the booking gate in one respect: a missing
// ticket is treated as a payment problem rather than a missing record,
// since the attendee is enrolled but has not completed checkout.
func (s *Service) checkAccess(userID int) error {
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
	if ticket == nil || !ticket.GrantsHotelAccess() {
		return apperr.PaymentRequired("ticket does not grant hotel access")
	}

	return nil
}
