package models

import "time"

const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

type Ticket struct {
	ID           int        `json:"id"`
	EnrollmentID int        `json:"enrollment_id"`
	TicketTypeID int        `json:"ticket_type_id"`
	Status       string     `json:"status"`
	TicketType   TicketType `json:"ticket_type"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type TicketType struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	PriceCents    int    `json:"price_cents"`
	IsRemote      bool   `json:"is_remote"`
	IncludesHotel bool   `json:"includes_hotel"`
}

// GrantsHotelAccess reports whether a paid, in-person, hotel-included
// ticket currently entitles its holder to book a room.
func (t *Ticket) GrantsHotelAccess() bool {
	return t.Status == TicketStatusPaid && !t.TicketType.IsRemote && t.TicketType.IncludesHotel
}
