package models

import "time"

type Booking struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	RoomID    int       `json:"room_id"`
	Room      *Room     `json:"room,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserBooking is the view returned to the booking owner. Internal
// bookkeeping fields (owner id, raw room id, timestamps) are stripped.
type UserBooking struct {
	ID   int  `json:"id"`
	Room Room `json:"room"`
}
