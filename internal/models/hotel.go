package models

import "time"

type Hotel struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HotelWithRooms struct {
	Hotel
	Rooms []Room `json:"rooms"`
}
