package models

import "time"

// Enrollment is an attendee's registration record for the event. It is
// provisioned outside this service and read-only here; its existence is a
// prerequisite for any hotel eligibility.
type Enrollment struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
