// Package storage declares the errors the persistence gateway reports when
// a write loses a race that the services' pre-checks could not see. The
// services translate them into their own failure kinds.
package storage

import "errors"

var (
	// ErrRoomFull is returned when the transactional occupancy re-count
	// rejects a create or replace for a room at capacity.
	ErrRoomFull = errors.New("room is already full")

	// ErrAlreadyBooked is returned when the unique index on the booking
	// owner rejects a second booking for the same user.
	ErrAlreadyBooked = errors.New("user already has a booking")

	// ErrBookingNotFound is returned when a replace targets a booking id
	// that no longer exists.
	ErrBookingNotFound = errors.New("booking not found")
)
