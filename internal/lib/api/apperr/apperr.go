// Package apperr defines the failure kinds the services raise and the
// transport layer maps onto HTTP statuses: not-found, conflict, forbidden
// and payment-required. Each failure carries a human message while staying
// classifiable with errors.Is against the kind sentinels.
package apperr

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrPaymentRequired = errors.New("payment required")
)

type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func NotFound(msg string) error {
	return &Error{kind: ErrNotFound, msg: msg}
}

func Conflict(msg string) error {
	return &Error{kind: ErrConflict, msg: msg}
}

func Forbidden(msg string) error {
	return &Error{kind: ErrForbidden, msg: msg}
}

func PaymentRequired(msg string) error {
	return &Error{kind: ErrPaymentRequired, msg: msg}
}
