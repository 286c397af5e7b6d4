// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrBadCredentials is returned for any failed login attempt.
	ErrBadCredentials = errors.New("bad credentials")
	// ErrTicketNotFound signals missing ticket.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists signals username conflict.
	ErrUserExists = errors.New("user exists")
	// ErrTicketUsed signals a second entry attempt on the same ticket.
	ErrTicketUsed = errors.New("ticket used")
	// ErrBadPayload signals an undecodable or tampered QR payload.
	ErrBadPayload = errors.New("bad payload")
)
