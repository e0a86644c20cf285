package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown users and wrong passwords,
	// so login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrOfferNotFound is returned when a referenced offer does not exist.
	ErrOfferNotFound = errors.New("offer not found")
)
