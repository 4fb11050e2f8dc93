package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	ErrMatchNotFound = errors.New("match not found")
	// ErrMatchConflict signals a lost race on relationship-record creation.
	// Callers recover by re-fetching the now-existing record.
	ErrMatchConflict = errors.New("match record already exists for pair")

	// ErrNotParticipant is returned when the caller is not one of the two
	// users on a relationship record.
	ErrNotParticipant = errors.New("user is not a participant of this match")
	// ErrMatchNotActive is returned when a chat operation targets a record
	// whose status is not matched.
	ErrMatchNotActive = errors.New("match is not in matched status")
)
