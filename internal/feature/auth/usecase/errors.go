// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by login ID or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserIDAlreadyExists is returned when attempting to create a user with a login ID that already exists.
	ErrUserIDAlreadyExists = errors.New("user id already exists")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidCredentials is returned when login ID or password verification fails.
	ErrInvalidCredentials = errors.New("invalid user id or password")
)
