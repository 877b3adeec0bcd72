package domain

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateUser is returned when registering a username or email
	// that already exists.
	ErrDuplicateUser = errors.New("username or email already taken")

	ErrUserNotFound      = errors.New("user not found")
	ErrComplaintNotFound = errors.New("complaint not found")

	// ErrSessionInvalid covers a missing, tampered, expired or revoked
	// session token.
	ErrSessionInvalid = errors.New("session invalid")
)
