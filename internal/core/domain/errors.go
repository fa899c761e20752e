package domain

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email address already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("caller does not own this resource")
	ErrNotFound           = errors.New("record not found")
)
