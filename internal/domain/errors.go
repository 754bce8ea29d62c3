package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrNotAffected  = errors.New("no rows affected")
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotRegistered = errors.New("username not registered")
	ErrIncorrectPassword = errors.New("incorrect password")
)
