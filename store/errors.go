package store

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrEmailTaken         = errors.New("email is already taken by another user")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidRole        = errors.New("role must be Instructor or Student")
)
