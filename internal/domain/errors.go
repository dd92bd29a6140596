package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrHorseNotFound        = errors.New("horse not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotProfileOwner      = errors.New("not the profile owner")
)
