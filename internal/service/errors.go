package service

import (
	"errors"
	"fmt"
)

// Sentinel errors the HTTP layer maps to status codes. Anything wrapping
// ErrValidation answers 400 with its message; the rest map one-to-one.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidToken       = errors.New("invalid token")
)

// Category-specific failures, all of the validation class.
var (
	ErrEmptyCategory      = fmt.Errorf("%w: category name must not be empty", ErrValidation)
	ErrDuplicateCategory  = fmt.Errorf("%w: category already exists", ErrValidation)
	ErrUnknownCategory    = fmt.Errorf("%w: category does not exist", ErrValidation)
	ErrDuplicateFavourite = fmt.Errorf("%w: category is already a favourite", ErrValidation)
	ErrFavouritesLimit    = fmt.Errorf("%w: favourites limit reached (max 4)", ErrValidation)
)
