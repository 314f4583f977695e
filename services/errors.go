package services

import "errors"

// Sentinel errors for the failure kinds the API distinguishes. Controllers map
// them to status codes with errors.Is; anything else is an internal fault.
var (
	ErrInvalidCredentials = errors.New("username or password is incorrect")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrRegistrationFailed = errors.New("error while registering")

	ErrItemNotFound = errors.New("menu item not found")
	ErrCartEmpty    = errors.New("shopping cart was not found or empty")

	ErrNotFound   = errors.New("not found")
	ErrIDMismatch = errors.New("id doesn't match provided id")

	ErrExternalProvider = errors.New("payment provider request failed")
)
