package domain

import "errors"

// Sentinel errors services return and the HTTP edge translates to status codes.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot enumerate accounts from the error text.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers malformed, tampered and expired tokens alike.
	ErrInvalidToken = errors.New("invalid token")

	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidRole     = errors.New("invalid role")
	ErrForbidden       = errors.New("access forbidden")
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrNothingToUpdate = errors.New("nothing to update")
)
