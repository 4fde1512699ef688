package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// Payment errors
	ErrValidation   = errors.New("validation error")
	ErrVerification = errors.New("payment signature verification failed")
	ErrGateway      = errors.New("payment gateway error")
	ErrPersistence  = errors.New("booking persistence failed")

	// Notification errors
	ErrDelivery = errors.New("notification delivery failed")

	// Webhook errors
	ErrWebhookNotConfigured = errors.New("webhook secret not configured")

	// Catalog errors
	ErrPackageNotFound = errors.New("package not found")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
)
