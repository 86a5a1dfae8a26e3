package domain

import "errors"

var (
	ErrValidation            = errors.New("validation failed")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidCode           = errors.New("invalid or expired verification code")
	ErrServiceUnavailable    = errors.New("authentication service unavailable")
	ErrPhoneNotConfigured    = errors.New("phone verification service is not configured")
	ErrChallengeRequired     = errors.New("anti-abuse challenge token is required")
	ErrNoPendingVerification = errors.New("no pending verification")
	ErrOperationInProgress   = errors.New("another session operation is in progress")
	ErrNotAuthenticated      = errors.New("not logged in")
	ErrSessionClosed         = errors.New("session is closed")
	ErrUnknownPlan           = errors.New("unknown plan")
	ErrFreePlan              = errors.New("free plan does not require checkout")
	ErrSecretNotFound        = errors.New("secret not found")
	ErrSecretReadOnly        = errors.New("secret store is read-only")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
