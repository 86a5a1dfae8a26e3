package cmd

import (
	"errors"

	authadapter "github.com/slimkhemiri/slim-cli/internal/adapters/auth"
	"github.com/slimkhemiri/slim-cli/internal/domain"
)

var errFeatureLocked = errors.New("feature is locked")

// cliError keeps the original error for errors.Is while showing a friendlier
// message.
type cliError struct {
	message string
	err     error
}

func (e *cliError) Error() string {
	return e.message
}

func (e *cliError) Unwrap() error {
	return e.err
}

func friendly(err error) error {
	if err == nil {
		return nil
	}

	return &cliError{message: userMessage(err), err: err}
}

func userMessage(err error) string {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, domain.ErrInvalidCode):
		return "Invalid verification code. Please try again."
	case errors.Is(err, domain.ErrPhoneNotConfigured):
		return "Phone sign-in is not configured. Set phone.api_key or run `slim secret set phone/api_key`."
	case errors.Is(err, domain.ErrChallengeRequired):
		return "Phone sign-in needs a reCAPTCHA token (--challenge-token)."
	case errors.Is(err, domain.ErrNoPendingVerification):
		return "No verification in progress. Request a new code."
	case errors.Is(err, domain.ErrServiceUnavailable):
		return "The Slim service is unavailable. Please try again later."
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "You are not logged in. Run `slim login` first."
	case errors.Is(err, domain.ErrOperationInProgress):
		return "Another session operation is in progress."
	case errors.Is(err, domain.ErrUnknownPlan):
		return "Unknown plan. Run `slim plans` to see the available plans."
	case errors.Is(err, domain.ErrFreePlan):
		return "The Free plan does not need a checkout."
	case errors.Is(err, authadapter.ErrCallbackTimeout):
		return "Timed out waiting for Google sign-in."
	case errors.Is(err, authadapter.ErrCSRFMismatch):
		return "Google sign-in was rejected: the request could not be verified."
	case errors.Is(err, authadapter.ErrMissingClientID):
		return "Google sign-in needs google.client_id, or pass --token."
	default:
		return err.Error()
	}
}
