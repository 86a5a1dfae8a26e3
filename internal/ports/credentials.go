package ports

import (
	"context"

	"github.com/slimkhemiri/slim-cli/internal/domain"
)

type PasswordAuthenticator interface {
	Authenticate(ctx context.Context, identifier, secret string) (domain.Identity, error)
}

type Registrar interface {
	Register(ctx context.Context, req domain.SignupRequest) (domain.Identity, error)
}

type TokenAuthenticator interface {
	AuthenticateToken(ctx context.Context, token string) (domain.Identity, error)
}

// PhoneVerifier is a two-step challenge/response. SendCode returns an opaque
// handle that VerifyCode consumes.
type PhoneVerifier interface {
	SendCode(ctx context.Context, phoneNumber, challengeToken string) (handle string, err error)
	VerifyCode(ctx context.Context, handle, code string) (domain.Identity, error)
}

type EntitlementSource interface {
	Entitlement(ctx context.Context, id domain.IdentityID) (domain.Entitlement, error)
}
