package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/slimkhemiri/slim-cli/internal/ports"
)

const loginPath = "/api/auth/login"

const (
	demoUsername = "slim"
	demoEmail    = "slim@example.com"
	demoPassword = "123"
)

// DemoIdentity is returned for the demo account without touching the network.
var DemoIdentity = domain.Identity{
	ID:    "test_user_slim",
	Email: demoEmail,
	Name:  "Slim",
}

type PasswordProvider struct {
	api      apiClient
	demoMode bool
}

var _ ports.PasswordAuthenticator = (*PasswordProvider)(nil)

func NewPasswordProvider(baseURL string, httpClient *http.Client, demoMode bool) *PasswordProvider {
	return &PasswordProvider{api: newAPIClient(baseURL, httpClient), demoMode: demoMode}
}

func (p *PasswordProvider) Authenticate(ctx context.Context, identifier, secret string) (domain.Identity, error) {
	if err := domain.ValidateLogin(identifier, secret); err != nil {
		return domain.Identity{}, err
	}

	identifier = strings.TrimSpace(identifier)
	if p.demoMode && isDemoAccount(identifier, secret) {
		return DemoIdentity, nil
	}

	body := map[string]string{"email": identifier, "password": secret}
	raw, err := p.api.do(ctx, http.MethodPost, p.api.endpoint(loginPath, nil), body)
	if err != nil {
		return domain.Identity{}, classify(err, domain.ErrInvalidCredentials)
	}

	identity, ok := decodeIdentity(raw)
	if !ok {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	return identity, nil
}

func isDemoAccount(identifier, secret string) bool {
	if secret != demoPassword {
		return false
	}

	return strings.EqualFold(identifier, demoUsername) || strings.EqualFold(identifier, demoEmail)
}
