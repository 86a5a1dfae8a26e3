package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/slimkhemiri/slim-cli/internal/ports"
)

const signupPath = "/api/auth/signup"

type SignupClient struct {
	api apiClient
}

var _ ports.Registrar = (*SignupClient)(nil)

func NewSignupClient(baseURL string, httpClient *http.Client) *SignupClient {
	return &SignupClient{api: newAPIClient(baseURL, httpClient)}
}

// Register creates the account remotely. Any failure is reported as
// ErrServiceUnavailable; the caller decides whether to fabricate a local one.
func (c *SignupClient) Register(ctx context.Context, req domain.SignupRequest) (domain.Identity, error) {
	if err := domain.ValidateSignup(req); err != nil {
		return domain.Identity{}, err
	}

	body := map[string]string{
		"email":    strings.TrimSpace(req.Email),
		"password": req.Password,
		"name":     strings.TrimSpace(req.Name),
	}
	raw, err := c.api.do(ctx, http.MethodPost, c.api.endpoint(signupPath, nil), body)
	if err != nil {
		return domain.Identity{}, classify(err, fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err))
	}

	identity, ok := decodeIdentity(raw)
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: malformed signup response", domain.ErrServiceUnavailable)
	}

	return identity, nil
}
