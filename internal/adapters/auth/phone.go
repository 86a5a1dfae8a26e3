package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/slimkhemiri/slim-cli/internal/ports"
)

const (
	DefaultPhoneBaseURL = "https://identitytoolkit.googleapis.com/v1"

	sendCodePath    = "/accounts:sendVerificationCode"
	phoneSignInPath = "/accounts:signInWithPhoneNumber"
)

// PhoneProvider drives SMS verification through the Firebase Identity
// Toolkit REST API.
type PhoneProvider struct {
	api    apiClient
	apiKey string
}

var _ ports.PhoneVerifier = (*PhoneProvider)(nil)

func NewPhoneProvider(baseURL, apiKey string, httpClient *http.Client) *PhoneProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultPhoneBaseURL
	}

	return &PhoneProvider{api: newAPIClient(baseURL, httpClient), apiKey: strings.TrimSpace(apiKey)}
}

type sendCodeResponse struct {
	SessionInfo string `json:"sessionInfo"`
}

type phoneSignInResponse struct {
	LocalID     string `json:"localId"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

func (p *PhoneProvider) SendCode(ctx context.Context, phoneNumber, challengeToken string) (string, error) {
	if p.apiKey == "" {
		return "", domain.ErrPhoneNotConfigured
	}
	if strings.TrimSpace(challengeToken) == "" {
		return "", domain.ErrChallengeRequired
	}
	if strings.TrimSpace(phoneNumber) == "" {
		return "", &domain.ValidationError{Field: "phone", Message: "phone number is required"}
	}

	body := map[string]string{"phoneNumber": phoneNumber, "recaptchaToken": challengeToken}
	raw, err := p.call(ctx, sendCodePath, body)
	if err != nil {
		return "", err
	}

	var resp sendCodeResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.SessionInfo == "" {
		return "", fmt.Errorf("%w: malformed send code response", domain.ErrServiceUnavailable)
	}

	return resp.SessionInfo, nil
}

func (p *PhoneProvider) VerifyCode(ctx context.Context, handle, code string) (domain.Identity, error) {
	if p.apiKey == "" {
		return domain.Identity{}, domain.ErrPhoneNotConfigured
	}
	if handle == "" {
		return domain.Identity{}, domain.ErrNoPendingVerification
	}
	if err := domain.ValidateVerificationCode(code); err != nil {
		return domain.Identity{}, err
	}

	body := map[string]string{"sessionInfo": handle, "code": strings.TrimSpace(code)}
	raw, err := p.call(ctx, phoneSignInPath, body)
	if err != nil {
		return domain.Identity{}, err
	}

	var resp phoneSignInResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.LocalID == "" || resp.PhoneNumber == "" {
		return domain.Identity{}, fmt.Errorf("%w: malformed sign-in response", domain.ErrServiceUnavailable)
	}

	return domain.Identity{
		ID:    domain.IdentityID(resp.LocalID),
		Phone: resp.PhoneNumber,
		Email: strings.TrimSpace(resp.Email),
		Name:  strings.TrimSpace(resp.DisplayName),
	}, nil
}

func (p *PhoneProvider) call(ctx context.Context, path string, body any) ([]byte, error) {
	endpoint := p.api.endpoint(path, url.Values{"key": []string{p.apiKey}})

	raw, err := p.api.do(ctx, http.MethodPost, endpoint, body)
	if err == nil {
		return raw, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	return nil, classifyFirebase(err)
}

// classifyFirebase inspects the {error: {message}} envelope. Messages look
// like "INVALID_CODE" or "TOO_SHORT : Invalid format.".
func classifyFirebase(err error) error {
	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}

	reason := strings.TrimSpace(strings.SplitN(statusErr.Message, ":", 2)[0])
	switch reason {
	case "INVALID_CODE", "CODE_EXPIRED", "SESSION_EXPIRED", "INVALID_SESSION_INFO", "MISSING_CODE":
		return fmt.Errorf("%w: %s", domain.ErrInvalidCode, reason)
	case "INVALID_PHONE_NUMBER", "TOO_SHORT", "TOO_LONG":
		return &domain.ValidationError{Field: "phone", Message: "please enter a valid phone number"}
	default:
		return fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}
}
