package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/slimkhemiri/slim-cli/internal/domain"
)

const maxResponseBytes = 1 << 20

var errResponseStatus = errors.New("unexpected response status")

// apiClient talks JSON to the site backend rooted at baseURL.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string, httpClient *http.Client) apiClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return apiClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

type statusError struct {
	StatusCode int
	Message    string
}

func (e *statusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

func (e *statusError) Unwrap() error {
	return errResponseStatus
}

func (e *statusError) clientError() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

// apiErrorBody accepts both {"error": "text"} and Google's
// {"error": {"message": "TEXT"}} envelopes.
type apiErrorBody struct {
	Error json.RawMessage `json:"error"`
}

func (b apiErrorBody) message() string {
	var text string
	if err := json.Unmarshal(b.Error, &text); err == nil {
		return text
	}

	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b.Error, &nested); err == nil {
		return nested.Message
	}

	return ""
}

func (c apiClient) endpoint(path string, query url.Values) string {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

// do sends the request and returns the raw body of a 2xx response. Non-2xx
// responses become *statusError carrying the server's {error} text.
func (c apiClient) do(ctx context.Context, method, endpoint string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiErrorBody
		_ = json.Unmarshal(raw, &apiErr)
		return nil, &statusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(apiErr.message())}
	}

	return raw, nil
}

// classify maps transport and status failures onto the domain sentinels:
// 4xx means the credential was rejected, everything else is the service's fault.
func classify(err error, rejected error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) && statusErr.clientError() {
		return rejected
	}

	return fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
}

// identityPayload is the Identity-shaped JSON returned by login and signup.
type identityPayload struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	Name                string `json:"name"`
	IsPremium           bool   `json:"isPremium"`
	SubscriptionStatus  string `json:"subscriptionStatus"`
	SubscriptionEndDate string `json:"subscriptionEndDate"`
}

func decodeIdentity(raw []byte) (domain.Identity, bool) {
	var payload identityPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.Identity{}, false
	}

	identity := domain.Identity{
		ID:                  domain.IdentityID(strings.TrimSpace(payload.ID)),
		Email:               strings.TrimSpace(payload.Email),
		Name:                strings.TrimSpace(payload.Name),
		IsPremium:           payload.IsPremium,
		SubscriptionStatus:  domain.ParseSubscriptionStatus(payload.SubscriptionStatus),
		SubscriptionEndDate: strings.TrimSpace(payload.SubscriptionEndDate),
	}
	if identity.ID == "" || identity.Email == "" {
		return domain.Identity{}, false
	}

	return identity, true
}
