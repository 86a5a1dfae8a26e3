package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/slimkhemiri/slim-cli/internal/ports"
)

const checkoutPath = "/api/checkout/create-session"

type CheckoutClient struct {
	api apiClient
}

var _ ports.CheckoutGateway = (*CheckoutClient)(nil)

func NewCheckoutClient(baseURL string, httpClient *http.Client) *CheckoutClient {
	return &CheckoutClient{api: newAPIClient(baseURL, httpClient)}
}

type checkoutRequest struct {
	PriceID string `json:"priceId"`
	Email   string `json:"email"`
	UserID  string `json:"userId"`
	PlanID  string `json:"planId"`
}

type checkoutResponse struct {
	SessionID string `json:"sessionId"`
}

func (c *CheckoutClient) CreateSession(ctx context.Context, req ports.CheckoutRequest) (string, error) {
	body := checkoutRequest{PriceID: req.PriceID, Email: req.Email, UserID: req.UserID, PlanID: req.PlanID}

	raw, err := c.api.do(ctx, http.MethodPost, c.api.endpoint(checkoutPath, nil), body)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", classify(err, fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)))
	}

	var resp checkoutResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.SessionID == "" {
		return "", fmt.Errorf("%w: malformed checkout response", domain.ErrServiceUnavailable)
	}

	return resp.SessionID, nil
}
