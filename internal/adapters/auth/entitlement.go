package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/slimkhemiri/slim-cli/internal/ports"
)

const subscriptionStatusPath = "/api/subscription/status"

type EntitlementClient struct {
	api apiClient
}

var _ ports.EntitlementSource = (*EntitlementClient)(nil)

func NewEntitlementClient(baseURL string, httpClient *http.Client) *EntitlementClient {
	return &EntitlementClient{api: newAPIClient(baseURL, httpClient)}
}

type subscriptionStatusResponse struct {
	IsPremium           *bool   `json:"isPremium"`
	SubscriptionStatus  *string `json:"subscriptionStatus"`
	SubscriptionEndDate string  `json:"subscriptionEndDate"`
}

func (c *EntitlementClient) Entitlement(ctx context.Context, id domain.IdentityID) (domain.Entitlement, error) {
	if id == "" {
		return domain.Entitlement{}, fmt.Errorf("identity id is required")
	}

	endpoint := c.api.endpoint(subscriptionStatusPath, url.Values{"userId": []string{string(id)}})
	raw, err := c.api.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Entitlement{}, fmt.Errorf("fetch subscription status: %w", err)
	}

	var resp subscriptionStatusResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return domain.Entitlement{}, fmt.Errorf("decode subscription status: %w", err)
	}

	entitlement := domain.Entitlement{
		IsPremium:           resp.IsPremium,
		SubscriptionEndDate: resp.SubscriptionEndDate,
	}
	if resp.SubscriptionStatus != nil {
		status := domain.ParseSubscriptionStatus(*resp.SubscriptionStatus)
		entitlement.SubscriptionStatus = &status
	}

	return entitlement, nil
}
