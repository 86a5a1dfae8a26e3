package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/slimkhemiri/slim-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutClientCreatesSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, checkoutPath, r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"priceId": "price_pro_monthly",
			"email":   "ada@example.com",
			"userId":  "u-1",
			"planId":  "pro",
		}, body)

		_, _ = w.Write([]byte(`{"sessionId":"cs_test_123"}`))
	}))
	defer server.Close()

	sessionID, err := NewCheckoutClient(server.URL, server.Client()).CreateSession(context.Background(), ports.CheckoutRequest{
		PriceID: "price_pro_monthly",
		Email:   "ada@example.com",
		UserID:  "u-1",
		PlanID:  "pro",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", sessionID)
}

func TestCheckoutClientSurfacesServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Missing required fields"}`))
	}))
	defer server.Close()

	_, err := NewCheckoutClient(server.URL, server.Client()).CreateSession(context.Background(), ports.CheckoutRequest{PlanID: "pro"})
	require.ErrorIs(t, err, domain.ErrServiceUnavailable)
	assert.ErrorContains(t, err, "Missing required fields")
}
