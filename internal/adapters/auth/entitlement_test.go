package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitlementClientFetchesStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, subscriptionStatusPath, r.URL.Path)
		assert.Equal(t, "user 1&x", r.URL.Query().Get("userId"))

		_, _ = w.Write([]byte(`{"isPremium":true,"subscriptionStatus":"trialing"}`))
	}))
	defer server.Close()

	entitlement, err := NewEntitlementClient(server.URL, server.Client()).Entitlement(context.Background(), "user 1&x")
	require.NoError(t, err)
	assert.Equal(t, domain.NewEntitlement(true, domain.SubscriptionTrialing), entitlement)
}

func TestEntitlementClientMapsNoneToAbsent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"isPremium":false,"subscriptionStatus":"none"}`))
	}))
	defer server.Close()

	entitlement, err := NewEntitlementClient(server.URL, server.Client()).Entitlement(context.Background(), "u-1")
	require.NoError(t, err)
	require.NotNil(t, entitlement.SubscriptionStatus)
	assert.Equal(t, domain.SubscriptionAbsent, *entitlement.SubscriptionStatus)
}

func TestEntitlementClientLeavesOmittedFieldsUnreported(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"subscriptionEndDate":"2030-01-01"}`))
	}))
	defer server.Close()

	entitlement, err := NewEntitlementClient(server.URL, server.Client()).Entitlement(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Nil(t, entitlement.IsPremium)
	assert.Nil(t, entitlement.SubscriptionStatus)
	assert.Equal(t, "2030-01-01", entitlement.SubscriptionEndDate)
}

func TestEntitlementClientReturnsErrorOnFailure(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "malformed", status: http.StatusOK, body: `<html>`},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := NewEntitlementClient(server.URL, server.Client()).Entitlement(context.Background(), "u-1")
			require.Error(t, err)
		})
	}
}
