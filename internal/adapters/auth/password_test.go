package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordProviderDemoAccountSkipsNetwork(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewPasswordProvider(server.URL, server.Client(), true)

	for _, identifier := range []string{"slim", "slim@example.com", "SLIM@example.com"} {
		identity, err := provider.Authenticate(context.Background(), identifier, "123")
		require.NoError(t, err)
		assert.Equal(t, domain.IdentityID("test_user_slim"), identity.ID)
		assert.Equal(t, "slim@example.com", identity.Email)
		assert.Equal(t, "Slim", identity.Name)
		assert.False(t, identity.IsPremium)
	}
	assert.Zero(t, calls.Load())
}

func TestPasswordProviderDemoAccountDisabledOutsideDemoMode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid email or password"}`))
	}))
	defer server.Close()

	_, err := NewPasswordProvider(server.URL, server.Client(), false).Authenticate(context.Background(), "slim", "123")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestPasswordProviderPostsCredentialsAndDecodesIdentity(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, loginPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"])
		assert.Equal(t, "hunter22", body["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","email":"ada@example.com","name":"Ada","isPremium":true,"subscriptionStatus":"active","subscriptionEndDate":"2026-12-01"}`))
	}))
	defer server.Close()

	identity, err := NewPasswordProvider(server.URL+"/", server.Client(), false).Authenticate(context.Background(), " ada@example.com ", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{
		ID:                  "u-1",
		Email:               "ada@example.com",
		Name:                "Ada",
		IsPremium:           true,
		SubscriptionStatus:  domain.SubscriptionActive,
		SubscriptionEndDate: "2026-12-01",
	}, identity)
}

func TestPasswordProviderClassifiesFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"Invalid email or password"}`, wantErr: domain.ErrInvalidCredentials},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"Email and password are required"}`, wantErr: domain.ErrInvalidCredentials},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"db down"}`, wantErr: domain.ErrServiceUnavailable},
		{name: "malformed success", status: http.StatusOK, body: `not json`, wantErr: domain.ErrInvalidCredentials},
		{name: "success missing email", status: http.StatusOK, body: `{"id":"u-1"}`, wantErr: domain.ErrInvalidCredentials},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := NewPasswordProvider(server.URL, server.Client(), false).Authenticate(context.Background(), "ada@example.com", "hunter22")
			require.ErrorIs(t, err, tc.wantErr)
			assert.NotContains(t, err.Error(), "Email and password are required")
		})
	}
}

func TestPasswordProviderTransportFailureIsServiceUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewPasswordProvider(url, nil, false).Authenticate(context.Background(), "ada@example.com", "hunter22")
	require.ErrorIs(t, err, domain.ErrServiceUnavailable)
}

func TestPasswordProviderRejectsEmptyInputWithoutNetwork(t *testing.T) {
	t.Parallel()

	_, err := NewPasswordProvider("http://127.0.0.1:1", nil, true).Authenticate(context.Background(), "", "")
	require.ErrorIs(t, err, domain.ErrValidation)
}
