package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() domain.SignupRequest {
	return domain.SignupRequest{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Password:        "analytical",
		ConfirmPassword: "analytical",
	}
}

func TestSignupClientRegistersIdentity(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, signupPath, r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "ada@example.com", "password": "analytical", "name": "Ada Lovelace"}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"user_42","email":"ada@example.com","name":"Ada Lovelace"}`))
	}))
	defer server.Close()

	identity, err := NewSignupClient(server.URL, server.Client()).Register(context.Background(), validSignup())
	require.NoError(t, err)
	assert.Equal(t, domain.IdentityID("user_42"), identity.ID)
	assert.Equal(t, "Ada Lovelace", identity.Name)
	assert.False(t, identity.IsPremium)
}

func TestSignupClientFailuresAreServiceUnavailable(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"error":"no such route"}`},
		{name: "conflict", status: http.StatusConflict, body: `{"error":"exists"}`},
		{name: "server error", status: http.StatusInternalServerError, body: ``},
		{name: "malformed success", status: http.StatusOK, body: `{"id":""}`},
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

			_, err := NewSignupClient(server.URL, server.Client()).Register(context.Background(), validSignup())
			require.ErrorIs(t, err, domain.ErrServiceUnavailable)
		})
	}
}

func TestSignupClientValidatesBeforeCalling(t *testing.T) {
	t.Parallel()

	req := validSignup()
	req.ConfirmPassword = "different"

	_, err := NewSignupClient("http://127.0.0.1:1", nil).Register(context.Background(), req)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "confirm_password", validationErr.Field)
}
