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

func firebaseError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": status, "message": message},
	})
}

func TestPhoneProviderSendCodeReturnsSessionInfo(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, sendCodePath, r.URL.Path)
		assert.Equal(t, "api-key", r.URL.Query().Get("key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "+21612345678", body["phoneNumber"])
		assert.Equal(t, "recaptcha-token", body["recaptchaToken"])

		_, _ = w.Write([]byte(`{"sessionInfo":"session-abc"}`))
	}))
	defer server.Close()

	handle, err := NewPhoneProvider(server.URL, "api-key", server.Client()).SendCode(context.Background(), "+21612345678", "recaptcha-token")
	require.NoError(t, err)
	assert.Equal(t, "session-abc", handle)
}

func TestPhoneProviderRequiresConfigurationAndChallenge(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	_, err := NewPhoneProvider(server.URL, "", server.Client()).SendCode(context.Background(), "+21612345678", "token")
	require.ErrorIs(t, err, domain.ErrPhoneNotConfigured)

	_, err = NewPhoneProvider(server.URL, "", server.Client()).VerifyCode(context.Background(), "session", "123456")
	require.ErrorIs(t, err, domain.ErrPhoneNotConfigured)

	_, err = NewPhoneProvider(server.URL, "api-key", server.Client()).SendCode(context.Background(), "+21612345678", " ")
	require.ErrorIs(t, err, domain.ErrChallengeRequired)

	assert.Zero(t, calls.Load())
}

func TestPhoneProviderVerifyCodeReturnsIdentity(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, phoneSignInPath, r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "session-abc", body["sessionInfo"])
		assert.Equal(t, "123456", body["code"])

		_, _ = w.Write([]byte(`{"localId":"fb-uid","phoneNumber":"+21612345678","idToken":"x","isNewUser":true}`))
	}))
	defer server.Close()

	identity, err := NewPhoneProvider(server.URL, "api-key", server.Client()).VerifyCode(context.Background(), "session-abc", "123456")
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{ID: "fb-uid", Phone: "+21612345678"}, identity)
	require.NoError(t, identity.Validate())
}

func TestPhoneProviderVerifyCodeValidatesCodeLocally(t *testing.T) {
	t.Parallel()

	_, err := NewPhoneProvider("http://127.0.0.1:1", "api-key", nil).VerifyCode(context.Background(), "session-abc", "12ab")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestPhoneProviderClassifiesFirebaseErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		message string
		status  int
		wantErr error
	}{
		{message: "INVALID_CODE", status: http.StatusBadRequest, wantErr: domain.ErrInvalidCode},
		{message: "CODE_EXPIRED", status: http.StatusBadRequest, wantErr: domain.ErrInvalidCode},
		{message: "SESSION_EXPIRED", status: http.StatusBadRequest, wantErr: domain.ErrInvalidCode},
		{message: "INVALID_SESSION_INFO", status: http.StatusBadRequest, wantErr: domain.ErrInvalidCode},
		{message: "TOO_SHORT : Invalid format.", status: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{message: "INVALID_PHONE_NUMBER : Invalid format.", status: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{message: "QUOTA_EXCEEDED", status: http.StatusBadRequest, wantErr: domain.ErrServiceUnavailable},
		{message: "INTERNAL", status: http.StatusInternalServerError, wantErr: domain.ErrServiceUnavailable},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.message, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				firebaseError(w, tc.status, tc.message)
			}))
			defer server.Close()

			_, err := NewPhoneProvider(server.URL, "api-key", server.Client()).VerifyCode(context.Background(), "session-abc", "123456")
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestPhoneProviderMalformedResponseIsServiceUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := NewPhoneProvider(server.URL, "api-key", server.Client()).SendCode(context.Background(), "+21612345678", "token")
	require.ErrorIs(t, err, domain.ErrServiceUnavailable)
}
