package application

import (
	"context"
	"errors"
	"testing"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/slimkhemiri/slim-cli/internal/ports"
	"github.com/slimkhemiri/slim-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutStartsSessionForSignedInUser(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t, false)
	loggedIn(t, f, ada)

	gateway := mocks.NewMockCheckoutGateway(t)
	gateway.EXPECT().CreateSession(mock.Anything, ports.CheckoutRequest{
		PriceID: "price_pro_monthly",
		Email:   "ada@example.com",
		UserID:  "u-1",
		PlanID:  "pro",
	}).Return("cs_test_1", nil).Once()

	checkout, err := NewCheckoutService(f.service, gateway, "", nil).StartCheckout(context.Background(), "pro")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", checkout.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", checkout.URL)
	assert.Equal(t, domain.PlanPro, checkout.Plan.ID)
}

func TestCheckoutRejections(t *testing.T) {
	t.Parallel()

	phoneOnly := domain.Identity{ID: "fb-1", Phone: "+21612345678"}

	testCases := []struct {
		name     string
		identity *domain.Identity
		plan     string
		wantErr  error
	}{
		{name: "free plan", identity: &ada, plan: "free", wantErr: domain.ErrFreePlan},
		{name: "unknown plan", identity: &ada, plan: "platinum", wantErr: domain.ErrUnknownPlan},
		{name: "anonymous", plan: "pro", wantErr: domain.ErrNotAuthenticated},
		{name: "no email", identity: &phoneOnly, plan: "enterprise", wantErr: domain.ErrValidation},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newSessionFixture(t, false)
			if tc.identity != nil {
				f.oauth.EXPECT().AuthenticateToken(mock.Anything, "token").Return(*tc.identity, nil).Once()
				f.storage.EXPECT().Save(mock.Anything, *tc.identity).Return(nil).Once()
				_, err := f.service.LoginWithOAuthToken(context.Background(), "token")
				require.NoError(t, err)
			}

			_, err := NewCheckoutService(f.service, mocks.NewMockCheckoutGateway(t), "", nil).StartCheckout(context.Background(), tc.plan)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCheckoutPropagatesGatewayError(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t, false)
	loggedIn(t, f, ada)

	gatewayErr := errors.New("stripe down")
	gateway := mocks.NewMockCheckoutGateway(t)
	gateway.EXPECT().CreateSession(mock.Anything, mock.Anything).Return("", gatewayErr).Once()

	_, err := NewCheckoutService(f.service, gateway, "https://pay.example.com/", nil).StartCheckout(context.Background(), "enterprise")
	require.ErrorIs(t, err, gatewayErr)
}
