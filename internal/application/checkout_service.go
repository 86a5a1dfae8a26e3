package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/slimkhemiri/slim-cli/internal/ports"
	"go.uber.org/zap"
)

const DefaultCheckoutURLBase = "https://checkout.stripe.com/c/pay/"

type CheckoutSession struct {
	Plan      domain.Plan
	SessionID string
	URL       string
}

// CheckoutService starts a hosted payment session for the signed-in user.
type CheckoutService struct {
	session *SessionService
	gateway ports.CheckoutGateway
	urlBase string
	log     *zap.Logger
}

func NewCheckoutService(session *SessionService, gateway ports.CheckoutGateway, urlBase string, logger *zap.Logger) *CheckoutService {
	if urlBase == "" {
		urlBase = DefaultCheckoutURLBase
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CheckoutService{
		session: session,
		gateway: gateway,
		urlBase: urlBase,
		log:     logger.Named("checkout"),
	}
}

func (s *CheckoutService) Plans() []domain.Plan {
	return domain.Plans()
}

func (s *CheckoutService) StartCheckout(ctx context.Context, planID string) (CheckoutSession, error) {
	plan, err := domain.LookupPlan(planID)
	if err != nil {
		return CheckoutSession{}, err
	}
	if plan.Free() {
		return CheckoutSession{}, domain.ErrFreePlan
	}

	identity := s.session.Snapshot().Identity
	if identity == nil {
		return CheckoutSession{}, domain.ErrNotAuthenticated
	}
	if strings.TrimSpace(identity.Email) == "" {
		return CheckoutSession{}, &domain.ValidationError{Field: "email", Message: "an email address is required for checkout"}
	}

	sessionID, err := s.gateway.CreateSession(ctx, ports.CheckoutRequest{
		PriceID: plan.PriceID,
		Email:   identity.Email,
		UserID:  string(identity.ID),
		PlanID:  string(plan.ID),
	})
	if err != nil {
		return CheckoutSession{}, err
	}

	s.log.Info("checkout session created", zap.String("plan", string(plan.ID)), zap.String("user_id", string(identity.ID)))

	return CheckoutSession{
		Plan:      plan,
		SessionID: sessionID,
		URL:       fmt.Sprintf("%s%s", s.urlBase, sessionID),
	}, nil
}
