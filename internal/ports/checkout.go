package ports

import "context"

type CheckoutRequest struct {
	PriceID string
	Email   string
	UserID  string
	PlanID  string
}

type CheckoutGateway interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (sessionID string, err error)
}
