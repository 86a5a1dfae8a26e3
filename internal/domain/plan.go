package domain

import (
	"fmt"
	"strings"
)

type PlanID string

const (
	PlanFree       PlanID = "free"
	PlanPro        PlanID = "pro"
	PlanEnterprise PlanID = "enterprise"
)

type Plan struct {
	ID          PlanID
	Name        string
	Price       int
	PriceID     string
	Interval    string
	Description string
	Features    []string
	Badge       string
}

// Free reports whether the plan needs no checkout.
func (p Plan) Free() bool {
	return p.PriceID == ""
}

func (p Plan) PriceLabel() string {
	return fmt.Sprintf("$%d/%s", p.Price, p.Interval)
}

// Plans returns the catalogue in display order.
func Plans() []Plan {
	return []Plan{
		{
			ID:          PlanFree,
			Name:        "Free",
			Interval:    "month",
			Description: "Perfect for getting started",
			Features: []string{
				"Access to basic components",
				"Documentation access",
				"Community support",
				"Basic examples",
			},
		},
		{
			ID:          PlanPro,
			Name:        "Pro",
			Price:       19,
			PriceID:     "price_pro_monthly",
			Interval:    "month",
			Description: "For professional developers",
			Features: []string{
				"Everything in Free",
				"Premium components",
				"Advanced examples",
				"Priority support",
				"Custom theme builder",
				"Export design tokens",
				"API access",
			},
			Badge: "Most Popular",
		},
		{
			ID:          PlanEnterprise,
			Name:        "Enterprise",
			Price:       99,
			PriceID:     "price_enterprise_monthly",
			Interval:    "month",
			Description: "For teams and organizations",
			Features: []string{
				"Everything in Pro",
				"Team collaboration",
				"Custom integrations",
				"Dedicated support",
				"SLA guarantee",
				"Custom training",
				"White-label options",
			},
			Badge: "Best Value",
		},
	}
}

func LookupPlan(id string) (Plan, error) {
	wanted := PlanID(strings.ToLower(strings.TrimSpace(id)))
	for _, plan := range Plans() {
		if plan.ID == wanted {
			return plan, nil
		}
	}

	return Plan{}, fmt.Errorf("%w: %q", ErrUnknownPlan, id)
}
