package domain

import (
	"fmt"
	"strings"
)

type IdentityID string

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionAbsent   SubscriptionStatus = ""
)

// ParseSubscriptionStatus maps server values onto the known statuses. "none"
// and anything unrecognised become SubscriptionAbsent.
func ParseSubscriptionStatus(raw string) SubscriptionStatus {
	switch status := SubscriptionStatus(strings.ToLower(strings.TrimSpace(raw))); status {
	case SubscriptionActive, SubscriptionCanceled, SubscriptionPastDue, SubscriptionTrialing:
		return status
	default:
		return SubscriptionAbsent
	}
}

func (s SubscriptionStatus) Label() string {
	switch s {
	case SubscriptionActive:
		return "Active"
	case SubscriptionCanceled:
		return "Canceled"
	case SubscriptionPastDue:
		return "Past due"
	case SubscriptionTrialing:
		return "Trial"
	default:
		return "Free"
	}
}

type Identity struct {
	ID                  IdentityID
	Email               string
	Phone               string
	Name                string
	IsPremium           bool
	SubscriptionStatus  SubscriptionStatus
	SubscriptionEndDate string
}

func (i Identity) Validate() error {
	if strings.TrimSpace(string(i.ID)) == "" {
		return fmt.Errorf("identity id is required")
	}
	if strings.TrimSpace(i.Email) == "" && strings.TrimSpace(i.Phone) == "" {
		return fmt.Errorf("identity %s: email or phone is required", i.ID)
	}

	return nil
}

// DisplayName prefers the name, then the email, then the phone number.
func (i Identity) DisplayName() string {
	for _, candidate := range []string{i.Name, i.Email, i.Phone} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}

	return string(i.ID)
}

// Entitlement is a subscription report. Nil fields were not reported and
// keep their previous value on merge.
type Entitlement struct {
	IsPremium           *bool
	SubscriptionStatus  *SubscriptionStatus
	SubscriptionEndDate string
}

// NewEntitlement builds a report carrying both premium flag and status.
func NewEntitlement(isPremium bool, status SubscriptionStatus) Entitlement {
	return Entitlement{IsPremium: &isPremium, SubscriptionStatus: &status}
}

// MergeEntitlement returns a copy of i with the reported subscription fields
// replaced. Identity fields (id, email, phone, name) are never touched.
func (i Identity) MergeEntitlement(e Entitlement) Identity {
	if e.IsPremium != nil {
		i.IsPremium = *e.IsPremium
	}
	if e.SubscriptionStatus != nil {
		i.SubscriptionStatus = *e.SubscriptionStatus
	}
	if e.SubscriptionEndDate != "" {
		i.SubscriptionEndDate = e.SubscriptionEndDate
	}

	return i
}

type ProfileUpdate struct {
	Name  *string
	Email *string
}

func (i Identity) ApplyProfile(update ProfileUpdate) (Identity, error) {
	if update.Name != nil {
		i.Name = strings.TrimSpace(*update.Name)
	}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if email != "" {
			if err := ValidateEmail(email); err != nil {
				return Identity{}, err
			}
		}
		i.Email = email
	}

	if err := i.Validate(); err != nil {
		return Identity{}, err
	}

	return i, nil
}
