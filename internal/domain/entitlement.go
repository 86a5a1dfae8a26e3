package domain

import "fmt"

type GateState string

const (
	GateLoading  GateState = "loading"
	GateLocked   GateState = "locked"
	GateUnlocked GateState = "unlocked"
)

type LockReason string

const (
	LockReasonNone       LockReason = ""
	LockReasonAnonymous  LockReason = "anonymous"
	LockReasonNotPremium LockReason = "not-premium"
)

type GateAction string

const (
	ActionViewPricing GateAction = "view-pricing"
	ActionLogIn       GateAction = "log-in"
	ActionUpgrade     GateAction = "upgrade"
)

// Requirement describes the gated content. ShowUpgrade controls whether a
// non-premium user is offered the upgrade action.
type Requirement struct {
	Feature     string
	ShowUpgrade bool
}

func PremiumRequirement(feature string) Requirement {
	return Requirement{Feature: feature, ShowUpgrade: true}
}

type Decision struct {
	State   GateState
	Reason  LockReason
	Feature string
	Actions []GateAction
}

// Evaluate maps a session snapshot onto a render decision. It is a pure
// function of its inputs; the first matching rule wins.
func Evaluate(snapshot Snapshot, req Requirement) Decision {
	feature := req.Feature
	if feature == "" {
		feature = "This feature"
	}

	switch {
	case snapshot.IsLoading:
		return Decision{State: GateLoading, Feature: feature}
	case snapshot.Identity == nil:
		return Decision{
			State:   GateLocked,
			Reason:  LockReasonAnonymous,
			Feature: feature,
			Actions: []GateAction{ActionViewPricing, ActionLogIn},
		}
	case !snapshot.Identity.IsPremium:
		var actions []GateAction
		if req.ShowUpgrade {
			actions = []GateAction{ActionUpgrade}
		}
		return Decision{
			State:   GateLocked,
			Reason:  LockReasonNotPremium,
			Feature: feature,
			Actions: actions,
		}
	default:
		return Decision{State: GateUnlocked, Feature: feature}
	}
}

func (d Decision) Unlocked() bool {
	return d.State == GateUnlocked
}

func (d Decision) Title() string {
	switch {
	case d.State == GateLoading:
		return "Checking access..."
	case d.Reason == LockReasonAnonymous:
		return "Premium Feature"
	case d.Reason == LockReasonNotPremium:
		return "Upgrade to Premium"
	default:
		return d.Feature
	}
}

func (d Decision) Message() string {
	switch d.Reason {
	case LockReasonAnonymous:
		return fmt.Sprintf("%s is available for premium members only. Sign up or log in to access premium features.", d.Feature)
	case LockReasonNotPremium:
		return fmt.Sprintf("%s is available for premium members only. Upgrade your account to unlock all premium features.", d.Feature)
	}
	if d.State == GateLoading {
		return "Checking access..."
	}

	return fmt.Sprintf("%s is unlocked.", d.Feature)
}
