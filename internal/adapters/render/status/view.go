package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/slimkhemiri/slim-cli/internal/domain"
)

const (
	premiumMark = "★"
	endDateForm = "2006-01-02"
)

type RenderOptions struct {
	Now time.Time
}

type SessionView struct {
	Snapshot domain.Snapshot
	Decision *domain.Decision
}

type PlansView struct {
	Plans    []domain.Plan
	Identity *domain.Identity
}

func renderSession(view SessionView, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("Slim Design System")}

	switch {
	case view.Snapshot.IsLoading:
		lines = append(lines, s.empty.Render("Checking session..."))
	case view.Snapshot.Identity == nil:
		lines = append(lines, s.header.Render("not signed in"))
		lines = append(lines, s.empty.Render("Run `slim login` or `slim signup` to get started."))
	default:
		lines = append(lines, s.header.Render("signed in"))
		lines = append(lines, s.section.Render(renderIdentity(*view.Snapshot.Identity, opts, s)))
	}

	if view.Decision != nil {
		lines = append(lines, s.section.Render(renderDecision(*view.Decision, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderIdentity(identity domain.Identity, opts RenderOptions, s styles) string {
	title := s.name.Render(identity.DisplayName())
	if identity.IsPremium {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", s.premium.Render(premiumMark+" Premium"))
	} else {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", s.free.Render("Free"))
	}

	parts := []string{title}
	if identity.Email != "" {
		parts = append(parts, field("email", identity.Email, s))
	}
	if identity.Phone != "" {
		parts = append(parts, field("phone", identity.Phone, s))
	}
	parts = append(parts, field("id", string(identity.ID), s))
	parts = append(parts, subscriptionLine(identity, opts, s))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func field(key, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key+":"), " ", s.detail.Render(value))
}

func subscriptionLine(identity domain.Identity, opts RenderOptions, s styles) string {
	line := field("subscription", identity.SubscriptionStatus.Label(), s)
	if identity.SubscriptionStatus == domain.SubscriptionPastDue {
		line += " " + s.warning.Render("[payment due]")
	}

	if end := formatEndDate(identity.SubscriptionEndDate, identity.SubscriptionStatus, opts.Now); end != "" {
		line += " " + s.meta.Render("("+end+")")
	}

	return line
}

// formatEndDate accepts RFC 3339 or plain dates and falls back to the raw
// value for anything else.
func formatEndDate(raw string, status domain.SubscriptionStatus, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	verb := "renews"
	if status == domain.SubscriptionCanceled {
		verb = "ends"
	}

	endsAt, ok := parseEndDate(raw)
	if !ok {
		return verb + " " + raw
	}
	if now.IsZero() {
		return verb + " " + endsAt.Format(endDateForm)
	}
	if endsAt.Before(now) {
		if status == domain.SubscriptionCanceled {
			return "ended " + endsAt.Format(endDateForm)
		}
		return verb + " " + endsAt.Format(endDateForm)
	}

	days := int(math.Ceil(endsAt.Sub(now).Hours() / 24))
	if days < 1 {
		days = 1
	}
	suffix := "days"
	if days == 1 {
		suffix = "day"
	}

	return fmt.Sprintf("%s in %d %s (%s)", verb, days, suffix, endsAt.Format(endDateForm))
}

func parseEndDate(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, endDateForm} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func renderDecision(decision domain.Decision, s styles) string {
	var state string
	switch decision.State {
	case domain.GateUnlocked:
		state = s.unlocked.Render("unlocked")
	case domain.GateLocked:
		state = s.locked.Render("locked")
	default:
		state = s.empty.Render("checking")
	}

	feature := decision.Feature
	if feature == "" {
		feature = "This feature"
	}

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(feature+":"), " ", state),
	}
	if decision.State == domain.GateLocked {
		parts = append(parts, s.title.Render(decision.Title()))
		parts = append(parts, s.detail.Render(decision.Message()))
	}
	for _, action := range decision.Actions {
		parts = append(parts, s.action.Render("→ "+actionHint(action)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func actionHint(action domain.GateAction) string {
	switch action {
	case domain.ActionViewPricing:
		return "View pricing: slim plans"
	case domain.ActionLogIn:
		return "Log in: slim login"
	case domain.ActionUpgrade:
		return "Upgrade to Premium: slim upgrade --plan pro"
	default:
		return string(action)
	}
}

func renderPlans(view PlansView, s styles) string {
	lines := []string{
		s.title.Render("Choose Your Plan"),
		s.header.Render("All plans include our core features."),
	}

	current := currentPlan(view.Identity)
	for _, plan := range view.Plans {
		block := renderPlan(plan, plan.ID == current, s)
		if plan.ID == current {
			block = s.highlight.Render(block)
		}
		lines = append(lines, s.section.Render(block))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPlan(plan domain.Plan, current bool, s styles) string {
	heading := lipgloss.JoinHorizontal(lipgloss.Top, s.name.Render(plan.Name), " ", s.detail.Render(plan.PriceLabel()))
	if plan.Badge != "" {
		heading += " " + s.badge.Render("["+plan.Badge+"]")
	}
	if current {
		heading += " " + s.unlocked.Render("current plan")
	}

	parts := []string{heading, s.meta.Render(plan.Description)}
	for _, feature := range plan.Features {
		parts = append(parts, s.detail.Render("  ✓ "+feature))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// currentPlan guesses the plan from the entitlement; the backend does not
// report which paid tier is active, so premium users are shown on Pro.
func currentPlan(identity *domain.Identity) domain.PlanID {
	if identity == nil {
		return ""
	}
	if identity.IsPremium {
		return domain.PlanPro
	}
	return domain.PlanFree
}
