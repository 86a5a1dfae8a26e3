package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/slimkhemiri/slim-cli/internal/adapters/render/status"
	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/spf13/cobra"
)

type identityJSON struct {
	ID                  string `json:"id"`
	Email               string `json:"email,omitempty"`
	Phone               string `json:"phone,omitempty"`
	Name                string `json:"name,omitempty"`
	IsPremium           bool   `json:"isPremium"`
	SubscriptionStatus  string `json:"subscriptionStatus,omitempty"`
	SubscriptionEndDate string `json:"subscriptionEndDate,omitempty"`
}

type decisionJSON struct {
	Feature string   `json:"feature"`
	State   string   `json:"state"`
	Reason  string   `json:"reason,omitempty"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Actions []string `json:"actions,omitempty"`
}

type sessionJSON struct {
	Authenticated bool          `json:"authenticated"`
	Loading       bool          `json:"loading"`
	Identity      *identityJSON `json:"identity,omitempty"`
	Gate          *decisionJSON `json:"gate,omitempty"`
}

func toSessionJSON(snapshot domain.Snapshot, decision *domain.Decision) sessionJSON {
	out := sessionJSON{
		Authenticated: snapshot.Authenticated(),
		Loading:       snapshot.IsLoading,
	}
	if identity := snapshot.Identity; identity != nil {
		out.Identity = &identityJSON{
			ID:                  string(identity.ID),
			Email:               identity.Email,
			Phone:               identity.Phone,
			Name:                identity.Name,
			IsPremium:           identity.IsPremium,
			SubscriptionStatus:  string(identity.SubscriptionStatus),
			SubscriptionEndDate: identity.SubscriptionEndDate,
		}
	}
	if decision != nil {
		gate := &decisionJSON{
			Feature: decision.Feature,
			State:   string(decision.State),
			Reason:  string(decision.Reason),
			Title:   decision.Title(),
			Message: decision.Message(),
		}
		for _, action := range decision.Actions {
			gate.Actions = append(gate.Actions, string(action))
		}
		out.Gate = gate
	}

	return out
}

func writeSessionOutput(cmd *cobra.Command, app *app, decision *domain.Decision, asJSON bool) error {
	snapshot := app.session.Snapshot()

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toSessionJSON(snapshot, decision))
	}

	rendered, err := app.renderStatus(statusadapter.SessionView{
		Snapshot: snapshot,
		Decision: decision,
	}, statusadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// restoreSession loads the stored session and refreshes its entitlement.
func restoreSession(cmd *cobra.Command, app *app) error {
	return withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Checking session...", app.session.Restore)
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the signed-in user and subscription",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return friendly(err)
			}
			return writeSessionOutput(cmd, app, nil, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the session as JSON")

	return cmd
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in user's display name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return friendly(err)
			}

			identity := app.session.Snapshot().Identity
			if identity == nil {
				return friendly(domain.ErrNotAuthenticated)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), identity.DisplayName())
			return err
		},
	}
}

func newRefreshCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-check the subscription with the Slim service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return friendly(err)
			}
			if app.session.Snapshot().Identity == nil {
				return friendly(domain.ErrNotAuthenticated)
			}

			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Refreshing subscription...", app.session.RefreshEntitlement)
			if err != nil {
				return friendly(err)
			}

			return writeSessionOutput(cmd, app, nil, false)
		},
	}
}
