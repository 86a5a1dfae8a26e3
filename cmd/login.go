package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	authadapter "github.com/slimkhemiri/slim-cli/internal/adapters/auth"
	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		Long:  "Log in with email (or username) and password. Use `slim login google` or `slim login phone` for the other sign-in methods.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPasswordLogin(cmd, app, email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address or username (prompted when empty)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when empty)")

	cmd.AddCommand(newLoginGoogleCmd(app), newLoginPhoneCmd(app))

	return cmd
}

func runPasswordLogin(cmd *cobra.Command, app *app, email, password string) error {
	p := newPrompter(cmd)

	var err error
	if strings.TrimSpace(email) == "" {
		if email, err = p.Ask("Email"); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = p.AskSecret("Password"); err != nil {
			return err
		}
	}

	var identity domain.Identity
	err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Logging in...", func(ctx context.Context) error {
		identity, err = app.session.LoginWithPassword(ctx, email, password)
		return err
	})
	if err != nil {
		return friendly(err)
	}

	return writeWelcome(cmd, app, identity)
}

func writeWelcome(cmd *cobra.Command, app *app, identity domain.Identity) error {
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", identity.DisplayName()); err != nil {
		return err
	}

	return writeSessionOutput(cmd, app, nil, false)
}

func newLoginGoogleCmd(app *app) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "google",
		Short: "Sign in with Google",
		Long:  "Sign in with Google. Without --token a local page is served on google.listen_addr and the Google credential is collected from its callback.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(token) == "" {
				credential, err := waitForGoogleCredential(cmd, app)
				if err != nil {
					return friendly(err)
				}
				token = credential
			}

			identity, err := app.session.LoginWithOAuthToken(cmd.Context(), token)
			if err != nil {
				return friendly(err)
			}

			return writeWelcome(cmd, app, identity)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Google ID token to use instead of the browser flow")

	return cmd
}

func waitForGoogleCredential(cmd *cobra.Command, app *app) (string, error) {
	if app.googleLogin.ClientID == "" {
		return "", authadapter.ErrMissingClientID
	}

	server, err := authadapter.StartCallbackServer(app.googleLogin.ListenAddr, app.googleLogin.ClientID)
	if err != nil {
		return "", fmt.Errorf("start callback server: %w", err)
	}
	defer func() {
		_ = server.Close()
	}()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Open this URL to sign in with Google:\n%s\n", server.SignInURL())

	credential, err := server.WaitForCredential(cmd.Context(), app.googleLogin.Timeout)
	if err != nil {
		return "", fmt.Errorf("wait for google callback: %w", err)
	}

	return credential, nil
}

type phoneLoginOptions struct {
	number         string
	dialCode       string
	challengeToken string
	code           string
}

func newLoginPhoneCmd(app *app) *cobra.Command {
	var opts phoneLoginOptions

	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Sign in with a phone number and SMS code",
		Long:  "Sign in with a phone number. A 6-digit code is sent by SMS; a wrong code can be retried and an empty code lets you change the number.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPhoneLogin(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.number, "number", "", "Phone number, local or +international (prompted when empty)")
	cmd.Flags().StringVar(&opts.dialCode, "dial-code", "+1", "Country dial code for local numbers")
	cmd.Flags().StringVar(&opts.challengeToken, "challenge-token", "", "reCAPTCHA token required by the verification service")
	cmd.Flags().StringVar(&opts.code, "code", "", "Verification code; skips the prompt for the first attempt")

	return cmd
}

func runPhoneLogin(cmd *cobra.Command, app *app, opts phoneLoginOptions) error {
	p := newPrompter(cmd)
	out := cmd.OutOrStdout()
	number := opts.number

	for {
		if strings.TrimSpace(number) == "" {
			entered, err := p.Ask("Phone number")
			if err != nil {
				return err
			}
			number = entered
		}

		normalized, err := domain.NormalizePhoneNumber(opts.dialCode, number)
		if err != nil {
			return friendly(err)
		}

		var pending domain.PendingVerification
		err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Sending code...", func(ctx context.Context) error {
			pending, err = app.session.StartPhoneLogin(ctx, normalized, opts.challengeToken)
			return err
		})
		if err != nil {
			return friendly(err)
		}
		_, _ = fmt.Fprintf(out, "Code sent to %s\n", pending.PhoneNumber)

		identity, changeNumber, err := confirmPhoneCode(cmd, app, p, opts.code)
		if err != nil {
			return err
		}
		if changeNumber {
			app.session.CancelPhoneLogin()
			number, opts.code = "", ""
			continue
		}

		return writeWelcome(cmd, app, identity)
	}
}

// confirmPhoneCode prompts until the code is accepted. An empty entry asks to
// change the number.
func confirmPhoneCode(cmd *cobra.Command, app *app, p *prompter, code string) (domain.Identity, bool, error) {
	for {
		if code == "" {
			entered, err := p.Ask("Verification code (empty to change number)")
			if err != nil {
				return domain.Identity{}, false, err
			}
			if strings.TrimSpace(entered) == "" {
				return domain.Identity{}, true, nil
			}
			code = entered
		}

		identity, err := app.session.ConfirmPhoneLogin(cmd.Context(), code)
		if err == nil {
			return identity, false, nil
		}

		var validationErr *domain.ValidationError
		if !errors.Is(err, domain.ErrInvalidCode) && !errors.As(err, &validationErr) {
			return domain.Identity{}, false, friendly(err)
		}

		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), userMessage(err))
		code = ""
	}
}
