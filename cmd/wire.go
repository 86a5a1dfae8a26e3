package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	authadapter "github.com/slimkhemiri/slim-cli/internal/adapters/auth"
	statusadapter "github.com/slimkhemiri/slim-cli/internal/adapters/render/status"
	tomlrepo "github.com/slimkhemiri/slim-cli/internal/adapters/repo/toml"
	chainstore "github.com/slimkhemiri/slim-cli/internal/adapters/secrets/chain"
	"github.com/slimkhemiri/slim-cli/internal/application"
	"github.com/slimkhemiri/slim-cli/internal/config"
	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/slimkhemiri/slim-cli/internal/logging"
	"github.com/slimkhemiri/slim-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const dotenvFile = ".env"

type app struct {
	cfg          config.Config
	logger       *zap.Logger
	session      *application.SessionService
	checkout     *application.CheckoutService
	secretStore  ports.SecretStore
	renderStatus func(statusadapter.SessionView, statusadapter.RenderOptions) (string, error)
	renderPlans  func(statusadapter.PlansView) (string, error)
	googleLogin  googleLoginConfig
	now          func() time.Time
}

type googleLoginConfig struct {
	ClientID   string
	ListenAddr string
	Timeout    time.Duration
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v, dotenvFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.Log)

	repo, err := tomlrepo.NewRepository(cfg.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	secretStore, err := chainstore.NewEnvFirstWithFileFallback(cfg.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	phoneAPIKey := resolvePhoneAPIKey(context.Background(), cfg.Phone, secretStore, logger)

	session := application.NewSessionService(application.SessionDeps{
		Storage:     repo,
		Password:    authadapter.NewPasswordProvider(cfg.APIBaseURL, httpClient, cfg.DemoMode),
		Registrar:   authadapter.NewSignupClient(cfg.APIBaseURL, httpClient),
		OAuth:       authadapter.NewOAuthProvider(cfg.DemoMode),
		Phone:       authadapter.NewPhoneProvider(cfg.Phone.BaseURL, phoneAPIKey, httpClient),
		Entitlement: authadapter.NewEntitlementClient(cfg.APIBaseURL, httpClient),
		Clock:       ports.SystemClock{},
		Logger:      logger,
		DemoMode:    cfg.DemoMode,
	})

	return &app{
		cfg:          cfg,
		logger:       logger,
		session:      session,
		checkout:     application.NewCheckoutService(session, authadapter.NewCheckoutClient(cfg.APIBaseURL, httpClient), "", logger),
		secretStore:  secretStore,
		renderStatus: statusadapter.Render,
		renderPlans:  statusadapter.RenderPlans,
		googleLogin: googleLoginConfig{
			ClientID:   cfg.Google.ClientID,
			ListenAddr: cfg.Google.ListenAddr,
			Timeout:    cfg.Google.Timeout,
		},
		now: time.Now,
	}, nil
}

// resolvePhoneAPIKey prefers the configured key and falls back to the secret
// store. An empty result leaves phone login unconfigured.
func resolvePhoneAPIKey(ctx context.Context, cfg config.PhoneConfig, store ports.SecretStore, logger *zap.Logger) string {
	if cfg.APIKey != "" || cfg.APIKeySecret == "" {
		return cfg.APIKey
	}

	key, err := store.Get(ctx, cfg.APIKeySecret)
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			logger.Warn("read phone api key from secret store", zap.String("key", cfg.APIKeySecret), zap.Error(err))
		}
		return ""
	}

	return key
}
