package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/slimkhemiri/slim-cli/internal/logging"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "SLIM"

	configName = "config"
	configType = "toml"
	configDir  = ".slim"

	KeyAPIBaseURL        = "api.base_url"
	KeyDemoMode          = "demo_mode"
	KeySessionPath       = "session.path"
	KeySecretsDir        = "secrets.dir"
	KeyPhoneAPIKey       = "phone.api_key"
	KeyPhoneAPIKeySecret = "phone.api_key_secret"
	KeyPhoneBaseURL      = "phone.base_url"
	KeyGoogleClientID    = "google.client_id"
	KeyGoogleListenAddr  = "google.listen_addr"
	KeyGoogleTimeout     = "google.timeout"
	KeyHTTPTimeout       = "http.timeout"
	KeyLogLevel          = "log.level"
	KeyLogEncoding       = "log.encoding"
)

type Config struct {
	APIBaseURL  string
	DemoMode    bool
	SessionPath string
	SecretsDir  string
	HTTPTimeout time.Duration
	Phone       PhoneConfig
	Google      GoogleConfig
	Log         logging.Config
}

type PhoneConfig struct {
	APIKey string
	// APIKeySecret names a secret-store entry consulted when APIKey is empty.
	APIKeySecret string
	BaseURL      string
}

type GoogleConfig struct {
	ClientID   string
	ListenAddr string
	Timeout    time.Duration
}

// Load merges, in increasing precedence: defaults, ~/.slim/config.toml, a
// dotenv file and the process environment (SLIM_ prefix).
func Load(v *viper.Viper, dotenvPath string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load dotenv file: %w", err)
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	setDefaults(v, homeDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Config{
		APIBaseURL:  strings.TrimRight(strings.TrimSpace(v.GetString(KeyAPIBaseURL)), "/"),
		DemoMode:    v.GetBool(KeyDemoMode),
		SessionPath: v.GetString(KeySessionPath),
		SecretsDir:  v.GetString(KeySecretsDir),
		HTTPTimeout: v.GetDuration(KeyHTTPTimeout),
		Phone: PhoneConfig{
			APIKey:       strings.TrimSpace(v.GetString(KeyPhoneAPIKey)),
			APIKeySecret: strings.TrimSpace(v.GetString(KeyPhoneAPIKeySecret)),
			BaseURL:      strings.TrimRight(strings.TrimSpace(v.GetString(KeyPhoneBaseURL)), "/"),
		},
		Google: GoogleConfig{
			ClientID:   strings.TrimSpace(v.GetString(KeyGoogleClientID)),
			ListenAddr: v.GetString(KeyGoogleListenAddr),
			Timeout:    v.GetDuration(KeyGoogleTimeout),
		},
		Log: logging.Config{
			Level:    strings.ToLower(v.GetString(KeyLogLevel)),
			Encoding: strings.ToLower(v.GetString(KeyLogEncoding)),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault(KeyAPIBaseURL, "http://localhost:3000")
	v.SetDefault(KeyDemoMode, false)
	v.SetDefault(KeySessionPath, filepath.Join(homeDir, configDir, "session.toml"))
	v.SetDefault(KeySecretsDir, filepath.Join(homeDir, configDir, "secrets"))
	v.SetDefault(KeyPhoneAPIKey, "")
	v.SetDefault(KeyPhoneAPIKeySecret, "phone/api_key")
	v.SetDefault(KeyPhoneBaseURL, "https://identitytoolkit.googleapis.com/v1")
	v.SetDefault(KeyGoogleClientID, "")
	v.SetDefault(KeyGoogleListenAddr, "127.0.0.1:1456")
	v.SetDefault(KeyGoogleTimeout, 5*time.Minute)
	v.SetDefault(KeyHTTPTimeout, 15*time.Second)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogEncoding, "console")
}

func (c Config) validate() error {
	if err := validateHTTPURL(KeyAPIBaseURL, c.APIBaseURL); err != nil {
		return err
	}
	if err := validateHTTPURL(KeyPhoneBaseURL, c.Phone.BaseURL); err != nil {
		return err
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyHTTPTimeout)
	}
	if c.Google.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyGoogleTimeout)
	}

	return nil
}

func validateHTTPURL(key, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https", key)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", key)
	}

	return nil
}
