package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Identity *identitySchema `toml:"identity,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type identitySchema struct {
	ID                  string `toml:"id"`
	Email               string `toml:"email,omitempty"`
	Phone               string `toml:"phone,omitempty"`
	Name                string `toml:"name,omitempty"`
	IsPremium           bool   `toml:"is_premium"`
	SubscriptionStatus  string `toml:"subscription_status,omitempty"`
	SubscriptionEndDate string `toml:"subscription_end_date,omitempty"`
}
