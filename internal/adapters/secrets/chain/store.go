package chain

import (
	"context"
	"errors"
	"fmt"

	envstore "github.com/slimkhemiri/slim-cli/internal/adapters/secrets/env"
	filestore "github.com/slimkhemiri/slim-cli/internal/adapters/secrets/file"
	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/slimkhemiri/slim-cli/internal/ports"
)

// Store reads from primary first and falls back to fallback. Writes skip a
// read-only primary silently.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewEnvFirstWithFileFallback lets SLIM_SECRET_* variables shadow the files
// under fileRoot.
func NewEnvFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStoreChecked(envstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if errors.Is(err, domain.ErrSecretNotFound) {
		return "", fallbackErr
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	return s.write(ctx, key, "put", func(store ports.SecretStore) error {
		return store.Put(ctx, key, value)
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.write(ctx, key, "delete", func(store ports.SecretStore) error {
		return store.Delete(ctx, key)
	})
}

func (s *Store) write(ctx context.Context, key string, op string, fn func(ports.SecretStore) error) error {
	err := fn(s.primary)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := fn(s.fallback)
	if fallbackErr == nil {
		return nil
	}
	if errors.Is(err, domain.ErrSecretReadOnly) {
		return fallbackErr
	}

	return fmt.Errorf("secret %q: primary backend %s failed: %w; fallback backend %s failed: %w", key, op, err, op, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
