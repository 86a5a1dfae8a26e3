package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/slimkhemiri/slim-cli/internal/ports"
)

const (
	sessionFileMode  = 0o600
	sessionDirMode   = 0o700
	sessionConfigDir = ".slim"
	sessionFile      = "session.toml"
	tempFilePattern  = ".session-*.toml.tmp"
)

// Repository persists the cached identity in a single versioned TOML file.
type Repository struct {
	sessionPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionStorage = (*Repository)(nil)

// NewRepository stores the session at sessionPath, or ~/.slim/session.toml
// when it is empty.
func NewRepository(sessionPath string) (*Repository, error) {
	if sessionPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		sessionPath = filepath.Join(homeDir, sessionConfigDir, sessionFile)
	}

	sessionPath, err := normalizeSessionPath(sessionPath)
	if err != nil {
		return nil, err
	}

	return &Repository{sessionPath: sessionPath, mu: lockForPath(sessionPath)}, nil
}

func (r *Repository) Path() string {
	return r.sessionPath
}

func (r *Repository) Load(ctx context.Context) (domain.Identity, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, found, err := r.readSchema()
	if err != nil || !found || file.Identity == nil {
		return domain.Identity{}, false, err
	}

	identity := fromSchema(*file.Identity)
	if err := identity.Validate(); err != nil {
		return domain.Identity{}, false, fmt.Errorf("decode session file: %w", err)
	}

	return identity, true, nil
}

func (r *Repository) Save(ctx context.Context, identity domain.Identity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := identity.Validate(); err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	encoded := toSchema(identity)
	file := fileSchema{Identity: &encoded}
	file.applyDefaults()

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.sessionPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}

func (r *Repository) readSchema() (fileSchema, bool, error) {
	data, err := os.ReadFile(r.sessionPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, false, nil
		}
		return fileSchema{}, false, fmt.Errorf("read session file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, false, fmt.Errorf("decode session file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, false, err
	}
	file.applyDefaults()

	return file, true, nil
}

func normalizeSessionPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve session path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(r.sessionPath), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.sessionPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}

	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, r.sessionPath); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(identity domain.Identity) identitySchema {
	return identitySchema{
		ID:                  string(identity.ID),
		Email:               identity.Email,
		Phone:               identity.Phone,
		Name:                identity.Name,
		IsPremium:           identity.IsPremium,
		SubscriptionStatus:  string(identity.SubscriptionStatus),
		SubscriptionEndDate: identity.SubscriptionEndDate,
	}
}

func fromSchema(identity identitySchema) domain.Identity {
	return domain.Identity{
		ID:                  domain.IdentityID(identity.ID),
		Email:               identity.Email,
		Phone:               identity.Phone,
		Name:                identity.Name,
		IsPremium:           identity.IsPremium,
		SubscriptionStatus:  domain.ParseSubscriptionStatus(identity.SubscriptionStatus),
		SubscriptionEndDate: identity.SubscriptionEndDate,
	}
}
