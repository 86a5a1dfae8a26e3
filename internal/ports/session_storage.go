package ports

import (
	"context"

	"github.com/slimkhemiri/slim-cli/internal/domain"
)

// SessionStorage is the single durable slot holding the cached identity.
// Load reports found=false when nothing is stored.
type SessionStorage interface {
	Load(ctx context.Context) (identity domain.Identity, found bool, err error)
	Save(ctx context.Context, identity domain.Identity) error
	Clear(ctx context.Context) error
}
