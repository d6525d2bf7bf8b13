package ports

import (
	"context"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
//
// Lookups report absence with a (nil, nil) pair; only store-level failures
// produce errors. Create must translate the store's uniqueness violation on
// email into a domain duplicate error — the pre-check in the service is
// advisory, the store's constraint is the final arbiter.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
