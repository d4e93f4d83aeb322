package ports

import (
	"context"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByLogin resolves a login identifier that may be either a
	// username or an email address.
	FindByLogin(ctx context.Context, loginID string) (*domain.User, error)
	// FindByUsernameOrEmail is the duplicate check used by registration
	// and doctor import.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
