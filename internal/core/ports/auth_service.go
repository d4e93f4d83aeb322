package ports

import (
	"context"
	"time"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
)

// RegisterInput carries a registration submission.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UpdateAccountInput carries an account-edit submission. ImageFile is a
// stored-file reference; empty means keep the current picture.
type UpdateAccountInput struct {
	Username  string
	Email     string
	ImageFile string
}

// AuthService implements registration, login, logout, and account edits.
type AuthService interface {
	// Register creates the account and auto-provisions the matching
	// profile record for patient and doctor roles.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login accepts a username or an email as loginID. Any failure maps
	// to domain.ErrInvalidCredentials so the identifier is never confirmed.
	Login(ctx context.Context, loginID, password string) (string, *domain.User, error)
	// Logout revokes the token identified by jti until its expiry.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	Account(ctx context.Context, userID string) (*domain.User, error)
	UpdateAccount(ctx context.Context, userID string, in UpdateAccountInput) (*domain.User, error)
}
