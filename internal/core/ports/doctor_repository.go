package ports

import (
	"context"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
)

// DoctorRepository defines persistence operations for doctor records.
type DoctorRepository interface {
	Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error)
	FindByID(ctx context.Context, id string) (*domain.Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Doctor, error)
	List(ctx context.Context) ([]*domain.Doctor, error)
	Update(ctx context.Context, d *domain.Doctor) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
