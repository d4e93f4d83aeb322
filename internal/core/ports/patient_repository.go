package ports

import (
	"context"
	"time"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
)

// PatientRepository defines persistence operations for patient records.
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id string) (*domain.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Patient, error)
	// FindByNameContact is the natural-key lookup used to skip duplicate
	// rows during bulk import.
	FindByNameContact(ctx context.Context, name, contact string) (*domain.Patient, error)
	List(ctx context.Context) ([]*domain.Patient, error)
	Update(ctx context.Context, p *domain.Patient) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
