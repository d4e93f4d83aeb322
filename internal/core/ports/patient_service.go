package ports

import (
	"context"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
)

// PatientInput carries the editable fields of a patient record.
type PatientInput struct {
	Name           string
	Age            int
	Gender         string
	Contact        string
	Address        string
	MedicalHistory string
	ImageFile      string
}

// PatientService implements role-scoped patient CRUD.
type PatientService interface {
	// List returns all records for clinical roles and only the actor's own
	// record for the patient role.
	List(ctx context.Context, actor domain.Actor) ([]*domain.Patient, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Patient, error)
	Create(ctx context.Context, actor domain.Actor, in PatientInput) (*domain.Patient, error)
	Update(ctx context.Context, actor domain.Actor, id string, in PatientInput) (*domain.Patient, error)
	// Delete removes the record and cascades its appointments and invoices.
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
