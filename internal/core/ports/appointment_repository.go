package ports

import (
	"context"
	"time"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
)

// AppointmentFilter scopes a listing. Zero values mean no filter; the
// service layer fills in the fields the actor's role requires.
type AppointmentFilter struct {
	DoctorID  string
	PatientID string
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) error
	Delete(ctx context.Context, id string) error
	// DeleteByPatient removes all appointments referencing a patient; it
	// backs the patient-delete cascade.
	DeleteByPatient(ctx context.Context, patientID string) error
	Count(ctx context.Context) (int64, error)
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
	// ListUpcoming returns at most limit appointments with the given
	// status, soonest first.
	ListUpcoming(ctx context.Context, status domain.AppointmentStatus, limit int) ([]*domain.Appointment, error)
}
