package ports

import (
	"context"
	"time"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
)

// AppointmentInput carries a booking or reschedule submission. Status is
// not part of it: booking forces Scheduled and updates leave it untouched.
type AppointmentInput struct {
	DoctorID  string
	PatientID string
	DateTime  time.Time
	Reason    string
}

// AppointmentService implements booking, rescheduling, and cancellation.
type AppointmentService interface {
	// List scopes by role: staff see all, doctors their own schedule,
	// patients their own bookings.
	List(ctx context.Context, actor domain.Actor) ([]*domain.Appointment, error)
	// Book validates the doctor and patient references; a patient-role
	// actor is always booked against their own profile.
	Book(ctx context.Context, actor domain.Actor, in AppointmentInput) (*domain.Appointment, error)
	Update(ctx context.Context, actor domain.Actor, id string, in AppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
