package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

// AppointmentService implements booking, rescheduling, and cancellation.
// Status is forced to Scheduled on booking and never changed afterwards.
type AppointmentService struct {
	appointments ports.AppointmentRepository
	doctors      ports.DoctorRepository
	patients     ports.PatientRepository
	log          zerolog.Logger
}

func NewAppointmentService(
	appointments ports.AppointmentRepository,
	doctors ports.DoctorRepository,
	patients ports.PatientRepository,
	log zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		doctors:      doctors,
		patients:     patients,
		log:          log,
	}
}

// List scopes by role: staff see everything, a doctor sees their own
// schedule, a patient their own bookings. A doctor or patient account with
// no profile record gets an empty list.
func (s *AppointmentService) List(ctx context.Context, actor domain.Actor) ([]*domain.Appointment, error) {
	switch actor.Role {
	case domain.RoleAdmin, domain.RoleReceptionist:
		return s.appointments.List(ctx, ports.AppointmentFilter{})
	case domain.RoleDoctor:
		d, err := s.doctors.FindByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrDoctorNotFound) {
				return []*domain.Appointment{}, nil
			}
			return nil, err
		}
		return s.appointments.List(ctx, ports.AppointmentFilter{DoctorID: d.ID})
	default:
		p, err := s.patients.FindByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrPatientNotFound) {
				return []*domain.Appointment{}, nil
			}
			return nil, err
		}
		return s.appointments.List(ctx, ports.AppointmentFilter{PatientID: p.ID})
	}
}

// Book validates the referenced doctor and patient and persists the
// appointment as Scheduled. A patient-role actor is always booked against
// their own profile regardless of the submitted patient.
func (s *AppointmentService) Book(ctx context.Context, actor domain.Actor, in ports.AppointmentInput) (*domain.Appointment, error) {
	if _, err := s.doctors.FindByID(ctx, in.DoctorID); err != nil {
		return nil, err
	}

	patientID, err := s.resolvePatient(ctx, actor, in.PatientID)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		DoctorID:  in.DoctorID,
		PatientID: patientID,
		DateTime:  in.DateTime,
		Reason:    in.Reason,
		Status:    domain.StatusScheduled,
	}

	created, err := s.appointments.Create(ctx, appt)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("appointment_id", created.ID).
		Str("doctor_id", created.DoctorID).
		Str("patient_id", created.PatientID).
		Time("date_time", created.DateTime).
		Msg("appointment booked")
	return created, nil
}

// Update changes doctor, patient, time, and reason. Status is left as is;
// there is no transition endpoint.
func (s *AppointmentService) Update(ctx context.Context, actor domain.Actor, id string, in ports.AppointmentInput) (*domain.Appointment, error) {
	appt, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, appt); err != nil {
		return nil, err
	}

	if _, err := s.doctors.FindByID(ctx, in.DoctorID); err != nil {
		return nil, err
	}
	patientID, err := s.resolvePatient(ctx, actor, in.PatientID)
	if err != nil {
		return nil, err
	}

	appt.DoctorID = in.DoctorID
	appt.PatientID = patientID
	appt.DateTime = in.DateTime
	appt.Reason = in.Reason

	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *AppointmentService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	appt, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actor, appt); err != nil {
		return err
	}

	if err := s.appointments.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("appointment_id", id).Msg("appointment deleted")
	return nil
}

// resolvePatient pins patient-role actors to their own profile and
// validates the submitted patient for everyone else. Empty stays empty:
// walk-in appointments carry no patient reference.
func (s *AppointmentService) resolvePatient(ctx context.Context, actor domain.Actor, patientID string) (string, error) {
	if actor.Role == domain.RolePatient {
		own, err := s.patients.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return "", err
		}
		return own.ID, nil
	}
	if patientID == "" {
		return "", nil
	}
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return "", err
	}
	return patientID, nil
}

// authorize allows staff, the appointment's doctor, or its patient.
func (s *AppointmentService) authorize(ctx context.Context, actor domain.Actor, appt *domain.Appointment) error {
	var doctorUserID, patientUserID string
	if appt.DoctorID != "" {
		if d, err := s.doctors.FindByID(ctx, appt.DoctorID); err == nil {
			doctorUserID = d.UserID
		}
	}
	if appt.PatientID != "" {
		if p, err := s.patients.FindByID(ctx, appt.PatientID); err == nil {
			patientUserID = p.UserID
		}
	}
	if !actor.CanTouchAppointment(doctorUserID, patientUserID) {
		return domain.ErrForbidden
	}
	return nil
}
