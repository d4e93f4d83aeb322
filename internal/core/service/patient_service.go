package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

// PatientService implements role-scoped patient CRUD. Deleting a patient
// cascades to that patient's appointments and invoices.
type PatientService struct {
	patients     ports.PatientRepository
	appointments ports.AppointmentRepository
	invoices     ports.InvoiceRepository
	log          zerolog.Logger
}

func NewPatientService(
	patients ports.PatientRepository,
	appointments ports.AppointmentRepository,
	invoices ports.InvoiceRepository,
	log zerolog.Logger,
) *PatientService {
	return &PatientService{
		patients:     patients,
		appointments: appointments,
		invoices:     invoices,
		log:          log,
	}
}

// List returns every record for clinical roles. A patient-role actor gets
// a list holding only their own record, or an empty list when their
// account has no linked record.
func (s *PatientService) List(ctx context.Context, actor domain.Actor) ([]*domain.Patient, error) {
	if actor.IsClinical() {
		return s.patients.List(ctx)
	}

	own, err := s.patients.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return []*domain.Patient{}, nil
		}
		return nil, err
	}
	return []*domain.Patient{own}, nil
}

func (s *PatientService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Patient, error) {
	p, err := s.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanViewPatient(p) {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func (s *PatientService) Create(ctx context.Context, actor domain.Actor, in ports.PatientInput) (*domain.Patient, error) {
	if !actor.IsClinical() {
		return nil, domain.ErrForbidden
	}

	image := in.ImageFile
	if image == "" {
		image = domain.DefaultImageFile
	}

	p := &domain.Patient{
		Name:           in.Name,
		Age:            in.Age,
		Gender:         in.Gender,
		Contact:        in.Contact,
		Address:        in.Address,
		MedicalHistory: in.MedicalHistory,
		ImageFile:      image,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.patients.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("patient_id", created.ID).Str("name", created.Name).Msg("patient added")
	return created, nil
}

func (s *PatientService) Update(ctx context.Context, actor domain.Actor, id string, in ports.PatientInput) (*domain.Patient, error) {
	if !actor.IsClinical() {
		return nil, domain.ErrForbidden
	}

	p, err := s.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Age = in.Age
	p.Gender = in.Gender
	p.Contact = in.Contact
	p.Address = in.Address
	p.MedicalHistory = in.MedicalHistory
	if in.ImageFile != "" {
		p.ImageFile = in.ImageFile
	}

	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the record and everything referencing it. The cascade is
// best effort once the patient row is gone; failures are logged, not
// surfaced, so a half-finished cascade cannot resurrect the patient.
func (s *PatientService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsClinical() {
		return domain.ErrForbidden
	}

	if _, err := s.patients.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.patients.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.appointments.DeleteByPatient(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("patient_id", id).Msg("appointment cascade failed")
	}
	if err := s.invoices.DeleteByPatient(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("patient_id", id).Msg("invoice cascade failed")
	}

	s.log.Info().Str("patient_id", id).Msg("patient deleted")
	return nil
}
