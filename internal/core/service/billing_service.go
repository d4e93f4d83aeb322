package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

// BillingService implements invoice creation and role-scoped viewing.
type BillingService struct {
	invoices ports.InvoiceRepository
	patients ports.PatientRepository
	log      zerolog.Logger
}

func NewBillingService(invoices ports.InvoiceRepository, patients ports.PatientRepository, log zerolog.Logger) *BillingService {
	return &BillingService{invoices: invoices, patients: patients, log: log}
}

// List returns every invoice for clinical roles and only the actor's own
// for the patient role.
func (s *BillingService) List(ctx context.Context, actor domain.Actor) ([]*domain.Invoice, error) {
	if actor.IsClinical() {
		return s.invoices.List(ctx, "")
	}

	p, err := s.patients.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return []*domain.Invoice{}, nil
		}
		return nil, err
	}
	return s.invoices.List(ctx, p.ID)
}

// Create validates the invoiced patient and persists the record. Status
// defaults to Pending; Paid may be set at creation time. Clinical roles only.
func (s *BillingService) Create(ctx context.Context, actor domain.Actor, in ports.InvoiceInput) (*domain.Invoice, error) {
	if !actor.IsClinical() {
		return nil, domain.ErrForbidden
	}

	if _, err := s.patients.FindByID(ctx, in.PatientID); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.InvoicePending
	}
	if !domain.ValidInvoiceStatus(status) {
		return nil, domain.ErrInvalidInvoice
	}
	if in.Amount <= 0 || in.Description == "" {
		return nil, domain.ErrInvalidInvoice
	}

	inv := &domain.Invoice{
		PatientID:   in.PatientID,
		Amount:      in.Amount,
		Description: in.Description,
		Status:      status,
		DateIssued:  time.Now().UTC(),
	}

	created, err := s.invoices.Create(ctx, inv)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("invoice_id", created.ID).
		Str("patient_id", created.PatientID).
		Float64("amount", created.Amount).
		Str("status", string(created.Status)).
		Msg("invoice created")
	return created, nil
}

// Get enforces the ownership rule for patient-role actors by resolving the
// invoiced patient's linked account.
func (s *BillingService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Invoice, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var patientUserID string
	if p, err := s.patients.FindByID(ctx, inv.PatientID); err == nil {
		patientUserID = p.UserID
	}
	if !actor.CanViewInvoice(patientUserID) {
		return nil, domain.ErrForbidden
	}
	return inv, nil
}
