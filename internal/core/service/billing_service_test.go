package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

func newBillingFixture() (*BillingService, *stubInvoiceRepo, *stubPatientRepo) {
	invoices := newStubInvoiceRepo()
	patients := newStubPatientRepo()
	svc := NewBillingService(invoices, patients, zerolog.Nop())
	return svc, invoices, patients
}

func TestBillingService_Create_DefaultsPending(t *testing.T) {
	svc, _, patients := newBillingFixture()
	ctx := context.Background()

	p, _ := patients.Create(ctx, &domain.Patient{Name: "Billed"})

	inv, err := svc.Create(ctx, staff, ports.InvoiceInput{
		PatientID: p.ID, Description: "Consultation", Amount: 120,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if inv.Status != domain.InvoicePending {
		t.Fatalf("expected Pending status, got %s", inv.Status)
	}
	if inv.DateIssued.IsZero() {
		t.Fatalf("expected issue date to be set")
	}

	paid, err := svc.Create(ctx, staff, ports.InvoiceInput{
		PatientID: p.ID, Description: "Lab work", Amount: 80, Status: domain.InvoicePaid,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if paid.Status != domain.InvoicePaid {
		t.Fatalf("expected Paid status, got %s", paid.Status)
	}
}

func TestBillingService_Create_Validation(t *testing.T) {
	svc, _, patients := newBillingFixture()
	ctx := context.Background()

	p, _ := patients.Create(ctx, &domain.Patient{Name: "Billed"})

	if _, err := svc.Create(ctx, staff, ports.InvoiceInput{
		PatientID: "missing", Description: "X", Amount: 10,
	}); err != domain.ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
	if _, err := svc.Create(ctx, staff, ports.InvoiceInput{
		PatientID: p.ID, Description: "X", Amount: 0,
	}); err != domain.ErrInvalidInvoice {
		t.Fatalf("expected ErrInvalidInvoice for zero amount, got %v", err)
	}
	if _, err := svc.Create(ctx, staff, ports.InvoiceInput{
		PatientID: p.ID, Description: "", Amount: 10,
	}); err != domain.ErrInvalidInvoice {
		t.Fatalf("expected ErrInvalidInvoice for empty description, got %v", err)
	}
	if _, err := svc.Create(ctx, staff, ports.InvoiceInput{
		PatientID: p.ID, Description: "X", Amount: 10, Status: "Overdue",
	}); err != domain.ErrInvalidInvoice {
		t.Fatalf("expected ErrInvalidInvoice for bad status, got %v", err)
	}
	if _, err := svc.Create(ctx, domain.Actor{UserID: "u1", Role: domain.RolePatient}, ports.InvoiceInput{
		PatientID: p.ID, Description: "X", Amount: 10,
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for patient role, got %v", err)
	}
}

func TestBillingService_List_PatientSeesOnlyOwn(t *testing.T) {
	svc, invoices, patients := newBillingFixture()
	ctx := context.Background()

	own, _ := patients.Create(ctx, &domain.Patient{Name: "Self", UserID: "u1"})
	other, _ := patients.Create(ctx, &domain.Patient{Name: "Other"})
	_, _ = invoices.Create(ctx, &domain.Invoice{PatientID: own.ID, Amount: 10})
	_, _ = invoices.Create(ctx, &domain.Invoice{PatientID: other.ID, Amount: 20})

	got, err := svc.List(ctx, domain.Actor{UserID: "u1", Role: domain.RolePatient})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].PatientID != own.ID {
		t.Fatalf("expected only own invoices, got %+v", got)
	}

	all, err := svc.List(ctx, staff)
	if err != nil || len(all) != 2 {
		t.Fatalf("staff should see all invoices, got %d (%v)", len(all), err)
	}
}

func TestBillingService_Get_OwnershipRule(t *testing.T) {
	svc, invoices, patients := newBillingFixture()
	ctx := context.Background()

	other, _ := patients.Create(ctx, &domain.Patient{Name: "Other", UserID: "u2"})
	inv, _ := invoices.Create(ctx, &domain.Invoice{PatientID: other.ID, Amount: 50})

	if _, err := svc.Get(ctx, domain.Actor{UserID: "u1", Role: domain.RolePatient}, inv.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(ctx, domain.Actor{UserID: "u2", Role: domain.RolePatient}, inv.ID); err != nil {
		t.Fatalf("owner should view invoice: %v", err)
	}
	if _, err := svc.Get(ctx, staff, inv.ID); err != nil {
		t.Fatalf("staff should view any invoice: %v", err)
	}
	if _, err := svc.Get(ctx, staff, "missing"); err != domain.ErrInvoiceNotFound {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}
