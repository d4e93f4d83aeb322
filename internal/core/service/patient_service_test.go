package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

func newPatientFixture() (*PatientService, *stubPatientRepo, *stubAppointmentRepo, *stubInvoiceRepo) {
	patients := newStubPatientRepo()
	appointments := newStubAppointmentRepo()
	invoices := newStubInvoiceRepo()
	svc := NewPatientService(patients, appointments, invoices, zerolog.Nop())
	return svc, patients, appointments, invoices
}

var staff = domain.Actor{UserID: "u-staff", Role: domain.RoleReceptionist}

func TestPatientService_List_PatientSeesOnlyOwnRecord(t *testing.T) {
	svc, patients, _, _ := newPatientFixture()
	ctx := context.Background()

	own, _ := patients.Create(ctx, &domain.Patient{Name: "Self", UserID: "u1"})
	_, _ = patients.Create(ctx, &domain.Patient{Name: "Other"})

	got, err := svc.List(ctx, domain.Actor{UserID: "u1", Role: domain.RolePatient})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != own.ID {
		t.Fatalf("expected only own record, got %+v", got)
	}

	all, err := svc.List(ctx, staff)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected staff to see 2 records, got %d", len(all))
	}
}

func TestPatientService_List_UnlinkedPatientGetsEmptyList(t *testing.T) {
	svc, _, _, _ := newPatientFixture()

	got, err := svc.List(context.Background(), domain.Actor{UserID: "u-none", Role: domain.RolePatient})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

func TestPatientService_Get_CrossPatientForbidden(t *testing.T) {
	svc, patients, _, _ := newPatientFixture()
	ctx := context.Background()

	other, _ := patients.Create(ctx, &domain.Patient{Name: "Other", UserID: "u2"})

	if _, err := svc.Get(ctx, domain.Actor{UserID: "u1", Role: domain.RolePatient}, other.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Clinical roles pass the same check.
	if _, err := svc.Get(ctx, domain.Actor{UserID: "u3", Role: domain.RoleDoctor}, other.ID); err != nil {
		t.Fatalf("doctor should view any patient: %v", err)
	}
}

func TestPatientService_Create_RequiresClinicalRole(t *testing.T) {
	svc, _, _, _ := newPatientFixture()

	if _, err := svc.Create(context.Background(), domain.Actor{UserID: "u1", Role: domain.RolePatient}, ports.PatientInput{Name: "X"}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPatientService_Create_DefaultsImage(t *testing.T) {
	svc, _, _, _ := newPatientFixture()

	p, err := svc.Create(context.Background(), staff, ports.PatientInput{
		Name: "Jane Roe", Age: 33, Gender: "Female", Contact: "5550001111",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ImageFile != domain.DefaultImageFile {
		t.Fatalf("expected default image, got %s", p.ImageFile)
	}
	if p.ID == "" {
		t.Fatalf("expected assigned ID")
	}
}

func TestPatientService_Update_NotFound(t *testing.T) {
	svc, _, _, _ := newPatientFixture()

	if _, err := svc.Update(context.Background(), staff, "missing", ports.PatientInput{Name: "X"}); err != domain.ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestPatientService_Delete_CascadesAppointmentsAndInvoices(t *testing.T) {
	svc, patients, appointments, invoices := newPatientFixture()
	ctx := context.Background()

	p, _ := patients.Create(ctx, &domain.Patient{Name: "Cascade"})
	keep, _ := patients.Create(ctx, &domain.Patient{Name: "Keep"})

	_, _ = appointments.Create(ctx, &domain.Appointment{DoctorID: "d1", PatientID: p.ID, DateTime: time.Now()})
	_, _ = appointments.Create(ctx, &domain.Appointment{DoctorID: "d1", PatientID: keep.ID, DateTime: time.Now()})
	_, _ = invoices.Create(ctx, &domain.Invoice{PatientID: p.ID, Amount: 10})
	_, _ = invoices.Create(ctx, &domain.Invoice{PatientID: keep.ID, Amount: 20})

	if err := svc.Delete(ctx, staff, p.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := patients.FindByID(ctx, p.ID); err != domain.ErrPatientNotFound {
		t.Fatalf("patient still present: %v", err)
	}
	left, _ := appointments.List(ctx, ports.AppointmentFilter{})
	if len(left) != 1 || left[0].PatientID != keep.ID {
		t.Fatalf("appointment cascade wrong: %+v", left)
	}
	invs, _ := invoices.List(ctx, "")
	if len(invs) != 1 || invs[0].PatientID != keep.ID {
		t.Fatalf("invoice cascade wrong: %+v", invs)
	}
}

func TestPatientService_Delete_NotFound(t *testing.T) {
	svc, _, _, _ := newPatientFixture()

	if err := svc.Delete(context.Background(), staff, "missing"); err != domain.ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}
