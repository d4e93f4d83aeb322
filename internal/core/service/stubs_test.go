package service

import (
	"context"
	"strconv"
	"time"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests. They clone on
// the way in and out so tests cannot mutate stored state by accident.

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.seq++
	clone := cloneUser(user)
	clone.ID = "u" + strconv.Itoa(r.seq)
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByLogin(_ context.Context, loginID string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == loginID || u.Email == loginID {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubPatientRepo struct {
	patients map[string]*domain.Patient
	seq      int
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{patients: make(map[string]*domain.Patient)}
}

func clonePatient(p *domain.Patient) *domain.Patient {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPatientRepo) Create(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	r.seq++
	clone := clonePatient(p)
	clone.ID = "p" + strconv.Itoa(r.seq)
	r.patients[clone.ID] = clonePatient(clone)
	return clone, nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id string) (*domain.Patient, error) {
	if p, ok := r.patients[id]; ok {
		return clonePatient(p), nil
	}
	return nil, domain.ErrPatientNotFound
}

func (r *stubPatientRepo) FindByUserID(_ context.Context, userID string) (*domain.Patient, error) {
	for _, p := range r.patients {
		if p.UserID == userID {
			return clonePatient(p), nil
		}
	}
	return nil, domain.ErrPatientNotFound
}

func (r *stubPatientRepo) FindByNameContact(_ context.Context, name, contact string) (*domain.Patient, error) {
	for _, p := range r.patients {
		if p.Name == name && p.Contact == contact {
			return clonePatient(p), nil
		}
	}
	return nil, domain.ErrPatientNotFound
}

func (r *stubPatientRepo) List(_ context.Context) ([]*domain.Patient, error) {
	out := make([]*domain.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, clonePatient(p))
	}
	return out, nil
}

func (r *stubPatientRepo) Update(_ context.Context, p *domain.Patient) error {
	if _, ok := r.patients[p.ID]; !ok {
		return domain.ErrPatientNotFound
	}
	r.patients[p.ID] = clonePatient(p)
	return nil
}

func (r *stubPatientRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.patients[id]; !ok {
		return domain.ErrPatientNotFound
	}
	delete(r.patients, id)
	return nil
}

func (r *stubPatientRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.patients)), nil
}

func (r *stubPatientRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, p := range r.patients {
		if !p.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type stubDoctorRepo struct {
	doctors map[string]*domain.Doctor
	seq     int
}

func newStubDoctorRepo() *stubDoctorRepo {
	return &stubDoctorRepo{doctors: make(map[string]*domain.Doctor)}
}

func cloneDoctor(d *domain.Doctor) *domain.Doctor {
	if d == nil {
		return nil
	}
	clone := *d
	return &clone
}

func (r *stubDoctorRepo) Create(_ context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	r.seq++
	clone := cloneDoctor(d)
	clone.ID = "d" + strconv.Itoa(r.seq)
	r.doctors[clone.ID] = cloneDoctor(clone)
	return clone, nil
}

func (r *stubDoctorRepo) FindByID(_ context.Context, id string) (*domain.Doctor, error) {
	if d, ok := r.doctors[id]; ok {
		return cloneDoctor(d), nil
	}
	return nil, domain.ErrDoctorNotFound
}

func (r *stubDoctorRepo) FindByUserID(_ context.Context, userID string) (*domain.Doctor, error) {
	for _, d := range r.doctors {
		if d.UserID == userID {
			return cloneDoctor(d), nil
		}
	}
	return nil, domain.ErrDoctorNotFound
}

func (r *stubDoctorRepo) List(_ context.Context) ([]*domain.Doctor, error) {
	out := make([]*domain.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, cloneDoctor(d))
	}
	return out, nil
}

func (r *stubDoctorRepo) Update(_ context.Context, d *domain.Doctor) error {
	if _, ok := r.doctors[d.ID]; !ok {
		return domain.ErrDoctorNotFound
	}
	r.doctors[d.ID] = cloneDoctor(d)
	return nil
}

func (r *stubDoctorRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.doctors[id]; !ok {
		return domain.ErrDoctorNotFound
	}
	delete(r.doctors, id)
	return nil
}

func (r *stubDoctorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.doctors)), nil
}

type stubAppointmentRepo struct {
	appointments map[string]*domain.Appointment
	seq          int
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[string]*domain.Appointment)}
}

func cloneAppointment(a *domain.Appointment) *domain.Appointment {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	r.seq++
	clone := cloneAppointment(a)
	clone.ID = "a" + strconv.Itoa(r.seq)
	r.appointments[clone.ID] = cloneAppointment(clone)
	return clone, nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	if a, ok := r.appointments[id]; ok {
		return cloneAppointment(a), nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *stubAppointmentRepo) List(_ context.Context, filter ports.AppointmentFilter) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		if filter.DoctorID != "" && a.DoctorID != filter.DoctorID {
			continue
		}
		if filter.PatientID != "" && a.PatientID != filter.PatientID {
			continue
		}
		out = append(out, cloneAppointment(a))
	}
	return out, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, a *domain.Appointment) error {
	if _, ok := r.appointments[a.ID]; !ok {
		return domain.ErrAppointmentNotFound
	}
	r.appointments[a.ID] = cloneAppointment(a)
	return nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.appointments[id]; !ok {
		return domain.ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *stubAppointmentRepo) DeleteByPatient(_ context.Context, patientID string) error {
	for id, a := range r.appointments {
		if a.PatientID == patientID {
			delete(r.appointments, id)
		}
	}
	return nil
}

func (r *stubAppointmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.appointments)), nil
}

func (r *stubAppointmentRepo) CountBetween(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, a := range r.appointments {
		if !a.DateTime.Before(from) && !a.DateTime.After(to) {
			n++
		}
	}
	return n, nil
}

func (r *stubAppointmentRepo) ListUpcoming(_ context.Context, status domain.AppointmentStatus, limit int) ([]*domain.Appointment, error) {
	now := time.Now()
	out := make([]*domain.Appointment, 0, limit)
	for _, a := range r.appointments {
		if a.Status == status && a.DateTime.After(now) {
			out = append(out, cloneAppointment(a))
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type stubInvoiceRepo struct {
	invoices map[string]*domain.Invoice
	seq      int
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[string]*domain.Invoice)}
}

func cloneInvoice(inv *domain.Invoice) *domain.Invoice {
	if inv == nil {
		return nil
	}
	clone := *inv
	return &clone
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	r.seq++
	clone := cloneInvoice(inv)
	clone.ID = "i" + strconv.Itoa(r.seq)
	r.invoices[clone.ID] = cloneInvoice(clone)
	return clone, nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id string) (*domain.Invoice, error) {
	if inv, ok := r.invoices[id]; ok {
		return cloneInvoice(inv), nil
	}
	return nil, domain.ErrInvoiceNotFound
}

func (r *stubInvoiceRepo) List(_ context.Context, patientID string) ([]*domain.Invoice, error) {
	out := make([]*domain.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		if patientID != "" && inv.PatientID != patientID {
			continue
		}
		out = append(out, cloneInvoice(inv))
	}
	return out, nil
}

func (r *stubInvoiceRepo) DeleteByPatient(_ context.Context, patientID string) error {
	for id, inv := range r.invoices {
		if inv.PatientID == patientID {
			delete(r.invoices, id)
		}
	}
	return nil
}

func (r *stubInvoiceRepo) SumAmounts(_ context.Context) (float64, error) {
	var total float64
	for _, inv := range r.invoices {
		total += inv.Amount
	}
	return total, nil
}

type stubTokenStore struct {
	revoked map[string]time.Time
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{revoked: make(map[string]time.Time)}
}

func (s *stubTokenStore) Revoke(_ context.Context, jti string, until time.Time) error {
	s.revoked[jti] = until
	return nil
}
