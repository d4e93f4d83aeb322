package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

const upcomingLimit = 5

// ReportService computes the landing and dashboard aggregates. Every call
// recomputes from the database; the numbers are cheap and always fresh.
type ReportService struct {
	patients     ports.PatientRepository
	doctors      ports.DoctorRepository
	appointments ports.AppointmentRepository
	invoices     ports.InvoiceRepository
	log          zerolog.Logger
}

func NewReportService(
	patients ports.PatientRepository,
	doctors ports.DoctorRepository,
	appointments ports.AppointmentRepository,
	invoices ports.InvoiceRepository,
	log zerolog.Logger,
) *ReportService {
	return &ReportService{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		invoices:     invoices,
		log:          log,
	}
}

// Home returns the signed-in landing summary: patients registered in the
// trailing 7 days, today's appointments, and the doctor headcount.
func (s *ReportService) Home(ctx context.Context) (*ports.HomeStats, error) {
	now := time.Now()

	newPatients, err := s.patients.CountCreatedSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	start, end := dayBounds(now)
	todays, err := s.appointments.CountBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	doctors, err := s.doctors.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.HomeStats{
		NewPatients:        newPatients,
		TodaysAppointments: todays,
		ActiveDoctors:      doctors,
	}, nil
}

// Dashboard returns the staff dashboard: entity counts, total revenue,
// the next scheduled appointments, and a per-day count for the trailing
// week (one count query per day, matching the view it feeds).
func (s *ReportService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	patients, err := s.patients.Count(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := s.appointments.Count(ctx)
	if err != nil {
		return nil, err
	}
	doctors, err := s.doctors.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.invoices.SumAmounts(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.appointments.ListUpcoming(ctx, domain.StatusScheduled, upcomingLimit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	histogram := make([]ports.HistogramBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start, end := dayBounds(day)
		count, err := s.appointments.CountBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}
		histogram = append(histogram, ports.HistogramBucket{
			Label: day.Format("Mon"),
			Count: count,
		})
	}

	return &ports.DashboardStats{
		Patients:     patients,
		Appointments: appointments,
		Doctors:      doctors,
		Revenue:      int64(revenue),
		Upcoming:     upcoming,
		Histogram:    histogram,
	}, nil
}

// dayBounds returns midnight and end-of-day around t in its location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24*time.Hour - time.Nanosecond)
}
