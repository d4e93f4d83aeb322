package ports

import (
	"context"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
)

// HomeStats is the signed-in landing summary.
type HomeStats struct {
	NewPatients        int64 `json:"new_patients"`
	TodaysAppointments int64 `json:"todays_appointments"`
	ActiveDoctors      int64 `json:"active_doctors"`
}

// HistogramBucket is one day of the trailing-week appointment histogram.
type HistogramBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// DashboardStats aggregates the staff dashboard. Everything is recomputed
// from full scans on every request; there is deliberately no caching.
type DashboardStats struct {
	Patients     int64                 `json:"patients"`
	Appointments int64                 `json:"appointments"`
	Doctors      int64                 `json:"doctors"`
	Revenue      int64                 `json:"revenue"`
	Upcoming     []*domain.Appointment `json:"upcoming"`
	Histogram    []HistogramBucket     `json:"histogram"`
}

// ReportService computes the aggregate views.
type ReportService interface {
	Home(ctx context.Context) (*HomeStats, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
