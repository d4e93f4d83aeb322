package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

type stubReportService struct {
	homeFn      func(ctx context.Context) (*ports.HomeStats, error)
	dashboardFn func(ctx context.Context) (*ports.DashboardStats, error)
}

func (s *stubReportService) Home(ctx context.Context) (*ports.HomeStats, error) {
	return s.homeFn(ctx)
}

func (s *stubReportService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	return s.dashboardFn(ctx)
}

func TestDashboardHandler_Stats_FlatCounters(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		dashboardFn: func(_ context.Context) (*ports.DashboardStats, error) {
			return &ports.DashboardStats{Patients: 10, Appointments: 4, Doctors: 2, Revenue: 1500}, nil
		},
	}
	handler := NewDashboardHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "admin")

	if err := handler.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["patients"] != 10 || resp["appointments"] != 4 || resp["doctors"] != 2 || resp["revenue"] != 1500 {
		t.Fatalf("unexpected counters: %+v", resp)
	}
}

// Every clinical role can poll the counters; patients get 401, not 403.
func TestDashboardHandler_Stats_RoleGate(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		dashboardFn: func(_ context.Context) (*ports.DashboardStats, error) {
			return &ports.DashboardStats{Patients: 1}, nil
		},
	}
	handler := NewDashboardHandler(stub)

	for _, role := range []string{"admin", "doctor", "receptionist"} {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, "u1", role)

		if err := handler.Stats(c); err != nil {
			t.Fatalf("role %s: unexpected error: %v", role, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("role %s: expected 200, got %d", role, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "patient")

	err := handler.Stats(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("patient: expected 401, got %v", err)
	}
}

func TestDashboardHandler_Home(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		homeFn: func(_ context.Context) (*ports.HomeStats, error) {
			return &ports.HomeStats{NewPatients: 3, TodaysAppointments: 2, ActiveDoctors: 5}, nil
		},
	}
	handler := NewDashboardHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Home(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["new_patients"] != 3 || resp["todays_appointments"] != 2 || resp["active_doctors"] != 5 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
