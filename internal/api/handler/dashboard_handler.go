package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

// DashboardHandler serves the aggregate landing and dashboard views.
type DashboardHandler struct {
	service ports.ReportService
}

func NewDashboardHandler(service ports.ReportService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Home returns the signed-in landing summary.
//
// @Summary      Landing page summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.HomeStats
// @Router       /home [get]
func (h *DashboardHandler) Home(c echo.Context) error {
	stats, err := h.service.Home(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Dashboard returns the full staff dashboard: totals, revenue, upcoming
// appointments, and the trailing-week booking histogram.
//
// @Summary      Staff dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      403  {object}  map[string]string
// @Router       /dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	stats, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Stats returns the headline counters as a flat JSON object for the
// dashboard's async refresh. Patients get 401, not 403.
//
// @Summary      Dashboard counters
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Failure      401  {object}  map[string]string
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if !actor.IsClinical() {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	stats, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{
		"patients":     stats.Patients,
		"appointments": stats.Appointments,
		"doctors":      stats.Doctors,
		"revenue":      stats.Revenue,
	})
}
