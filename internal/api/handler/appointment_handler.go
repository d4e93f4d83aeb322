package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/digitechhealth/clinic-api/internal/api/metrics"
	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for appointment scheduling.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type appointmentRequest struct {
	DoctorID  string    `json:"doctor_id" validate:"required"`
	PatientID string    `json:"patient_id"`
	DateTime  time.Time `json:"date_time" validate:"required"`
	Reason    string    `json:"reason" validate:"required,min=3,max=500"`
}

func (r appointmentRequest) toInput() ports.AppointmentInput {
	return ports.AppointmentInput{
		DoctorID:  r.DoctorID,
		PatientID: r.PatientID,
		DateTime:  r.DateTime,
		Reason:    r.Reason,
	}
}

type appointmentResponse struct {
	Message     string              `json:"message,omitempty"`
	Appointment *domain.Appointment `json:"appointment,omitempty"`
}

// List returns the appointments visible to the caller: staff see all,
// doctors their own schedule, patients their own bookings.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Appointment
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	appointments, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Book schedules a new appointment.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      appointmentRequest  true  "Appointment details"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /appointment/book [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	a, err := h.service.Book(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}

	metrics.AppointmentsBookedTotal.Inc()

	return c.JSON(http.StatusCreated, appointmentResponse{
		Message:     "Your appointment has been booked!",
		Appointment: a,
	})
}

// Update reschedules an existing appointment.
//
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Appointment ID"
// @Param        body  body      appointmentRequest  true  "Appointment details"
// @Success      200   {object}  appointmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /appointment/{id}/update [post]
func (h *AppointmentHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	a, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, appointmentResponse{
		Message:     "Your appointment has been updated!",
		Appointment: a,
	})
}

// Delete cancels an appointment.
//
// @Summary      Cancel an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /appointment/{id}/delete [post]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Your appointment has been cancelled!"})
}
