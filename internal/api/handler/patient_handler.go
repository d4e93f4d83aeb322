package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

// PatientHandler handles HTTP requests for patient records.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

type patientRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Age            int    `json:"age" validate:"gte=0,lte=150"`
	Gender         string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Contact        string `json:"contact" validate:"required,min=10,max=15"`
	Address        string `json:"address" validate:"required"`
	MedicalHistory string `json:"medical_history"`
	ImageFile      string `json:"image_file"`
}

type patientResponse struct {
	Message string          `json:"message,omitempty"`
	Patient *domain.Patient `json:"patient,omitempty"`
}

func (r patientRequest) toInput() ports.PatientInput {
	return ports.PatientInput{
		Name:           r.Name,
		Age:            r.Age,
		Gender:         r.Gender,
		Contact:        r.Contact,
		Address:        r.Address,
		MedicalHistory: r.MedicalHistory,
		ImageFile:      r.ImageFile,
	}
}

// List returns patient records scoped by the requester's role.
//
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Patient
// @Router       /patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	patients, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

// Get returns a single patient record.
//
// @Summary      Get a patient
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient ID"
// @Success      200  {object}  domain.Patient
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /patient/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	p, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create adds a new patient record.
//
// @Summary      Add a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      patientRequest  true  "Patient details"
// @Success      201   {object}  patientResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /patient/new [post]
func (h *PatientHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	p, err := h.service.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, patientResponse{
		Message: "Patient has been added!",
		Patient: p,
	})
}

// Update edits an existing patient record.
//
// @Summary      Update a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Patient ID"
// @Param        body  body      patientRequest  true  "Patient details"
// @Success      200   {object}  patientResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /patient/{id}/update [post]
func (h *PatientHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	p, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, patientResponse{
		Message: "Patient details have been updated!",
		Patient: p,
	})
}

// Delete removes a patient record and cascades its appointments and invoices.
//
// @Summary      Delete a patient
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /patient/{id}/delete [post]
func (h *PatientHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Patient has been deleted!"})
}
