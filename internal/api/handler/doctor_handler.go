package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

// DoctorHandler handles HTTP requests for doctor records.
type DoctorHandler struct {
	service ports.DoctorService
}

func NewDoctorHandler(service ports.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

type addDoctorRequest struct {
	Username       string `json:"username" validate:"required,min=2,max=20"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Specialization string `json:"specialization" validate:"required"`
	Availability   string `json:"availability"`
}

type updateDoctorRequest struct {
	Username       string `json:"username" validate:"required,min=2,max=20"`
	Email          string `json:"email" validate:"required,email"`
	Specialization string `json:"specialization" validate:"required"`
	Availability   string `json:"availability" validate:"required"`
}

type profileRequest struct {
	Specialization string `json:"specialization" validate:"required"`
	Availability   string `json:"availability" validate:"required"`
}

type doctorResponse struct {
	Message string         `json:"message,omitempty"`
	Doctor  *domain.Doctor `json:"doctor,omitempty"`
}

// List returns all doctors. Any authenticated role may browse the roster.
//
// @Summary      List doctors
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Doctor
// @Router       /doctors [get]
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// Profile returns the requesting doctor's own record.
//
// @Summary      View own doctor profile
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Doctor
// @Failure      403  {object}  map[string]string
// @Router       /doctor/profile [get]
func (h *DoctorHandler) Profile(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	d, err := h.service.Profile(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// UpdateProfile edits the requesting doctor's own specialization and
// availability.
//
// @Summary      Update own doctor profile
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile details"
// @Success      200   {object}  doctorResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /doctor/profile [post]
func (h *DoctorHandler) UpdateProfile(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	d, err := h.service.UpdateProfile(c.Request().Context(), actor, ports.ProfileInput{
		Specialization: req.Specialization,
		Availability:   req.Availability,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, doctorResponse{Message: "Profile updated!", Doctor: d})
}

// Add creates a doctor account plus profile. Admin only.
//
// @Summary      Add a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addDoctorRequest  true  "Doctor details"
// @Success      201   {object}  doctorResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /doctor/add [post]
func (h *DoctorHandler) Add(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req addDoctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	d, err := h.service.Add(c.Request().Context(), actor, ports.AddDoctorInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		Specialization: req.Specialization,
		Availability:   req.Availability,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, doctorResponse{
		Message: "Doctor account created for " + d.Username + "!",
		Doctor:  d,
	})
}

// Update edits a doctor and its linked account. Admin only.
//
// @Summary      Update a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Doctor ID"
// @Param        body  body      updateDoctorRequest  true  "Doctor details"
// @Success      200   {object}  doctorResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /doctor/{id}/update [post]
func (h *DoctorHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	d, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateDoctorInput{
		Username:       req.Username,
		Email:          req.Email,
		Specialization: req.Specialization,
		Availability:   req.Availability,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, doctorResponse{Message: "Doctor profile updated!", Doctor: d})
}

// Delete removes a doctor and its linked account. Admin only.
//
// @Summary      Delete a doctor
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Doctor ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /doctor/{id}/delete [post]
func (h *DoctorHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Doctor has been deleted!"})
}
