package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/digitechhealth/clinic-api/internal/api/metrics"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RosterHandler handles spreadsheet bulk import/export of patient and
// doctor records.
type RosterHandler struct {
	service ports.RosterService
}

func NewRosterHandler(service ports.RosterService) *RosterHandler {
	return &RosterHandler{service: service}
}

// PatientTemplate serves an empty workbook with the patient column headers.
//
// @Summary      Download the patient import template
// @Tags         roster
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /patient/template [get]
func (h *RosterHandler) PatientTemplate(c echo.Context) error {
	data, err := h.service.PatientTemplate()
	if err != nil {
		return err
	}
	metrics.ExportsTotal.WithLabelValues("patient").Inc()
	return serveWorkbook(c, "patient_template.xlsx", data)
}

// ExportPatients serves the full patient roster as a workbook.
//
// @Summary      Export all patients
// @Tags         roster
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /patient/export [get]
func (h *RosterHandler) ExportPatients(c echo.Context) error {
	data, err := h.service.ExportPatients(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.ExportsTotal.WithLabelValues("patient").Inc()
	return serveWorkbook(c, "patients_export.xlsx", data)
}

// ImportPatients bulk-creates patients from an uploaded workbook.
//
// @Summary      Import patients from a spreadsheet
// @Tags         roster
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Workbook (.xlsx)"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /patient/import [post]
func (h *RosterHandler) ImportPatients(c echo.Context) error {
	data, err := uploadedWorkbook(c)
	if err != nil {
		return err
	}

	result, err := h.service.ImportPatients(c.Request().Context(), data)
	if err != nil {
		return err
	}

	metrics.ImportRowsTotal.WithLabelValues("patient", "imported").Add(float64(result.Imported))
	metrics.ImportRowsTotal.WithLabelValues("patient", "skipped").Add(float64(result.Skipped))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  fmt.Sprintf("%d patients imported successfully!", result.Imported),
		"imported": result.Imported,
		"skipped":  result.Skipped,
	})
}

// DoctorTemplate serves an empty workbook with the doctor column headers.
//
// @Summary      Download the doctor import template
// @Tags         roster
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /doctor/template [get]
func (h *RosterHandler) DoctorTemplate(c echo.Context) error {
	data, err := h.service.DoctorTemplate()
	if err != nil {
		return err
	}
	metrics.ExportsTotal.WithLabelValues("doctor").Inc()
	return serveWorkbook(c, "doctor_template.xlsx", data)
}

// ExportDoctors serves the full doctor roster as a workbook.
//
// @Summary      Export all doctors
// @Tags         roster
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /doctor/export [get]
func (h *RosterHandler) ExportDoctors(c echo.Context) error {
	data, err := h.service.ExportDoctors(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.ExportsTotal.WithLabelValues("doctor").Inc()
	return serveWorkbook(c, "doctors_export.xlsx", data)
}

// ImportDoctors bulk-creates doctor accounts and profiles from an
// uploaded workbook.
//
// @Summary      Import doctors from a spreadsheet
// @Tags         roster
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Workbook (.xlsx)"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /doctor/import [post]
func (h *RosterHandler) ImportDoctors(c echo.Context) error {
	data, err := uploadedWorkbook(c)
	if err != nil {
		return err
	}

	result, err := h.service.ImportDoctors(c.Request().Context(), data)
	if err != nil {
		return err
	}

	metrics.ImportRowsTotal.WithLabelValues("doctor", "imported").Add(float64(result.Imported))
	metrics.ImportRowsTotal.WithLabelValues("doctor", "skipped").Add(float64(result.Skipped))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  fmt.Sprintf("%d doctors imported successfully!", result.Imported),
		"imported": result.Imported,
		"skipped":  result.Skipped,
	})
}

// uploadedWorkbook reads the "file" part of a multipart upload and checks
// the extension before handing the bytes to the service.
func uploadedWorkbook(c echo.Context) ([]byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "missing file upload")
	}
	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".xlsx") {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "only .xlsx files are supported")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	return data, nil
}

func serveWorkbook(c echo.Context, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, xlsxContentType, data)
}
