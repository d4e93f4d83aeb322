package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/digitechhealth/clinic-api/internal/api/metrics"
	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

// BillingHandler handles HTTP requests for invoices.
type BillingHandler struct {
	service ports.BillingService
}

func NewBillingHandler(service ports.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

type invoiceRequest struct {
	PatientID   string  `json:"patient_id" validate:"required"`
	Description string  `json:"description" validate:"required,min=3,max=500"`
	Amount      float64 `json:"amount" validate:"required,gte=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=Pending Paid"`
}

type invoiceResponse struct {
	Message string          `json:"message,omitempty"`
	Invoice *domain.Invoice `json:"invoice,omitempty"`
}

// List returns invoices: staff see all, patients only their own.
//
// @Summary      List invoices
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Invoice
// @Failure      403  {object}  map[string]string
// @Router       /invoices [get]
func (h *BillingHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	invoices, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// Create issues a new invoice against a patient. Staff only.
//
// @Summary      Create an invoice
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      invoiceRequest  true  "Invoice details"
// @Success      201   {object}  invoiceResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /invoice/new [post]
func (h *BillingHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req invoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	inv, err := h.service.Create(c.Request().Context(), actor, ports.InvoiceInput{
		PatientID:   req.PatientID,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      domain.InvoiceStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.InvoicesCreatedTotal.WithLabelValues(string(inv.Status)).Inc()

	return c.JSON(http.StatusCreated, invoiceResponse{
		Message: "Invoice has been created!",
		Invoice: inv,
	})
}

// Get returns one invoice; patients may only view their own.
//
// @Summary      View an invoice
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  domain.Invoice
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /invoice/{id} [get]
func (h *BillingHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	inv, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inv)
}
