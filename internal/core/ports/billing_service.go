package ports

import (
	"context"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
)

// InvoiceInput carries an invoice-creation submission. Status defaults to
// Pending when empty; Paid may be set at creation time.
type InvoiceInput struct {
	PatientID   string
	Description string
	Amount      float64
	Status      domain.InvoiceStatus
}

// BillingService implements invoice creation and role-scoped viewing.
type BillingService interface {
	List(ctx context.Context, actor domain.Actor) ([]*domain.Invoice, error)
	Create(ctx context.Context, actor domain.Actor, in InvoiceInput) (*domain.Invoice, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Invoice, error)
}
