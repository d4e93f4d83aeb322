package ports

import (
	"context"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
)

// InvoiceRepository defines persistence operations for billing records.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	// List returns all invoices, or only one patient's when patientID is
	// non-empty.
	List(ctx context.Context, patientID string) ([]*domain.Invoice, error)
	DeleteByPatient(ctx context.Context, patientID string) error
	// SumAmounts totals every invoice amount for the revenue figure.
	SumAmounts(ctx context.Context) (float64, error)
}
