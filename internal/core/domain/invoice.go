package domain

import (
	"errors"
	"time"
)

// InvoiceStatus is a manually set billing label; there is no payment
// integration behind it.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "Pending"
	InvoicePaid    InvoiceStatus = "Paid"
)

var ErrInvoiceNotFound = errors.New("invoice not found")
var ErrInvalidInvoice = errors.New("invalid invoice")

// ValidInvoiceStatus reports whether s is Pending or Paid.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	return s == InvoicePending || s == InvoicePaid
}

// Invoice is a billing record against a patient. Invoices are created and
// viewed only; nothing mutates or deletes them except a patient cascade.
type Invoice struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	PatientID   string        `json:"patient_id" bson:"patient_id"`
	Amount      float64       `json:"amount" bson:"amount"`
	Description string        `json:"description" bson:"description"`
	Status      InvoiceStatus `json:"status" bson:"status"`
	DateIssued  time.Time     `json:"date_issued" bson:"date_issued"`
}
