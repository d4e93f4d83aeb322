package ports

import "context"

// ImportResult reports how a bulk import went: rows created versus rows
// skipped because their natural key already existed.
type ImportResult struct {
	Imported int
	Skipped  int
}

// RosterService implements spreadsheet bulk import/export of patient and
// doctor records, plus the empty templates staff download to fill in.
type RosterService interface {
	PatientTemplate() ([]byte, error)
	ExportPatients(ctx context.Context) ([]byte, error)
	// ImportPatients parses an uploaded .xlsx, verifies the required
	// column set, and creates one patient per non-duplicate row.
	ImportPatients(ctx context.Context, data []byte) (*ImportResult, error)

	DoctorTemplate() ([]byte, error)
	ExportDoctors(ctx context.Context) ([]byte, error)
	// ImportDoctors creates a doctor-role User plus Doctor profile per
	// row, skipping rows whose username or email is already taken.
	ImportDoctors(ctx context.Context, data []byte) (*ImportResult, error)
}
