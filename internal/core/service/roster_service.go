package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

// SheetCodec abstracts the spreadsheet file format (xlsx). Encode writes a
// header row plus data rows; Decode returns the header and one map per row
// keyed by column name.
type SheetCodec interface {
	Encode(sheet string, columns []string, rows [][]string) ([]byte, error)
	Decode(data []byte) ([]string, []map[string]string, error)
}

// Spreadsheet column sets. Import requires every listed column to be
// present; export and templates emit exactly these, in this order.
var PatientColumns = []string{"Name", "Age", "Gender", "Contact", "Address", "Medical History"}
var DoctorColumns = []string{"Username", "Email", "Password", "Specialization", "Availability"}

// RosterService implements spreadsheet bulk import/export of patient and
// doctor records.
type RosterService struct {
	patients ports.PatientRepository
	doctors  ports.DoctorRepository
	users    ports.UserRepository
	codec    SheetCodec
	log      zerolog.Logger
}

func NewRosterService(
	patients ports.PatientRepository,
	doctors ports.DoctorRepository,
	users ports.UserRepository,
	codec SheetCodec,
	log zerolog.Logger,
) *RosterService {
	return &RosterService{
		patients: patients,
		doctors:  doctors,
		users:    users,
		codec:    codec,
		log:      log,
	}
}

func (s *RosterService) PatientTemplate() ([]byte, error) {
	return s.codec.Encode("Patients_Template", PatientColumns, nil)
}

func (s *RosterService) ExportPatients(ctx context.Context) ([]byte, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, []string{
			p.Name,
			strconv.Itoa(p.Age),
			p.Gender,
			p.Contact,
			p.Address,
			p.MedicalHistory,
		})
	}
	return s.codec.Encode("Patients", PatientColumns, rows)
}

// ImportPatients creates one patient per row, skipping rows whose
// name+contact natural key already exists. A missing required column fails
// before any write; a row-level failure aborts the remaining rows but
// keeps what was already inserted.
func (s *RosterService) ImportPatients(ctx context.Context, data []byte) (*ports.ImportResult, error) {
	rows, err := s.decodeRequired(data, PatientColumns)
	if err != nil {
		return nil, err
	}

	result := &ports.ImportResult{}
	for i, row := range rows {
		existing, err := s.patients.FindByNameContact(ctx, row["Name"], row["Contact"])
		if err != nil && !errors.Is(err, domain.ErrPatientNotFound) {
			return result, fmt.Errorf("%w: row %d: %v", domain.ErrImportFailed, i+1, err)
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		age := 0
		if row["Age"] != "" {
			age, err = strconv.Atoi(row["Age"])
			if err != nil {
				return result, fmt.Errorf("%w: row %d: invalid age %q", domain.ErrImportFailed, i+1, row["Age"])
			}
		}

		_, err = s.patients.Create(ctx, &domain.Patient{
			Name:           row["Name"],
			Age:            age,
			Gender:         row["Gender"],
			Contact:        row["Contact"],
			Address:        row["Address"],
			MedicalHistory: row["Medical History"],
			ImageFile:      domain.DefaultImageFile,
			CreatedAt:      time.Now().UTC(),
		})
		if err != nil {
			return result, fmt.Errorf("%w: row %d: %v", domain.ErrImportFailed, i+1, err)
		}
		result.Imported++
	}

	s.log.Info().Int("imported", result.Imported).Int("skipped", result.Skipped).Msg("patients imported")
	return result, nil
}

func (s *RosterService) DoctorTemplate() ([]byte, error) {
	return s.codec.Encode("Doctors_Template", DoctorColumns, nil)
}

// ExportDoctors dumps the roster without the Password column: hashes are
// never exported, so that column is left blank for re-import.
func (s *RosterService) ExportDoctors(ctx context.Context) ([]byte, error) {
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(doctors))
	for _, d := range doctors {
		rows = append(rows, []string{
			d.Username,
			d.Email,
			"",
			d.Specialization,
			d.Availability,
		})
	}
	return s.codec.Encode("Doctors", DoctorColumns, rows)
}

// ImportDoctors creates a doctor-role account plus profile per row,
// skipping rows whose username or email is already taken.
func (s *RosterService) ImportDoctors(ctx context.Context, data []byte) (*ports.ImportResult, error) {
	rows, err := s.decodeRequired(data, DoctorColumns)
	if err != nil {
		return nil, err
	}

	result := &ports.ImportResult{}
	for i, row := range rows {
		existing, err := s.users.FindByUsernameOrEmail(ctx, row["Username"], row["Email"])
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return result, fmt.Errorf("%w: row %d: %v", domain.ErrImportFailed, i+1, err)
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(row["Password"]), bcrypt.DefaultCost)
		if err != nil {
			return result, fmt.Errorf("%w: row %d: %v", domain.ErrImportFailed, i+1, err)
		}

		now := time.Now().UTC()
		user, err := s.users.Create(ctx, &domain.User{
			Username:     row["Username"],
			Email:        row["Email"],
			PasswordHash: string(hash),
			Role:         domain.RoleDoctor,
			ImageFile:    domain.DefaultImageFile,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return result, fmt.Errorf("%w: row %d: %v", domain.ErrImportFailed, i+1, err)
		}

		availability := row["Availability"]
		if availability == "" {
			availability = domain.DefaultAvailability
		}

		_, err = s.doctors.Create(ctx, &domain.Doctor{
			UserID:         user.ID,
			Username:       user.Username,
			Email:          user.Email,
			Specialization: row["Specialization"],
			Availability:   availability,
		})
		if err != nil {
			return result, fmt.Errorf("%w: row %d: %v", domain.ErrImportFailed, i+1, err)
		}
		result.Imported++
	}

	s.log.Info().Int("imported", result.Imported).Int("skipped", result.Skipped).Msg("doctors imported")
	return result, nil
}

// decodeRequired parses the sheet and verifies the full required column
// set before any database write happens.
func (s *RosterService) decodeRequired(data []byte, required []string) ([]map[string]string, error) {
	columns, rows, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetFormat, err)
	}

	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}
	for _, c := range required {
		if !present[c] {
			return nil, domain.ErrSheetFormat
		}
	}
	return rows, nil
}
