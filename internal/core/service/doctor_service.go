package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

// DoctorService manages doctor records together with their linked accounts:
// adding a doctor creates both, deleting one removes both.
type DoctorService struct {
	doctors ports.DoctorRepository
	users   ports.UserRepository
	log     zerolog.Logger
}

func NewDoctorService(doctors ports.DoctorRepository, users ports.UserRepository, log zerolog.Logger) *DoctorService {
	return &DoctorService{doctors: doctors, users: users, log: log}
}

func (s *DoctorService) List(ctx context.Context) ([]*domain.Doctor, error) {
	return s.doctors.List(ctx)
}

// Profile returns the actor's own doctor record. A doctor account without
// one (should not happen when registration ran normally) gets a default
// profile created on the spot.
func (s *DoctorService) Profile(ctx context.Context, actor domain.Actor) (*domain.Doctor, error) {
	if actor.Role != domain.RoleDoctor {
		return nil, domain.ErrForbidden
	}

	d, err := s.doctors.FindByUserID(ctx, actor.UserID)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, domain.ErrDoctorNotFound) {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.doctors.Create(ctx, &domain.Doctor{
		UserID:         user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Specialization: domain.DefaultSpecialization,
		Availability:   domain.DefaultAvailability,
	})
}

func (s *DoctorService) UpdateProfile(ctx context.Context, actor domain.Actor, in ports.ProfileInput) (*domain.Doctor, error) {
	d, err := s.Profile(ctx, actor)
	if err != nil {
		return nil, err
	}

	d.Specialization = in.Specialization
	d.Availability = in.Availability
	if err := s.doctors.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Add creates a doctor-role account plus its profile. Admin only.
func (s *DoctorService) Add(ctx context.Context, actor domain.Actor, in ports.AddDoctorInput) (*domain.Doctor, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if existing, err := s.users.FindByUsernameOrEmail(ctx, in.Username, in.Email); err == nil && existing != nil {
		return nil, domain.ErrUserExists
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleDoctor,
		ImageFile:    domain.DefaultImageFile,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	availability := in.Availability
	if availability == "" {
		availability = domain.DefaultAvailability
	}

	created, err := s.doctors.Create(ctx, &domain.Doctor{
		UserID:         user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Specialization: in.Specialization,
		Availability:   availability,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Str("specialization", created.Specialization).Msg("doctor added")
	return created, nil
}

// Update edits the doctor and its linked account's username/email. Admin only.
func (s *DoctorService) Update(ctx context.Context, actor domain.Actor, id string, in ports.UpdateDoctorInput) (*domain.Doctor, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	d, err := s.doctors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, d.UserID)
	if err != nil {
		return nil, err
	}

	if other, err := s.users.FindByUsernameOrEmail(ctx, in.Username, in.Email); err == nil && other != nil && other.ID != user.ID {
		return nil, domain.ErrUserExists
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user.Username = in.Username
	user.Email = in.Email
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	d.Username = in.Username
	d.Email = in.Email
	d.Specialization = in.Specialization
	d.Availability = in.Availability
	if err := s.doctors.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete removes the doctor and its linked account. Admin only.
func (s *DoctorService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	d, err := s.doctors.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// Account first: a failure here must not leave a live doctor login
	// behind a deleted profile.
	if d.UserID != "" {
		if err := s.users.Delete(ctx, d.UserID); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
	}
	if err := s.doctors.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("doctor_id", id).Str("user_id", d.UserID).Msg("doctor deleted")
	return nil
}
