package ports

import (
	"context"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
)

// AddDoctorInput carries an admin doctor-creation submission; it creates
// both the account and the profile.
type AddDoctorInput struct {
	Username       string
	Email          string
	Password       string
	Specialization string
	Availability   string
}

// UpdateDoctorInput carries an admin edit of a doctor and its linked account.
type UpdateDoctorInput struct {
	Username       string
	Email          string
	Specialization string
	Availability   string
}

// ProfileInput carries a doctor's self-edit of their own profile.
type ProfileInput struct {
	Specialization string
	Availability   string
}

// DoctorService implements doctor record management and the linked-User
// lifecycle.
type DoctorService interface {
	List(ctx context.Context) ([]*domain.Doctor, error)
	// Profile returns the actor's own doctor record, creating a default
	// one when missing.
	Profile(ctx context.Context, actor domain.Actor) (*domain.Doctor, error)
	UpdateProfile(ctx context.Context, actor domain.Actor, in ProfileInput) (*domain.Doctor, error)
	Add(ctx context.Context, actor domain.Actor, in AddDoctorInput) (*domain.Doctor, error)
	Update(ctx context.Context, actor domain.Actor, id string, in UpdateDoctorInput) (*domain.Doctor, error)
	// Delete removes the doctor and its linked account.
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
