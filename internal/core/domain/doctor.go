package domain

import "errors"

var ErrDoctorNotFound = errors.New("doctor not found")

const (
	DefaultSpecialization = "General"
	DefaultAvailability   = "Mon-Fri 9am-5pm"
)

// Doctor is a staff record with a mandatory one-to-one link to a User.
// Username and Email mirror the linked account so listings do not need a
// second lookup; the user collection stays authoritative.
type Doctor struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	UserID         string `json:"user_id" bson:"user_id"`
	Username       string `json:"username" bson:"username"`
	Email          string `json:"email" bson:"email"`
	Specialization string `json:"specialization" bson:"specialization"`
	Availability   string `json:"availability" bson:"availability"`
}
