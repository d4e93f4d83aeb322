package domain

import (
	"errors"
	"time"
)

// AppointmentStatus is the lifecycle label of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// ValidAppointmentStatus reports whether s is a recognised status value.
// Booking always writes StatusScheduled; the other two are accepted as
// stored values but no endpoint transitions into them.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment joins a Doctor (required) with a Patient (optional).
type Appointment struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	DoctorID  string            `json:"doctor_id" bson:"doctor_id"`
	PatientID string            `json:"patient_id,omitempty" bson:"patient_id,omitempty"`
	DateTime  time.Time         `json:"date_time" bson:"date_time"`
	Reason    string            `json:"reason" bson:"reason"`
	Status    AppointmentStatus `json:"status" bson:"status"`
}
