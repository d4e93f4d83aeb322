package domain

import (
	"errors"
	"time"
)

var ErrPatientNotFound = errors.New("patient not found")
var ErrDuplicatePatient = errors.New("patient already exists")

// Patient is a clinical record. A patient may or may not hold a login
// account; UserID is empty for records created by staff or bulk import.
type Patient struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	UserID         string    `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	Age            int       `json:"age" bson:"age"`
	Gender         string    `json:"gender" bson:"gender"`
	Contact        string    `json:"contact" bson:"contact"`
	Address        string    `json:"address" bson:"address"`
	MedicalHistory string    `json:"medical_history" bson:"medical_history"`
	ImageFile      string    `json:"image_file" bson:"image_file"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
