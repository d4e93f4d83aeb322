package domain

// Actor identifies the authenticated requester for authorization decisions.
// Every visibility and mutation rule in the system is expressed as a
// predicate over an Actor and the record being touched, so routes share one
// rule set instead of re-deriving it per endpoint.
type Actor struct {
	UserID string
	Role   string
}

// IsStaff reports whether the actor runs the front desk: admin or
// receptionist. Staff see and manage all records.
func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleReceptionist
}

// IsClinical reports whether the actor is admin, doctor, or receptionist.
// This is the gate on patient management, imports, and the dashboard.
func (a Actor) IsClinical() bool {
	return a.IsStaff() || a.Role == RoleDoctor
}

// CanViewPatient allows clinical roles unconditionally and a patient-role
// actor only for their own linked record.
func (a Actor) CanViewPatient(p *Patient) bool {
	if a.IsClinical() {
		return true
	}
	return p.UserID != "" && p.UserID == a.UserID
}

// CanViewInvoice applies the same ownership rule to billing records, with
// patientUserID being the UserID of the invoiced patient (may be empty).
func (a Actor) CanViewInvoice(patientUserID string) bool {
	if a.IsClinical() {
		return true
	}
	return patientUserID != "" && patientUserID == a.UserID
}

// CanTouchAppointment allows staff, the appointment's doctor, or the
// appointment's patient to reschedule or delete it. doctorUserID and
// patientUserID are the account IDs behind the referenced profiles.
func (a Actor) CanTouchAppointment(doctorUserID, patientUserID string) bool {
	if a.IsStaff() {
		return true
	}
	if doctorUserID != "" && doctorUserID == a.UserID {
		return true
	}
	return patientUserID != "" && patientUserID == a.UserID
}
