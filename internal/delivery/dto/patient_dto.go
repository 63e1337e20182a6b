package dto

import "time"

// Request DTOs

// UpdatePatientProfileRequest updates the caller's own patient profile.
type UpdatePatientProfileRequest struct {
	FullName          *string `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber       *string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	DateOfBirth       *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	EmergencyContact  *string `json:"emergency_contact" validate:"omitempty,max=100"`
	InsuranceProvider *string `json:"insurance_provider" validate:"omitempty,max=120"`
}

// Response DTOs

type PatientProfileResponse struct {
	UserID            string `json:"user_id"`
	FullName          string `json:"full_name,omitempty"`
	PhoneNumber       string `json:"phone_number,omitempty"`
	DateOfBirth       string `json:"date_of_birth,omitempty"`
	EmergencyContact  string `json:"emergency_contact,omitempty"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
}

// RosterEntryResponse is one row of a doctor's patient roster.
type RosterEntryResponse struct {
	PatientID   string     `json:"patient_id"`
	PatientName string     `json:"patient_name"`
	VisitCount  int        `json:"visit_count"`
	LastVisit   *time.Time `json:"last_visit,omitempty"`
	NextVisit   *time.Time `json:"next_visit,omitempty"`
}
