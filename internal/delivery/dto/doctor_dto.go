package dto

import "github.com/google/uuid"

// Request DTOs

// CreateDoctorRequest is the admin endpoint payload for provisioning a doctor.
type CreateDoctorRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	FullName        string `json:"full_name" validate:"required,min=2"`
	Specialty       string `json:"specialty" validate:"required,max=120"`
	Hospital        string `json:"hospital" validate:"omitempty,max=255"`
	Languages       string `json:"languages" validate:"omitempty,max=255"`
	Bio             string `json:"bio" validate:"omitempty"`
	ConsultationFee int    `json:"consultation_fee" validate:"omitempty,min=0"`
	Availability    string `json:"availability" validate:"omitempty,oneof=today this-week next-week"`
}

// UpdateDoctorProfileRequest updates the caller's own doctor profile. Pointer
// fields distinguish "leave unchanged" from "set to empty".
type UpdateDoctorProfileRequest struct {
	FullName        *string `json:"full_name" validate:"omitempty,min=2"`
	Specialty       *string `json:"specialty" validate:"omitempty,max=120"`
	Hospital        *string `json:"hospital" validate:"omitempty,max=255"`
	Languages       *string `json:"languages" validate:"omitempty,max=255"`
	Bio             *string `json:"bio" validate:"omitempty"`
	ConsultationFee *int    `json:"consultation_fee" validate:"omitempty,min=0"`
	Availability    *string `json:"availability" validate:"omitempty,oneof=today this-week next-week"`
	WeeklySchedule  *string `json:"weekly_schedule" validate:"omitempty"`
}

// DoctorDirectoryQuery carries the directory filters from query parameters.
type DoctorDirectoryQuery struct {
	Specialty    string `json:"specialty"`
	Language     string `json:"language"`
	Availability string `json:"availability"`
	Limit        int    `json:"limit"`
}

// Response DTOs

type DoctorProfileResponse struct {
	UserID          uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name,omitempty"`
	Specialty       string    `json:"specialty"`
	Hospital        string    `json:"hospital,omitempty"`
	Languages       []string  `json:"languages"`
	Rating          float64   `json:"rating"`
	Bio             string    `json:"bio,omitempty"`
	ConsultationFee int       `json:"consultation_fee"`
	Availability    string    `json:"availability,omitempty"`
	WeeklySchedule  string    `json:"weekly_schedule,omitempty"`
}
