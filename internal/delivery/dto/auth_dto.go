package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterPatientRequest registers a patient account with its profile.
type RegisterPatientRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=6"`
	FullName          string `json:"full_name" validate:"required,min=2"`
	PhoneNumber       string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	DateOfBirth       string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	EmergencyContact  string `json:"emergency_contact" validate:"omitempty,max=100"`
	InsuranceProvider string `json:"insurance_provider" validate:"omitempty,max=120"`
}

// RegisterDoctorRequest registers a doctor account with its profile.
type RegisterDoctorRequest struct {
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

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	FullName       string                  `json:"full_name"`
	Role           string                  `json:"role"`
	IsActive       bool                    `json:"is_active"`
	DoctorProfile  *DoctorProfileResponse  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}
