package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber       string    `gorm:"type:varchar(50);index" json:"phone_number,omitempty"`
	DateOfBirth       time.Time `gorm:"type:date" json:"date_of_birth"`
	EmergencyContact  string    `gorm:"type:varchar(100)" json:"emergency_contact,omitempty"`
	InsuranceProvider string    `gorm:"type:varchar(120)" json:"insurance_provider,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
