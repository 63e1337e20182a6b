package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment type constants
const (
	AppointmentTypeInPerson = "in-person"
	AppointmentTypeVideo    = "video"
	AppointmentTypePhone    = "phone"
)

// ValidAppointmentStatus reports whether s is a known status value.
func ValidAppointmentStatus(s string) bool {
	switch AppointmentStatus(s) {
	case AppointmentStatusScheduled, AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents a booked consultation between a patient and a doctor
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	StartTime       time.Time         `gorm:"not null;index" json:"start_time"`
	EndTime         time.Time         `gorm:"not null" json:"end_time"`
	Status          AppointmentStatus `gorm:"type:varchar(50);not null;default:'scheduled';index" json:"status"`
	AppointmentType string            `gorm:"type:varchar(20)" json:"appointment_type,omitempty"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsUpcoming reports whether the appointment is still scheduled in the future.
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return a.StartTime.After(now) && a.Status == AppointmentStatusScheduled
}

// Cancel changes the appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// Reschedule moves the appointment and resets it to scheduled.
func (a *Appointment) Reschedule(start, end time.Time) {
	a.StartTime = start
	a.EndTime = end
	a.Status = AppointmentStatusScheduled
}

// Involves reports whether the given profile is a participant.
func (a *Appointment) Involves(profileID uuid.UUID) bool {
	return a.PatientID == profileID || a.DoctorID == profileID
}
