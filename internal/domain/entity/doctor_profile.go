package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data shown in the portal
// directory. WeeklySchedule is an opaque serialized string maintained by the
// schedule editor UI and round-tripped whole; the server never interprets it.
type DoctorProfile struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialty       string    `gorm:"type:varchar(120);not null;index" json:"specialty"`
	Hospital        string    `gorm:"type:varchar(255)" json:"hospital,omitempty"`
	Languages       string    `gorm:"type:varchar(255)" json:"languages,omitempty"` // comma-separated
	Rating          float64   `gorm:"type:numeric(3,2);default:0" json:"rating"`
	Bio             string    `gorm:"type:text" json:"bio,omitempty"`
	ConsultationFee int       `gorm:"default:0" json:"consultation_fee"`
	Availability    string    `gorm:"type:varchar(50)" json:"availability,omitempty"` // today/this-week/next-week
	WeeklySchedule  string    `gorm:"type:text" json:"weekly_schedule,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
