package entity

import (
	"time"

	"github.com/google/uuid"
)

// TreatmentPlanStatus represents the lifecycle status of a treatment plan
type TreatmentPlanStatus string

const (
	TreatmentPlanStatusActive       TreatmentPlanStatus = "active"
	TreatmentPlanStatusCompleted    TreatmentPlanStatus = "completed"
	TreatmentPlanStatusDiscontinued TreatmentPlanStatus = "discontinued"
)

// ValidTreatmentPlanStatus reports whether s is a known status value.
func ValidTreatmentPlanStatus(s string) bool {
	switch TreatmentPlanStatus(s) {
	case TreatmentPlanStatusActive, TreatmentPlanStatusCompleted, TreatmentPlanStatusDiscontinued:
		return true
	}
	return false
}

// TreatmentPlan is a care plan a doctor prescribes for a patient. The list
// fields are free-text arrays maintained by the plan editor.
type TreatmentPlan struct {
	ID                       int                 `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID                uuid.UUID           `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID                 uuid.UUID           `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PlanName                 string              `gorm:"type:varchar(255);not null" json:"plan_name"`
	Description              string              `gorm:"type:text" json:"description,omitempty"`
	Status                   TreatmentPlanStatus `gorm:"type:varchar(50);not null;default:'active';index" json:"status"`
	StartDate                time.Time           `gorm:"type:date" json:"start_date"`
	EndDate                  *time.Time          `gorm:"type:date" json:"end_date,omitempty"`
	Medications              StringArray         `gorm:"type:jsonb" json:"medications"`
	Therapies                StringArray         `gorm:"type:jsonb" json:"therapies"`
	LifestyleRecommendations StringArray         `gorm:"type:jsonb" json:"lifestyle_recommendations"`
	FollowUpSchedule         StringArray         `gorm:"type:jsonb" json:"follow_up_schedule"`
	EffectivenessScore       *float64            `gorm:"type:numeric(4,1)" json:"effectiveness_score,omitempty"`
	AdherencePercentage      *float64            `gorm:"type:numeric(5,2)" json:"adherence_percentage,omitempty"`
	CreatedAt                time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (TreatmentPlan) TableName() string {
	return "treatment_plans"
}

// IsActive checks if the plan is active
func (p *TreatmentPlan) IsActive() bool {
	return p.Status == TreatmentPlanStatusActive
}
