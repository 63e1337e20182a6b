package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTreatmentPlanRequest struct {
	PatientID                string   `json:"patient_id" validate:"required,uuid"`
	PlanName                 string   `json:"plan_name" validate:"required,min=2,max=255"`
	Description              string   `json:"description" validate:"omitempty"`
	StartDate                string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate                  string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Medications              []string `json:"medications" validate:"omitempty,dive,max=255"`
	Therapies                []string `json:"therapies" validate:"omitempty,dive,max=255"`
	LifestyleRecommendations []string `json:"lifestyle_recommendations" validate:"omitempty,dive,max=255"`
	FollowUpSchedule         []string `json:"follow_up_schedule" validate:"omitempty,dive,max=255"`
}

// UpdateTreatmentPlanRequest applies a partial update; nil fields keep the
// stored value.
type UpdateTreatmentPlanRequest struct {
	PlanName                 *string   `json:"plan_name" validate:"omitempty,min=2,max=255"`
	Description              *string   `json:"description" validate:"omitempty"`
	StartDate                *string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate                  *string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Medications              *[]string `json:"medications" validate:"omitempty,dive,max=255"`
	Therapies                *[]string `json:"therapies" validate:"omitempty,dive,max=255"`
	LifestyleRecommendations *[]string `json:"lifestyle_recommendations" validate:"omitempty,dive,max=255"`
	FollowUpSchedule         *[]string `json:"follow_up_schedule" validate:"omitempty,dive,max=255"`
	EffectivenessScore       *float64  `json:"effectiveness_score" validate:"omitempty,min=0,max=10"`
	AdherencePercentage      *float64  `json:"adherence_percentage" validate:"omitempty,min=0,max=100"`
}

type UpdateTreatmentPlanStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active completed discontinued"`
}

// Response DTOs

type TreatmentPlanResponse struct {
	ID                       int        `json:"id"`
	PatientID                uuid.UUID  `json:"patient_id"`
	PatientName              string     `json:"patient_name,omitempty"`
	DoctorID                 uuid.UUID  `json:"doctor_id"`
	DoctorName               string     `json:"doctor_name,omitempty"`
	PlanName                 string     `json:"plan_name"`
	Description              string     `json:"description,omitempty"`
	Status                   string     `json:"status"`
	StartDate                string     `json:"start_date"`
	EndDate                  string     `json:"end_date,omitempty"`
	Medications              []string   `json:"medications"`
	Therapies                []string   `json:"therapies"`
	LifestyleRecommendations []string   `json:"lifestyle_recommendations"`
	FollowUpSchedule         []string   `json:"follow_up_schedule"`
	EffectivenessScore       *float64   `json:"effectiveness_score,omitempty"`
	AdherencePercentage      *float64   `json:"adherence_percentage,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}
