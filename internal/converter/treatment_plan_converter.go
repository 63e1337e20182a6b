package converter

import (
	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
)

// TreatmentPlanToResponse converts a TreatmentPlan entity to its DTO.
func TreatmentPlanToResponse(plan *entity.TreatmentPlan) *dto.TreatmentPlanResponse {
	if plan == nil {
		return nil
	}

	response := &dto.TreatmentPlanResponse{
		ID:                       plan.ID,
		PatientID:                plan.PatientID,
		PatientName:              plan.Patient.User.FullName,
		DoctorID:                 plan.DoctorID,
		DoctorName:               plan.Doctor.User.FullName,
		PlanName:                 plan.PlanName,
		Description:              plan.Description,
		Status:                   string(plan.Status),
		Medications:              stringList(plan.Medications),
		Therapies:                stringList(plan.Therapies),
		LifestyleRecommendations: stringList(plan.LifestyleRecommendations),
		FollowUpSchedule:         stringList(plan.FollowUpSchedule),
		EffectivenessScore:       plan.EffectivenessScore,
		AdherencePercentage:      plan.AdherencePercentage,
		CreatedAt:                plan.CreatedAt,
		UpdatedAt:                plan.UpdatedAt,
	}
	if !plan.StartDate.IsZero() {
		response.StartDate = plan.StartDate.Format("2006-01-02")
	}
	if plan.EndDate != nil {
		response.EndDate = plan.EndDate.Format("2006-01-02")
	}
	return response
}

// TreatmentPlansToResponses converts a slice of treatment plans.
func TreatmentPlansToResponses(plans []entity.TreatmentPlan) []dto.TreatmentPlanResponse {
	responses := make([]dto.TreatmentPlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, *TreatmentPlanToResponse(&plans[i]))
	}
	return responses
}

func stringList(a entity.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return []string(a)
}
