package converter

import (
	"strings"

	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to its DTO.
// FullName is filled from the preloaded User when present.
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		UserID:          profile.UserID,
		FullName:        profile.User.FullName,
		Specialty:       profile.Specialty,
		Hospital:        profile.Hospital,
		Languages:       SplitLanguages(profile.Languages),
		Rating:          profile.Rating,
		Bio:             profile.Bio,
		ConsultationFee: profile.ConsultationFee,
		Availability:    profile.Availability,
		WeeklySchedule:  profile.WeeklySchedule,
	}
}

// DoctorProfilesToResponses converts a slice of doctor profiles.
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorProfileResponse {
	responses := make([]dto.DoctorProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *DoctorProfileToResponse(&profiles[i]))
	}
	return responses
}

// SplitLanguages turns the stored comma-separated list into a trimmed slice.
func SplitLanguages(languages string) []string {
	if languages == "" {
		return []string{}
	}
	parts := strings.Split(languages, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
