package converter

import (
	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
	"github.com/toayushh/CareConnect-sub001/internal/viewmodel"
)

// PatientProfileToResponse converts a PatientProfile entity to its DTO.
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.PatientProfileResponse{
		UserID:            profile.UserID.String(),
		FullName:          profile.User.FullName,
		PhoneNumber:       profile.PhoneNumber,
		EmergencyContact:  profile.EmergencyContact,
		InsuranceProvider: profile.InsuranceProvider,
	}
	if !profile.DateOfBirth.IsZero() {
		response.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}
	return response
}

// RosterToResponses converts roster entries to DTOs. Zero times become nil so
// patients with no visits yet render cleanly.
func RosterToResponses(roster []viewmodel.RosterEntry) []dto.RosterEntryResponse {
	responses := make([]dto.RosterEntryResponse, 0, len(roster))
	for _, entry := range roster {
		response := dto.RosterEntryResponse{
			PatientID:   entry.PatientID,
			PatientName: entry.PatientName,
			VisitCount:  entry.VisitCount,
		}
		if !entry.LastVisit.IsZero() {
			last := entry.LastVisit
			response.LastVisit = &last
		}
		if !entry.NextVisit.IsZero() {
			next := entry.NextVisit
			response.NextVisit = &next
		}
		responses = append(responses, response)
	}
	return responses
}
