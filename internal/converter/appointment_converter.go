package converter

import (
	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO.
// Participant names come from the preloaded profile relations.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.Patient.User.FullName,
		DoctorID:        appointment.DoctorID,
		DoctorName:      appointment.Doctor.User.FullName,
		DoctorSpecialty: appointment.Doctor.Specialty,
		StartTime:       appointment.StartTime,
		EndTime:         appointment.EndTime,
		Status:          string(appointment.Status),
		AppointmentType: appointment.AppointmentType,
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of appointments.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
