package converter

import (
	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to its DTO.
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	response := &dto.AuditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		Metadata:  map[string]any(log.Metadata),
		CreatedAt: log.CreatedAt,
	}
	if log.UserID != nil {
		response.UserID = log.UserID.String()
	}
	if log.User != nil {
		response.UserEmail = log.User.Email
	}
	return response
}

// AuditLogsToResponses converts a slice of audit logs.
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *AuditLogToResponse(&logs[i]))
	}
	return responses
}
