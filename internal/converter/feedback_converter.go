package converter

import (
	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
)

// FeedbackToResponse converts a Feedback entity to its DTO.
func FeedbackToResponse(feedback *entity.Feedback) *dto.FeedbackResponse {
	if feedback == nil {
		return nil
	}

	response := &dto.FeedbackResponse{
		ID:        feedback.ID,
		Source:    feedback.Source,
		Category:  feedback.Category,
		Message:   feedback.Message,
		Rating:    feedback.Rating,
		Metadata:  map[string]any(feedback.Metadata),
		CreatedAt: feedback.CreatedAt,
	}
	if feedback.UserID != nil {
		response.UserID = feedback.UserID.String()
	}
	return response
}

// FeedbacksToResponses converts a slice of feedback entries.
func FeedbacksToResponses(feedbacks []entity.Feedback) []dto.FeedbackResponse {
	responses := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		responses = append(responses, *FeedbackToResponse(&feedbacks[i]))
	}
	return responses
}
