package handler

import (
	"encoding/json"
	"net/http"

	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/delivery/http/middleware"
	"github.com/toayushh/CareConnect-sub001/internal/usecase"
	"github.com/toayushh/CareConnect-sub001/pkg/response"
	"github.com/toayushh/CareConnect-sub001/pkg/validator"

	"github.com/google/uuid"
)

type FeedbackHandler struct {
	feedbackUsecase usecase.FeedbackUsecase
	validator       *validator.CustomValidator
}

func NewFeedbackHandler(feedbackUsecase usecase.FeedbackUsecase, validator *validator.CustomValidator) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUsecase: feedbackUsecase,
		validator:       validator,
	}
}

// Create stores a feedback submission; anonymous submissions are allowed
// @Summary Submit feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedbackRequest true "Feedback"
// @Success 201 {object} response.Response
// @Router /feedback [post]
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		userID = &id
	}

	feedback, err := h.feedbackUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to submit feedback")
		return
	}

	response.Success(w, http.StatusCreated, "Feedback submitted successfully", feedback)
}

// List returns the most recent feedback submissions
// @Summary List recent feedback
// @Tags Feedback
// @Produce json
// @Success 200 {object} response.Response
// @Router /feedback [get]
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.feedbackUsecase.ListRecent(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list feedback")
		return
	}

	response.Success(w, http.StatusOK, "Feedback retrieved successfully", feedbacks)
}

// Stats summarizes all recorded feedback
// @Summary Get feedback statistics
// @Tags Feedback
// @Produce json
// @Success 200 {object} response.Response
// @Router /feedback/stats [get]
func (h *FeedbackHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.feedbackUsecase.Stats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build feedback statistics")
		return
	}

	response.Success(w, http.StatusOK, "Feedback statistics retrieved successfully", stats)
}
