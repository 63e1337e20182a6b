package handler

import (
	"encoding/json"
	"net/http"

	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/delivery/http/middleware"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
	"github.com/toayushh/CareConnect-sub001/internal/usecase"
	"github.com/toayushh/CareConnect-sub001/pkg/response"
	"github.com/toayushh/CareConnect-sub001/pkg/validator"

	"github.com/google/uuid"
)

type ProgressHandler struct {
	progressUsecase usecase.ProgressUsecase
	validator       *validator.CustomValidator
}

func NewProgressHandler(progressUsecase usecase.ProgressUsecase, validator *validator.CustomValidator) *ProgressHandler {
	return &ProgressHandler{
		progressUsecase: progressUsecase,
		validator:       validator,
	}
}

// AddSymptom records a symptom entry
// @Summary Log a symptom
// @Tags Progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSymptomEntryRequest true "Symptom Entry"
// @Success 201 {object} response.Response
// @Router /progress/symptoms [post]
func (h *ProgressHandler) AddSymptom(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateSymptomEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.progressUsecase.AddSymptom(r.Context(), patientID, &req)
	if err != nil {
		h.writeProgressError(w, err, "Failed to log symptom")
		return
	}

	response.Success(w, http.StatusCreated, "Symptom logged successfully", entry)
}

// ListSymptoms lists symptom entries for the timeframe
// @Summary List symptoms
// @Tags Progress
// @Security BearerAuth
// @Produce json
// @Param timeframe query string false "week, month or quarter"
// @Param patient_id query string false "Patient ID (care staff)"
// @Success 200 {object} response.Response
// @Router /progress/symptoms [get]
func (h *ProgressHandler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.targetPatient(w, r)
	if !ok {
		return
	}

	entries, err := h.progressUsecase.ListSymptoms(r.Context(), patientID, r.URL.Query().Get("timeframe"))
	if err != nil {
		h.writeProgressError(w, err, "Failed to list symptoms")
		return
	}

	response.Success(w, http.StatusOK, "Symptoms retrieved successfully", entries)
}

// AddMood records a mood entry
// @Summary Log a mood
// @Tags Progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMoodEntryRequest true "Mood Entry"
// @Success 201 {object} response.Response
// @Router /progress/moods [post]
func (h *ProgressHandler) AddMood(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMoodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.progressUsecase.AddMood(r.Context(), patientID, &req)
	if err != nil {
		h.writeProgressError(w, err, "Failed to log mood")
		return
	}

	response.Success(w, http.StatusCreated, "Mood logged successfully", entry)
}

// ListMoods lists mood entries for the timeframe
// @Summary List moods
// @Tags Progress
// @Security BearerAuth
// @Produce json
// @Param timeframe query string false "week, month or quarter"
// @Param patient_id query string false "Patient ID (care staff)"
// @Success 200 {object} response.Response
// @Router /progress/moods [get]
func (h *ProgressHandler) ListMoods(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.targetPatient(w, r)
	if !ok {
		return
	}

	entries, err := h.progressUsecase.ListMoods(r.Context(), patientID, r.URL.Query().Get("timeframe"))
	if err != nil {
		h.writeProgressError(w, err, "Failed to list moods")
		return
	}

	response.Success(w, http.StatusOK, "Moods retrieved successfully", entries)
}

// AddActivity records an activity entry
// @Summary Log an activity
// @Tags Progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateActivityEntryRequest true "Activity Entry"
// @Success 201 {object} response.Response
// @Router /progress/activities [post]
func (h *ProgressHandler) AddActivity(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateActivityEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.progressUsecase.AddActivity(r.Context(), patientID, &req)
	if err != nil {
		h.writeProgressError(w, err, "Failed to log activity")
		return
	}

	response.Success(w, http.StatusCreated, "Activity logged successfully", entry)
}

// ListActivities lists activity entries for the timeframe
// @Summary List activities
// @Tags Progress
// @Security BearerAuth
// @Produce json
// @Param timeframe query string false "week, month or quarter"
// @Param patient_id query string false "Patient ID (care staff)"
// @Success 200 {object} response.Response
// @Router /progress/activities [get]
func (h *ProgressHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.targetPatient(w, r)
	if !ok {
		return
	}

	entries, err := h.progressUsecase.ListActivities(r.Context(), patientID, r.URL.Query().Get("timeframe"))
	if err != nil {
		h.writeProgressError(w, err, "Failed to list activities")
		return
	}

	response.Success(w, http.StatusOK, "Activities retrieved successfully", entries)
}

// Summary aggregates tracked history for the timeframe
// @Summary Get progress summary
// @Tags Progress
// @Security BearerAuth
// @Produce json
// @Param timeframe query string false "week, month or quarter"
// @Param patient_id query string false "Patient ID (care staff)"
// @Success 200 {object} response.Response
// @Router /progress/summary [get]
func (h *ProgressHandler) Summary(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.targetPatient(w, r)
	if !ok {
		return
	}

	summary, err := h.progressUsecase.Summary(r.Context(), patientID, r.URL.Query().Get("timeframe"))
	if err != nil {
		h.writeProgressError(w, err, "Failed to build progress summary")
		return
	}

	response.Success(w, http.StatusOK, "Progress summary retrieved successfully", summary)
}

// targetPatient resolves whose history is being read. Patients read their
// own; doctors and admins name a patient with the patient_id query param.
func (h *ProgressHandler) targetPatient(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, roleID, ok := actor(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return uuid.Nil, false
	}

	if roleID == entity.RoleIDPatient {
		return userID, true
	}

	patientID, err := uuid.Parse(r.URL.Query().Get("patient_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "patient_id is required", nil)
		return uuid.Nil, false
	}
	return patientID, true
}

func (h *ProgressHandler) writeProgressError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Patient not found")
	case usecase.ErrInvalidTimeframe, usecase.ErrInvalidDateFormat:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
