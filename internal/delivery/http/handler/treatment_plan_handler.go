package handler

import (
	"encoding/json"
	"net/http"

	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/delivery/http/middleware"
	"github.com/toayushh/CareConnect-sub001/internal/usecase"
	"github.com/toayushh/CareConnect-sub001/pkg/response"
	"github.com/toayushh/CareConnect-sub001/pkg/validator"
)

type TreatmentPlanHandler struct {
	treatmentPlanUsecase usecase.TreatmentPlanUsecase
	validator            *validator.CustomValidator
}

func NewTreatmentPlanHandler(treatmentPlanUsecase usecase.TreatmentPlanUsecase, validator *validator.CustomValidator) *TreatmentPlanHandler {
	return &TreatmentPlanHandler{
		treatmentPlanUsecase: treatmentPlanUsecase,
		validator:            validator,
	}
}

// List returns the caller's treatment plans
// @Summary List treatment plans
// @Tags TreatmentPlans
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /treatment-plans [get]
func (h *TreatmentPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := actor(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	plans, err := h.treatmentPlanUsecase.List(r.Context(), userID, roleID)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to list treatment plans")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment plans retrieved successfully", plans)
}

// Create prescribes a new treatment plan, doctors only
// @Summary Create a treatment plan
// @Tags TreatmentPlans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTreatmentPlanRequest true "Create Plan Request"
// @Success 201 {object} response.Response
// @Router /treatment-plans [post]
func (h *TreatmentPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateTreatmentPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.treatmentPlanUsecase.Create(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create treatment plan")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Treatment plan created successfully", plan)
}

// Get returns one treatment plan
// @Summary Get treatment plan detail
// @Tags TreatmentPlans
// @Security BearerAuth
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} response.Response
// @Router /treatment-plans/{id} [get]
func (h *TreatmentPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := actor(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid plan ID", nil)
		return
	}

	plan, err := h.treatmentPlanUsecase.GetByID(r.Context(), userID, roleID, id)
	if err != nil {
		h.writePlanError(w, err, "Failed to get treatment plan")
		return
	}

	response.Success(w, http.StatusOK, "Treatment plan retrieved successfully", plan)
}

// Update edits a treatment plan, owning doctor only
// @Summary Update a treatment plan
// @Tags TreatmentPlans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param request body dto.UpdateTreatmentPlanRequest true "Update Plan Request"
// @Success 200 {object} response.Response
// @Router /treatment-plans/{id} [put]
func (h *TreatmentPlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid plan ID", nil)
		return
	}

	var req dto.UpdateTreatmentPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.treatmentPlanUsecase.Update(r.Context(), doctorID, id, &req)
	if err != nil {
		h.writePlanError(w, err, "Failed to update treatment plan")
		return
	}

	response.Success(w, http.StatusOK, "Treatment plan updated successfully", plan)
}

// UpdateStatus transitions the plan lifecycle status
// @Summary Update treatment plan status
// @Tags TreatmentPlans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param request body dto.UpdateTreatmentPlanStatusRequest true "Update Status Request"
// @Success 200 {object} response.Response
// @Router /treatment-plans/{id}/status [patch]
func (h *TreatmentPlanHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid plan ID", nil)
		return
	}

	var req dto.UpdateTreatmentPlanStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.treatmentPlanUsecase.UpdateStatus(r.Context(), doctorID, id, &req)
	if err != nil {
		h.writePlanError(w, err, "Failed to update treatment plan status")
		return
	}

	response.Success(w, http.StatusOK, "Treatment plan status updated successfully", plan)
}

// Delete removes a treatment plan, owning doctor only
// @Summary Delete a treatment plan
// @Tags TreatmentPlans
// @Security BearerAuth
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} response.Response
// @Router /treatment-plans/{id} [delete]
func (h *TreatmentPlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid plan ID", nil)
		return
	}

	if err := h.treatmentPlanUsecase.Delete(r.Context(), doctorID, id); err != nil {
		h.writePlanError(w, err, "Failed to delete treatment plan")
		return
	}

	response.Success(w, http.StatusOK, "Treatment plan deleted successfully", nil)
}

func (h *TreatmentPlanHandler) writePlanError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrTreatmentPlanNotFound:
		response.NotFound(w, "Treatment plan not found")
	case usecase.ErrForbidden:
		response.Forbidden(w, "")
	case usecase.ErrInvalidDateFormat:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
