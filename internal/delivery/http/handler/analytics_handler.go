package handler

import (
	"net/http"
	"strconv"

	"github.com/toayushh/CareConnect-sub001/internal/delivery/http/middleware"
	"github.com/toayushh/CareConnect-sub001/internal/usecase"
	"github.com/toayushh/CareConnect-sub001/pkg/response"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

// Dashboard returns the patient dashboard card
// @Summary Get patient dashboard
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.analyticsUsecase.Dashboard(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to build dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// Trends returns monthly trend series for the patient
// @Summary Get health trends
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param months query int false "Window length in months, default 6"
// @Success 200 {object} response.Response
// @Router /analytics/trends [get]
func (h *AnalyticsHandler) Trends(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	months, _ := strconv.Atoi(r.URL.Query().Get("months"))

	trends, err := h.analyticsUsecase.Trends(r.Context(), patientID, months)
	if err != nil {
		response.InternalServerError(w, "Failed to build trends")
		return
	}

	response.Success(w, http.StatusOK, "Trends retrieved successfully", trends)
}
