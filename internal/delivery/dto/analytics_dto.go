package dto

import "time"

// Response DTOs

// HealthScoresResponse mirrors the dashboard score card.
type HealthScoresResponse struct {
	Overall   float64 `json:"overall_score"`
	Physical  float64 `json:"physical_score"`
	Mental    float64 `json:"mental_score"`
	Lifestyle float64 `json:"lifestyle_score"`
}

// ActivityFeedItem is one row of the dashboard recent-activity feed.
type ActivityFeedItem struct {
	Kind        string    `json:"kind"` // symptom, mood, activity, appointment
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type DashboardResponse struct {
	TotalAppointments     int                  `json:"total_appointments"`
	UpcomingAppointments  int                  `json:"upcoming_appointments"`
	CompletedAppointments int                  `json:"completed_appointments"`
	ActiveTreatmentPlans  int                  `json:"active_treatment_plans"`
	HealthScores          HealthScoresResponse `json:"health_scores"`
	RecentActivity        []ActivityFeedItem   `json:"recent_activity"`
}

// TrendBucket is one month of a trend series.
type TrendBucket struct {
	Month string  `json:"month"`
	Count int     `json:"count"`
	Value float64 `json:"value,omitempty"`
}

type TrendsResponse struct {
	Months              int           `json:"months"`
	AppointmentsByMonth []TrendBucket `json:"appointments_by_month"`
	MoodByMonth         []TrendBucket `json:"mood_by_month"`
	SeverityByMonth     []TrendBucket `json:"severity_by_month"`
	ActivityByMonth     []TrendBucket `json:"activity_by_month"`
	MoodActivityCorr    float64       `json:"mood_activity_correlation"`
	MoodSeverityCorr    float64       `json:"mood_severity_correlation"`
}
