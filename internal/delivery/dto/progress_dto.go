package dto

import "time"

// Request DTOs

type CreateSymptomEntryRequest struct {
	SymptomName string   `json:"symptom_name" validate:"required,max=255"`
	Severity    int      `json:"severity" validate:"required,min=1,max=10"`
	Location    string   `json:"location" validate:"omitempty,max=255"`
	Duration    string   `json:"duration" validate:"omitempty,max=100"`
	Triggers    string   `json:"triggers" validate:"omitempty"`
	Notes       string   `json:"notes" validate:"omitempty"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=100"`
}

type CreateMoodEntryRequest struct {
	MoodScore          int      `json:"mood_score" validate:"required,min=1,max=10"`
	EnergyLevel        int      `json:"energy_level" validate:"omitempty,min=1,max=10"`
	StressLevel        int      `json:"stress_level" validate:"omitempty,min=1,max=10"`
	SleepQuality       int      `json:"sleep_quality" validate:"omitempty,min=1,max=10"`
	SocialInteractions int      `json:"social_interactions" validate:"omitempty,min=0"`
	MoodTags           []string `json:"mood_tags" validate:"omitempty,dive,max=100"`
	WeatherImpact      string   `json:"weather_impact" validate:"omitempty,max=50"`
	Notes              string   `json:"notes" validate:"omitempty"`
	DateRecorded       string   `json:"date_recorded" validate:"omitempty,datetime=2006-01-02"`
}

type CreateActivityEntryRequest struct {
	ActivityType string         `json:"activity_type" validate:"required,max=100"`
	ActivityName string         `json:"activity_name" validate:"required,max=255"`
	Duration     int            `json:"duration" validate:"omitempty,min=0"`
	Intensity    int            `json:"intensity" validate:"omitempty,min=1,max=10"`
	Completed    *bool          `json:"completed"`
	Notes        string         `json:"notes" validate:"omitempty"`
	Metadata     map[string]any `json:"metadata" validate:"omitempty"`
	DateRecorded string         `json:"date_recorded" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type SymptomEntryResponse struct {
	ID          int       `json:"id"`
	SymptomName string    `json:"symptom_name"`
	Severity    int       `json:"severity"`
	Location    string    `json:"location,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Triggers    string    `json:"triggers,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

type MoodEntryResponse struct {
	ID                 int       `json:"id"`
	MoodScore          int       `json:"mood_score"`
	EnergyLevel        int       `json:"energy_level,omitempty"`
	StressLevel        int       `json:"stress_level,omitempty"`
	SleepQuality       int       `json:"sleep_quality,omitempty"`
	SocialInteractions int       `json:"social_interactions,omitempty"`
	MoodTags           []string  `json:"mood_tags"`
	WeatherImpact      string    `json:"weather_impact,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	Flagged            bool      `json:"flagged"`
	DateRecorded       string    `json:"date_recorded"`
	CreatedAt          time.Time `json:"created_at"`
}

type ActivityEntryResponse struct {
	ID           int            `json:"id"`
	ActivityType string         `json:"activity_type"`
	ActivityName string         `json:"activity_name"`
	Duration     int            `json:"duration,omitempty"`
	Intensity    int            `json:"intensity,omitempty"`
	Completed    bool           `json:"completed"`
	Notes        string         `json:"notes,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	DateRecorded string         `json:"date_recorded"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ProgressSummaryResponse aggregates a patient's tracked history for the
// requested timeframe (week, month or quarter).
type ProgressSummaryResponse struct {
	Timeframe         string  `json:"timeframe"`
	SymptomCount      int     `json:"symptom_count"`
	AverageSeverity   float64 `json:"average_severity"`
	SeverityHistogram []int   `json:"severity_histogram"`
	MoodCount         int     `json:"mood_count"`
	AverageMood       float64 `json:"average_mood"`
	FlaggedMoodCount  int     `json:"flagged_mood_count"`
	ActivityCount     int     `json:"activity_count"`
	TotalMinutes      int     `json:"total_minutes"`
	ActivityStreak    int     `json:"activity_streak"`
}
