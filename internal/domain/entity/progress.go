package entity

import (
	"time"

	"github.com/google/uuid"
)

// Score scale bounds used by the progress tracker. Severities run 1-10,
// feedback ratings 1-5; aggregation clamps into these ranges instead of
// rejecting out-of-range history rows.
const (
	ScoreScaleMin    = 1
	ScoreScaleMax    = 10
	RatingScaleMin   = 1
	RatingScaleMax   = 5
	FlaggedMoodScore = 2 // mood <= 2 is surfaced to care staff
)

// SymptomEntry tracks a reported patient symptom
type SymptomEntry struct {
	ID          int         `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"patient_id"`
	SymptomName string      `gorm:"type:varchar(255);not null" json:"symptom_name"`
	Severity    int         `gorm:"not null" json:"severity"` // 1-10 scale
	Location    string      `gorm:"type:varchar(255)" json:"location,omitempty"`
	Duration    string      `gorm:"type:varchar(100)" json:"duration,omitempty"`
	Triggers    string      `gorm:"type:text" json:"triggers,omitempty"`
	Notes       string      `gorm:"type:text" json:"notes,omitempty"`
	Tags        StringArray `gorm:"type:jsonb" json:"tags"`
	CreatedAt   time.Time   `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (SymptomEntry) TableName() string {
	return "symptom_entries"
}

// MoodEntry tracks daily mood and mental health scores
type MoodEntry struct {
	ID                 int         `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID          uuid.UUID   `gorm:"type:uuid;not null;index" json:"patient_id"`
	MoodScore          int         `gorm:"not null" json:"mood_score"` // 1-10 scale
	EnergyLevel        int         `json:"energy_level,omitempty"`
	StressLevel        int         `json:"stress_level,omitempty"`
	SleepQuality       int         `json:"sleep_quality,omitempty"`
	SocialInteractions int         `json:"social_interactions,omitempty"`
	MoodTags           StringArray `gorm:"type:jsonb" json:"mood_tags"`
	WeatherImpact      string      `gorm:"type:varchar(50)" json:"weather_impact,omitempty"`
	Notes              string      `gorm:"type:text" json:"notes,omitempty"`
	DateRecorded       time.Time   `gorm:"type:date;not null;index" json:"date_recorded"`
	CreatedAt          time.Time   `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}

// IsFlagged reports whether the entry meets the care-staff threshold rule.
func (m *MoodEntry) IsFlagged() bool {
	return m.MoodScore <= FlaggedMoodScore
}

// ActivityEntry tracks patient activities (exercise, therapy, medication, ...)
type ActivityEntry struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID    uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	ActivityType string    `gorm:"type:varchar(100);not null" json:"activity_type"`
	ActivityName string    `gorm:"type:varchar(255);not null" json:"activity_name"`
	Duration     int       `json:"duration,omitempty"` // minutes
	Intensity    int       `json:"intensity,omitempty"`
	Completed    bool      `gorm:"default:true" json:"completed"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`
	Metadata     JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	DateRecorded time.Time `gorm:"type:date;not null;index" json:"date_recorded"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (ActivityEntry) TableName() string {
	return "activity_entries"
}
