package converter

import (
	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
)

// SymptomEntryToResponse converts a SymptomEntry entity to its DTO.
func SymptomEntryToResponse(entry *entity.SymptomEntry) *dto.SymptomEntryResponse {
	if entry == nil {
		return nil
	}

	return &dto.SymptomEntryResponse{
		ID:          entry.ID,
		SymptomName: entry.SymptomName,
		Severity:    entry.Severity,
		Location:    entry.Location,
		Duration:    entry.Duration,
		Triggers:    entry.Triggers,
		Notes:       entry.Notes,
		Tags:        stringList(entry.Tags),
		CreatedAt:   entry.CreatedAt,
	}
}

// SymptomEntriesToResponses converts a slice of symptom entries.
func SymptomEntriesToResponses(entries []entity.SymptomEntry) []dto.SymptomEntryResponse {
	responses := make([]dto.SymptomEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *SymptomEntryToResponse(&entries[i]))
	}
	return responses
}

// MoodEntryToResponse converts a MoodEntry entity to its DTO.
func MoodEntryToResponse(entry *entity.MoodEntry) *dto.MoodEntryResponse {
	if entry == nil {
		return nil
	}

	return &dto.MoodEntryResponse{
		ID:                 entry.ID,
		MoodScore:          entry.MoodScore,
		EnergyLevel:        entry.EnergyLevel,
		StressLevel:        entry.StressLevel,
		SleepQuality:       entry.SleepQuality,
		SocialInteractions: entry.SocialInteractions,
		MoodTags:           stringList(entry.MoodTags),
		WeatherImpact:      entry.WeatherImpact,
		Notes:              entry.Notes,
		Flagged:            entry.IsFlagged(),
		DateRecorded:       entry.DateRecorded.Format("2006-01-02"),
		CreatedAt:          entry.CreatedAt,
	}
}

// MoodEntriesToResponses converts a slice of mood entries.
func MoodEntriesToResponses(entries []entity.MoodEntry) []dto.MoodEntryResponse {
	responses := make([]dto.MoodEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *MoodEntryToResponse(&entries[i]))
	}
	return responses
}

// ActivityEntryToResponse converts an ActivityEntry entity to its DTO.
func ActivityEntryToResponse(entry *entity.ActivityEntry) *dto.ActivityEntryResponse {
	if entry == nil {
		return nil
	}

	return &dto.ActivityEntryResponse{
		ID:           entry.ID,
		ActivityType: entry.ActivityType,
		ActivityName: entry.ActivityName,
		Duration:     entry.Duration,
		Intensity:    entry.Intensity,
		Completed:    entry.Completed,
		Notes:        entry.Notes,
		Metadata:     map[string]any(entry.Metadata),
		DateRecorded: entry.DateRecorded.Format("2006-01-02"),
		CreatedAt:    entry.CreatedAt,
	}
}

// ActivityEntriesToResponses converts a slice of activity entries.
func ActivityEntriesToResponses(entries []entity.ActivityEntry) []dto.ActivityEntryResponse {
	responses := make([]dto.ActivityEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *ActivityEntryToResponse(&entries[i]))
	}
	return responses
}
