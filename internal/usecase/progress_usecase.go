package usecase

import (
	"context"
	"time"

	"github.com/toayushh/CareConnect-sub001/internal/converter"
	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
	"github.com/toayushh/CareConnect-sub001/internal/domain/repository"
	"github.com/toayushh/CareConnect-sub001/internal/service"
	"github.com/toayushh/CareConnect-sub001/internal/viewmodel"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Timeframe names accepted by the progress and analytics endpoints.
const (
	TimeframeWeek    = "week"
	TimeframeMonth   = "month"
	TimeframeQuarter = "quarter"
)

// timeframeDays maps a timeframe name to its window length in days.
func timeframeDays(timeframe string) (int, error) {
	switch timeframe {
	case TimeframeWeek:
		return 7, nil
	case TimeframeMonth, "":
		return 30, nil
	case TimeframeQuarter:
		return 90, nil
	}
	return 0, ErrInvalidTimeframe
}

type ProgressUsecase interface {
	AddSymptom(ctx context.Context, patientID uuid.UUID, req *dto.CreateSymptomEntryRequest) (*dto.SymptomEntryResponse, error)
	ListSymptoms(ctx context.Context, patientID uuid.UUID, timeframe string) ([]dto.SymptomEntryResponse, error)
	AddMood(ctx context.Context, patientID uuid.UUID, req *dto.CreateMoodEntryRequest) (*dto.MoodEntryResponse, error)
	ListMoods(ctx context.Context, patientID uuid.UUID, timeframe string) ([]dto.MoodEntryResponse, error)
	AddActivity(ctx context.Context, patientID uuid.UUID, req *dto.CreateActivityEntryRequest) (*dto.ActivityEntryResponse, error)
	ListActivities(ctx context.Context, patientID uuid.UUID, timeframe string) ([]dto.ActivityEntryResponse, error)
	Summary(ctx context.Context, patientID uuid.UUID, timeframe string) (*dto.ProgressSummaryResponse, error)
}

type progressUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	symptomRepo  repository.SymptomEntryRepository
	moodRepo     repository.MoodEntryRepository
	activityRepo repository.ActivityEntryRepository
	snapshots    *service.SnapshotCache
}

func NewProgressUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	symptomRepo repository.SymptomEntryRepository,
	moodRepo repository.MoodEntryRepository,
	activityRepo repository.ActivityEntryRepository,
	snapshots *service.SnapshotCache,
) ProgressUsecase {
	return &progressUsecase{
		db:           db,
		log:          log,
		symptomRepo:  symptomRepo,
		moodRepo:     moodRepo,
		activityRepo: activityRepo,
		snapshots:    snapshots,
	}
}

func (u *progressUsecase) AddSymptom(ctx context.Context, patientID uuid.UUID, req *dto.CreateSymptomEntryRequest) (*dto.SymptomEntryResponse, error) {
	entry := &entity.SymptomEntry{
		PatientID:   patientID,
		SymptomName: req.SymptomName,
		Severity:    req.Severity,
		Location:    req.Location,
		Duration:    req.Duration,
		Triggers:    req.Triggers,
		Notes:       req.Notes,
		Tags:        entity.StringArray(req.Tags),
	}

	if err := u.symptomRepo.Create(u.db.WithContext(ctx), entry); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create symptom entry: %+v", err)
		return nil, err
	}

	u.snapshots.Invalidate(ctx, "dashboard:"+patientID.String())

	return converter.SymptomEntryToResponse(entry), nil
}

func (u *progressUsecase) ListSymptoms(ctx context.Context, patientID uuid.UUID, timeframe string) ([]dto.SymptomEntryResponse, error) {
	since, err := timeframeStart(timeframe)
	if err != nil {
		return nil, err
	}

	entries, err := u.symptomRepo.FindByPatientSince(u.db.WithContext(ctx), patientID, since)
	if err != nil {
		u.log.Warnf("Failed to list symptom entries: %+v", err)
		return nil, err
	}

	return converter.SymptomEntriesToResponses(entries), nil
}

func (u *progressUsecase) AddMood(ctx context.Context, patientID uuid.UUID, req *dto.CreateMoodEntryRequest) (*dto.MoodEntryResponse, error) {
	dateRecorded := time.Now()
	if req.DateRecorded != "" {
		parsed, err := time.Parse("2006-01-02", req.DateRecorded)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		dateRecorded = parsed
	}

	entry := &entity.MoodEntry{
		PatientID:          patientID,
		MoodScore:          req.MoodScore,
		EnergyLevel:        req.EnergyLevel,
		StressLevel:        req.StressLevel,
		SleepQuality:       req.SleepQuality,
		SocialInteractions: req.SocialInteractions,
		MoodTags:           entity.StringArray(req.MoodTags),
		WeatherImpact:      req.WeatherImpact,
		Notes:              req.Notes,
		DateRecorded:       dateRecorded,
	}

	if err := u.moodRepo.Create(u.db.WithContext(ctx), entry); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create mood entry: %+v", err)
		return nil, err
	}

	if entry.IsFlagged() {
		u.log.WithFields(logrus.Fields{
			"patient_id": patientID,
			"mood_score": entry.MoodScore,
		}).Warn("Low mood entry flagged for care staff")
	}

	u.snapshots.Invalidate(ctx, "dashboard:"+patientID.String())

	return converter.MoodEntryToResponse(entry), nil
}

func (u *progressUsecase) ListMoods(ctx context.Context, patientID uuid.UUID, timeframe string) ([]dto.MoodEntryResponse, error) {
	since, err := timeframeStart(timeframe)
	if err != nil {
		return nil, err
	}

	entries, err := u.moodRepo.FindByPatientSince(u.db.WithContext(ctx), patientID, since)
	if err != nil {
		u.log.Warnf("Failed to list mood entries: %+v", err)
		return nil, err
	}

	return converter.MoodEntriesToResponses(entries), nil
}

func (u *progressUsecase) AddActivity(ctx context.Context, patientID uuid.UUID, req *dto.CreateActivityEntryRequest) (*dto.ActivityEntryResponse, error) {
	dateRecorded := time.Now()
	if req.DateRecorded != "" {
		parsed, err := time.Parse("2006-01-02", req.DateRecorded)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		dateRecorded = parsed
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	entry := &entity.ActivityEntry{
		PatientID:    patientID,
		ActivityType: req.ActivityType,
		ActivityName: req.ActivityName,
		Duration:     req.Duration,
		Intensity:    req.Intensity,
		Completed:    completed,
		Notes:        req.Notes,
		Metadata:     entity.JSON(req.Metadata),
		DateRecorded: dateRecorded,
	}

	if err := u.activityRepo.Create(u.db.WithContext(ctx), entry); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create activity entry: %+v", err)
		return nil, err
	}

	u.snapshots.Invalidate(ctx, "dashboard:"+patientID.String())

	return converter.ActivityEntryToResponse(entry), nil
}

func (u *progressUsecase) ListActivities(ctx context.Context, patientID uuid.UUID, timeframe string) ([]dto.ActivityEntryResponse, error) {
	since, err := timeframeStart(timeframe)
	if err != nil {
		return nil, err
	}

	entries, err := u.activityRepo.FindByPatientSince(u.db.WithContext(ctx), patientID, since)
	if err != nil {
		u.log.Warnf("Failed to list activity entries: %+v", err)
		return nil, err
	}

	return converter.ActivityEntriesToResponses(entries), nil
}

// Summary aggregates all tracked history for the timeframe into one card.
func (u *progressUsecase) Summary(ctx context.Context, patientID uuid.UUID, timeframe string) (*dto.ProgressSummaryResponse, error) {
	days, err := timeframeDays(timeframe)
	if err != nil {
		return nil, err
	}
	since := time.Now().AddDate(0, 0, -days)

	db := u.db.WithContext(ctx)

	symptoms, err := u.symptomRepo.FindByPatientSince(db, patientID, since)
	if err != nil {
		u.log.Warnf("Failed to list symptom entries: %+v", err)
		return nil, err
	}
	moods, err := u.moodRepo.FindByPatientSince(db, patientID, since)
	if err != nil {
		u.log.Warnf("Failed to list mood entries: %+v", err)
		return nil, err
	}
	activities, err := u.activityRepo.FindByPatientSince(db, patientID, since)
	if err != nil {
		u.log.Warnf("Failed to list activity entries: %+v", err)
		return nil, err
	}

	summary := &dto.ProgressSummaryResponse{
		Timeframe:     normalizeTimeframe(timeframe),
		SymptomCount:  len(symptoms),
		MoodCount:     len(moods),
		ActivityCount: len(activities),
	}

	severities := make([]int, 0, len(symptoms))
	for i := range symptoms {
		severities = append(severities, symptoms[i].Severity)
	}
	summary.SeverityHistogram = viewmodel.SeverityHistogram(severities)
	summary.AverageSeverity = intAverage(severities)

	moodScores := make([]int, 0, len(moods))
	for i := range moods {
		moodScores = append(moodScores, moods[i].MoodScore)
		if moods[i].IsFlagged() {
			summary.FlaggedMoodCount++
		}
	}
	summary.AverageMood = intAverage(moodScores)

	activityDays := make([]time.Time, 0, len(activities))
	for i := range activities {
		summary.TotalMinutes += activities[i].Duration
		if activities[i].Completed {
			activityDays = append(activityDays, activities[i].DateRecorded)
		}
	}
	summary.ActivityStreak = viewmodel.Streak(activityDays, time.Now())

	return summary, nil
}

func timeframeStart(timeframe string) (time.Time, error) {
	days, err := timeframeDays(timeframe)
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().AddDate(0, 0, -days), nil
}

func normalizeTimeframe(timeframe string) string {
	if timeframe == "" {
		return TimeframeMonth
	}
	return timeframe
}

func intAverage(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
