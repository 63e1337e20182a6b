package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/repository"
	"github.com/toayushh/CareConnect-sub001/internal/service"
	"github.com/toayushh/CareConnect-sub001/internal/viewmodel"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	healthScoreWindowDays = 30
	defaultTrendMonths    = 6
	maxTrendMonths        = 24
	activityFeedSize      = 5
)

type AnalyticsUsecase interface {
	Dashboard(ctx context.Context, patientID uuid.UUID) (*dto.DashboardResponse, error)
	Trends(ctx context.Context, patientID uuid.UUID, months int) (*dto.TrendsResponse, error)
}

type analyticsUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	treatmentPlanRepo repository.TreatmentPlanRepository
	symptomRepo       repository.SymptomEntryRepository
	moodRepo          repository.MoodEntryRepository
	activityRepo      repository.ActivityEntryRepository
	snapshots         *service.SnapshotCache
}

func NewAnalyticsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	treatmentPlanRepo repository.TreatmentPlanRepository,
	symptomRepo repository.SymptomEntryRepository,
	moodRepo repository.MoodEntryRepository,
	activityRepo repository.ActivityEntryRepository,
	snapshots *service.SnapshotCache,
) AnalyticsUsecase {
	return &analyticsUsecase{
		db:                db,
		log:               log,
		appointmentRepo:   appointmentRepo,
		treatmentPlanRepo: treatmentPlanRepo,
		symptomRepo:       symptomRepo,
		moodRepo:          moodRepo,
		activityRepo:      activityRepo,
		snapshots:         snapshots,
	}
}

// Dashboard assembles the patient landing page: appointment totals, active
// plans, derived health scores and a recent activity feed.
func (u *analyticsUsecase) Dashboard(ctx context.Context, patientID uuid.UUID) (*dto.DashboardResponse, error) {
	cacheKey := "dashboard:" + patientID.String()

	var cached dto.DashboardResponse
	if u.snapshots.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	db := u.db.WithContext(ctx)
	now := time.Now()

	appointments, err := u.appointmentRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	plans, err := u.treatmentPlanRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list treatment plans: %+v", err)
		return nil, err
	}

	since := now.AddDate(0, 0, -healthScoreWindowDays)

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

	dashboard := &dto.DashboardResponse{
		TotalAppointments: len(appointments),
	}
	for i := range appointments {
		a := &appointments[i]
		if a.IsUpcoming(now) {
			dashboard.UpcomingAppointments++
		}
		if a.IsCompleted() {
			dashboard.CompletedAppointments++
		}
	}
	for i := range plans {
		if plans[i].IsActive() {
			dashboard.ActiveTreatmentPlans++
		}
	}

	moodScores := make([]int, 0, len(moods))
	for i := range moods {
		moodScores = append(moodScores, moods[i].MoodScore)
	}
	severities := make([]int, 0, len(symptoms))
	for i := range symptoms {
		severities = append(severities, symptoms[i].Severity)
	}
	minutesByDay := map[string]int{}
	for i := range activities {
		if activities[i].Completed {
			minutesByDay[activities[i].DateRecorded.Format("2006-01-02")] += activities[i].Duration
		}
	}
	dailyMinutes := make([]int, 0, len(minutesByDay))
	for _, minutes := range minutesByDay {
		dailyMinutes = append(dailyMinutes, minutes)
	}

	scores := viewmodel.CalculateHealthScores(moodScores, severities, dailyMinutes, healthScoreWindowDays)
	dashboard.HealthScores = dto.HealthScoresResponse{
		Overall:   scores.Overall,
		Physical:  scores.Physical,
		Mental:    scores.Mental,
		Lifestyle: scores.Lifestyle,
	}

	dashboard.RecentActivity = u.buildActivityFeed(ctx, patientID)

	u.snapshots.Set(ctx, cacheKey, dashboard)
	return dashboard, nil
}

// Trends builds monthly series over the requested window with zero-filled
// buckets, plus correlations between the series.
func (u *analyticsUsecase) Trends(ctx context.Context, patientID uuid.UUID, months int) (*dto.TrendsResponse, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}
	if months > maxTrendMonths {
		months = maxTrendMonths
	}

	db := u.db.WithContext(ctx)
	now := time.Now()
	since := now.AddDate(0, -months, 0)

	appointments, err := u.appointmentRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	moods, err := u.moodRepo.FindByPatientSince(db, patientID, since)
	if err != nil {
		u.log.Warnf("Failed to list mood entries: %+v", err)
		return nil, err
	}
	symptoms, err := u.symptomRepo.FindByPatientSince(db, patientID, since)
	if err != nil {
		u.log.Warnf("Failed to list symptom entries: %+v", err)
		return nil, err
	}
	activities, err := u.activityRepo.FindByPatientSince(db, patientID, since)
	if err != nil {
		u.log.Warnf("Failed to list activity entries: %+v", err)
		return nil, err
	}

	appointmentTimes := make([]time.Time, 0, len(appointments))
	for i := range appointments {
		appointmentTimes = append(appointmentTimes, appointments[i].StartTime)
	}
	moodSamples := make([]viewmodel.TimeSample, 0, len(moods))
	for i := range moods {
		moodSamples = append(moodSamples, viewmodel.TimeSample{
			At:    moods[i].DateRecorded,
			Value: float64(moods[i].MoodScore),
		})
	}
	severitySamples := make([]viewmodel.TimeSample, 0, len(symptoms))
	for i := range symptoms {
		severitySamples = append(severitySamples, viewmodel.TimeSample{
			At:    symptoms[i].CreatedAt,
			Value: float64(symptoms[i].Severity),
		})
	}
	activityTimes := make([]time.Time, 0, len(activities))
	for i := range activities {
		activityTimes = append(activityTimes, activities[i].DateRecorded)
	}

	moodBuckets := viewmodel.MonthlyAverages(moodSamples, months, now)
	severityBuckets := viewmodel.MonthlyAverages(severitySamples, months, now)
	activityBuckets := viewmodel.MonthlyCounts(activityTimes, months, now)

	response := &dto.TrendsResponse{
		Months:              months,
		AppointmentsByMonth: trendBuckets(viewmodel.MonthlyCounts(appointmentTimes, months, now)),
		MoodByMonth:         trendBuckets(moodBuckets),
		SeverityByMonth:     trendBuckets(severityBuckets),
		ActivityByMonth:     trendBuckets(activityBuckets),
		MoodActivityCorr:    viewmodel.Correlation(bucketValues(moodBuckets), bucketCounts(activityBuckets)),
		MoodSeverityCorr:    viewmodel.Correlation(bucketValues(moodBuckets), bucketValues(severityBuckets)),
	}

	return response, nil
}

// buildActivityFeed merges the most recent tracked entries across all three
// trackers into one short feed. Feed failures are logged and leave the feed
// empty rather than failing the dashboard.
func (u *analyticsUsecase) buildActivityFeed(ctx context.Context, patientID uuid.UUID) []dto.ActivityFeedItem {
	db := u.db.WithContext(ctx)

	items := []dto.ActivityFeedItem{}

	symptoms, err := u.symptomRepo.FindRecent(db, patientID, activityFeedSize)
	if err != nil {
		u.log.Warnf("Failed to load recent symptoms: %+v", err)
		return items
	}
	for i := range symptoms {
		items = append(items, dto.ActivityFeedItem{
			Kind:        "symptom",
			Description: fmt.Sprintf("Logged symptom %q (severity %d)", symptoms[i].SymptomName, symptoms[i].Severity),
			OccurredAt:  symptoms[i].CreatedAt,
		})
	}

	moods, err := u.moodRepo.FindRecent(db, patientID, activityFeedSize)
	if err != nil {
		u.log.Warnf("Failed to load recent moods: %+v", err)
		return items
	}
	for i := range moods {
		items = append(items, dto.ActivityFeedItem{
			Kind:        "mood",
			Description: fmt.Sprintf("Recorded mood score %d", moods[i].MoodScore),
			OccurredAt:  moods[i].CreatedAt,
		})
	}

	activities, err := u.activityRepo.FindRecent(db, patientID, activityFeedSize)
	if err != nil {
		u.log.Warnf("Failed to load recent activities: %+v", err)
		return items
	}
	for i := range activities {
		items = append(items, dto.ActivityFeedItem{
			Kind:        "activity",
			Description: fmt.Sprintf("Completed %s (%d min)", activities[i].ActivityName, activities[i].Duration),
			OccurredAt:  activities[i].CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OccurredAt.After(items[j].OccurredAt)
	})
	if len(items) > activityFeedSize {
		items = items[:activityFeedSize]
	}
	return items
}

func trendBuckets(buckets []viewmodel.MonthBucket) []dto.TrendBucket {
	result := make([]dto.TrendBucket, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, dto.TrendBucket{
			Month: b.Month,
			Count: b.Count,
			Value: b.Value,
		})
	}
	return result
}

func bucketValues(buckets []viewmodel.MonthBucket) []float64 {
	values := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		values = append(values, b.Value)
	}
	return values
}

func bucketCounts(buckets []viewmodel.MonthBucket) []float64 {
	values := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		values = append(values, float64(b.Count))
	}
	return values
}
