package repository

import (
	"time"

	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
	domainRepo "github.com/toayushh/CareConnect-sub001/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type symptomEntryRepository struct{}

func NewSymptomEntryRepository() domainRepo.SymptomEntryRepository {
	return &symptomEntryRepository{}
}

func (r *symptomEntryRepository) Create(db *gorm.DB, entry *entity.SymptomEntry) error {
	return db.Create(entry).Error
}

func (r *symptomEntryRepository) FindByPatientSince(db *gorm.DB, patientID uuid.UUID, since time.Time) ([]entity.SymptomEntry, error) {
	var entries []entity.SymptomEntry
	err := db.Where("patient_id = ? AND created_at >= ?", patientID, since).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *symptomEntryRepository) FindRecent(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.SymptomEntry, error) {
	var entries []entity.SymptomEntry
	err := db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

type moodEntryRepository struct{}

func NewMoodEntryRepository() domainRepo.MoodEntryRepository {
	return &moodEntryRepository{}
}

func (r *moodEntryRepository) Create(db *gorm.DB, entry *entity.MoodEntry) error {
	return db.Create(entry).Error
}

func (r *moodEntryRepository) FindByPatientSince(db *gorm.DB, patientID uuid.UUID, since time.Time) ([]entity.MoodEntry, error) {
	var entries []entity.MoodEntry
	err := db.Where("patient_id = ? AND date_recorded >= ?", patientID, since).
		Order("date_recorded DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *moodEntryRepository) FindRecent(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.MoodEntry, error) {
	var entries []entity.MoodEntry
	err := db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

type activityEntryRepository struct{}

func NewActivityEntryRepository() domainRepo.ActivityEntryRepository {
	return &activityEntryRepository{}
}

func (r *activityEntryRepository) Create(db *gorm.DB, entry *entity.ActivityEntry) error {
	return db.Create(entry).Error
}

func (r *activityEntryRepository) FindByPatientSince(db *gorm.DB, patientID uuid.UUID, since time.Time) ([]entity.ActivityEntry, error) {
	var entries []entity.ActivityEntry
	err := db.Where("patient_id = ? AND date_recorded >= ?", patientID, since).
		Order("date_recorded DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *activityEntryRepository) FindRecent(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.ActivityEntry, error) {
	var entries []entity.ActivityEntry
	err := db.Where("patient_id = ?", patientID).
		Order("date_recorded DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
