package repository

import (
	"time"

	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SymptomEntryRepository interface {
	Create(db *gorm.DB, entry *entity.SymptomEntry) error
	FindByPatientSince(db *gorm.DB, patientID uuid.UUID, since time.Time) ([]entity.SymptomEntry, error)
	FindRecent(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.SymptomEntry, error)
}

type MoodEntryRepository interface {
	Create(db *gorm.DB, entry *entity.MoodEntry) error
	FindByPatientSince(db *gorm.DB, patientID uuid.UUID, since time.Time) ([]entity.MoodEntry, error)
	FindRecent(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.MoodEntry, error)
}

type ActivityEntryRepository interface {
	Create(db *gorm.DB, entry *entity.ActivityEntry) error
	FindByPatientSince(db *gorm.DB, patientID uuid.UUID, since time.Time) ([]entity.ActivityEntry, error)
	FindRecent(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.ActivityEntry, error)
}
