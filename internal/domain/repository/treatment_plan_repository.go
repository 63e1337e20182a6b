package repository

import (
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TreatmentPlanRepository interface {
	Create(db *gorm.DB, plan *entity.TreatmentPlan) error
	FindByID(db *gorm.DB, id int) (*entity.TreatmentPlan, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.TreatmentPlan, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.TreatmentPlan, error)
	DistinctPatientIDsByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error)
	Update(db *gorm.DB, plan *entity.TreatmentPlan) error
	Delete(db *gorm.DB, id int) (int64, error)
}
