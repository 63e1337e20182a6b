package repository

import (
	"errors"

	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
	domainRepo "github.com/toayushh/CareConnect-sub001/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type treatmentPlanRepository struct{}

func NewTreatmentPlanRepository() domainRepo.TreatmentPlanRepository {
	return &treatmentPlanRepository{}
}

func (r *treatmentPlanRepository) Create(db *gorm.DB, plan *entity.TreatmentPlan) error {
	return db.Create(plan).Error
}

func (r *treatmentPlanRepository) FindByID(db *gorm.DB, id int) (*entity.TreatmentPlan, error) {
	var plan entity.TreatmentPlan
	err := db.Preload("Patient.User").Preload("Doctor.User").
		Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *treatmentPlanRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.TreatmentPlan, error) {
	var plans []entity.TreatmentPlan
	err := db.Preload("Patient.User").Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *treatmentPlanRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.TreatmentPlan, error) {
	var plans []entity.TreatmentPlan
	err := db.Preload("Patient.User").Preload("Doctor.User").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *treatmentPlanRepository) DistinctPatientIDsByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&entity.TreatmentPlan{}).
		Where("doctor_id = ?", doctorID).
		Distinct("patient_id").
		Pluck("patient_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *treatmentPlanRepository) Update(db *gorm.DB, plan *entity.TreatmentPlan) error {
	return db.Omit("Patient", "Doctor").Save(plan).Error
}

func (r *treatmentPlanRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.TreatmentPlan{})
	return result.RowsAffected, result.Error
}
