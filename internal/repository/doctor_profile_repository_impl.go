package repository

import (
	"errors"

	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
	domainRepo "github.com/toayushh/CareConnect-sub001/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindAll(db *gorm.DB, filter *entity.DoctorFilter, limit int) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	err := applyDoctorFilter(db, filter).
		Preload("User").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// FindTopRated returns active doctors ordered by rating, for the portal's
// recommendation list.
func (r *doctorProfileRepository) FindTopRated(db *gorm.DB, filter *entity.DoctorFilter, limit int) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	err := applyDoctorFilter(db, filter).
		Preload("User").
		Order("rating DESC").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("User").Save(profile).Error
}

func (r *doctorProfileRepository) Delete(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&entity.DoctorProfile{}).Error
}

func applyDoctorFilter(db *gorm.DB, filter *entity.DoctorFilter) *gorm.DB {
	query := db.Model(&entity.DoctorProfile{}).
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("users.is_active = ?", true)

	if filter != nil {
		if filter.Specialty != "" {
			query = query.Where("doctor_profiles.specialty ILIKE ?", "%"+filter.Specialty+"%")
		}
		if filter.Language != "" {
			query = query.Where("doctor_profiles.languages ILIKE ?", "%"+filter.Language+"%")
		}
		if filter.Availability != "" {
			query = query.Where("doctor_profiles.availability = ?", filter.Availability)
		}
	}

	return query
}
