package repository

import (
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
	domainRepo "github.com/toayushh/CareConnect-sub001/internal/domain/repository"

	"gorm.io/gorm"
)

type feedbackRepository struct{}

func NewFeedbackRepository() domainRepo.FeedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) Create(db *gorm.DB, feedback *entity.Feedback) error {
	return db.Create(feedback).Error
}

func (r *feedbackRepository) FindRecent(db *gorm.DB, limit int) ([]entity.Feedback, error) {
	var items []entity.Feedback
	err := db.Order("created_at DESC").Limit(limit).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *feedbackRepository) FindAll(db *gorm.DB) ([]entity.Feedback, error) {
	var items []entity.Feedback
	err := db.Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
