package repository

import (
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(db *gorm.DB, feedback *entity.Feedback) error
	FindRecent(db *gorm.DB, limit int) ([]entity.Feedback, error)
	FindAll(db *gorm.DB) ([]entity.Feedback, error)
}
