package usecase

import (
	"context"

	"github.com/toayushh/CareConnect-sub001/internal/converter"
	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
	"github.com/toayushh/CareConnect-sub001/internal/domain/repository"
	"github.com/toayushh/CareConnect-sub001/internal/viewmodel"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const recentFeedbackLimit = 100

type FeedbackUsecase interface {
	Create(ctx context.Context, userID *uuid.UUID, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	ListRecent(ctx context.Context) ([]dto.FeedbackResponse, error)
	Stats(ctx context.Context) (*dto.FeedbackStatsResponse, error)
}

type feedbackUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackUsecase(db *gorm.DB, log *logrus.Logger, feedbackRepo repository.FeedbackRepository) FeedbackUsecase {
	return &feedbackUsecase{
		db:           db,
		log:          log,
		feedbackRepo: feedbackRepo,
	}
}

// Create stores a feedback submission. Anonymous submissions carry no user ID.
func (u *feedbackUsecase) Create(ctx context.Context, userID *uuid.UUID, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	source := req.Source
	if source == "" {
		source = entity.FeedbackSourceWeb
	}
	category := req.Category
	if category == "" {
		category = entity.FeedbackCategoryGeneral
	}

	feedback := &entity.Feedback{
		UserID:   userID,
		Source:   source,
		Category: category,
		Message:  req.Message,
		Rating:   req.Rating,
		Metadata: entity.JSON(req.Metadata),
	}

	if err := u.feedbackRepo.Create(u.db.WithContext(ctx), feedback); err != nil {
		u.log.Warnf("Failed to create feedback: %+v", err)
		return nil, err
	}

	return converter.FeedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) ListRecent(ctx context.Context) ([]dto.FeedbackResponse, error) {
	feedbacks, err := u.feedbackRepo.FindRecent(u.db.WithContext(ctx), recentFeedbackLimit)
	if err != nil {
		u.log.Warnf("Failed to list feedback: %+v", err)
		return nil, err
	}
	return converter.FeedbacksToResponses(feedbacks), nil
}

// Stats summarizes every submission: counts per category and source, plus a
// rating histogram over rated submissions only.
func (u *feedbackUsecase) Stats(ctx context.Context) (*dto.FeedbackStatsResponse, error) {
	feedbacks, err := u.feedbackRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load feedback: %+v", err)
		return nil, err
	}

	stats := &dto.FeedbackStatsResponse{
		Total:      len(feedbacks),
		ByCategory: map[string]int{},
		BySource:   map[string]int{},
	}

	ratings := []int{}
	ratingSum := 0
	for i := range feedbacks {
		f := &feedbacks[i]
		stats.ByCategory[f.Category]++
		stats.BySource[f.Source]++
		if f.Rating != nil {
			ratings = append(ratings, *f.Rating)
			ratingSum += viewmodel.Clamp(*f.Rating, entity.RatingScaleMin, entity.RatingScaleMax)
		}
	}

	stats.RatingHistogram = viewmodel.RatingHistogram(ratings)
	if len(ratings) > 0 {
		stats.AverageRating = float64(ratingSum) / float64(len(ratings))
	}

	return stats, nil
}
