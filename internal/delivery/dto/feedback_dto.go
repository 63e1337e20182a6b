package dto

import "time"

// Request DTOs

type CreateFeedbackRequest struct {
	Source   string         `json:"source" validate:"omitempty,oneof=web mobile kiosk api"`
	Category string         `json:"category" validate:"omitempty,oneof=general ux bug compliment suggestion"`
	Message  string         `json:"message" validate:"required,min=1,max=5000"`
	Rating   *int           `json:"rating" validate:"omitempty,min=1,max=5"`
	Metadata map[string]any `json:"metadata" validate:"omitempty"`
}

// Response DTOs

type FeedbackResponse struct {
	ID        int            `json:"id"`
	UserID    string         `json:"user_id,omitempty"`
	Source    string         `json:"source"`
	Category  string         `json:"category"`
	Message   string         `json:"message"`
	Rating    *int           `json:"rating,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// FeedbackStatsResponse summarizes all submissions for the admin view.
type FeedbackStatsResponse struct {
	Total           int            `json:"total"`
	AverageRating   float64        `json:"average_rating"`
	RatingHistogram []int          `json:"rating_histogram"` // index 0 = rating 1
	ByCategory      map[string]int `json:"by_category"`
	BySource        map[string]int `json:"by_source"`
}
