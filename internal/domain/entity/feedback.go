package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback source constants
const (
	FeedbackSourceWeb    = "web"
	FeedbackSourceMobile = "mobile"
	FeedbackSourceKiosk  = "kiosk"
	FeedbackSourceAPI    = "api"
)

// Feedback category constants
const (
	FeedbackCategoryGeneral    = "general"
	FeedbackCategoryUX         = "ux"
	FeedbackCategoryBug        = "bug"
	FeedbackCategoryCompliment = "compliment"
	FeedbackCategorySuggestion = "suggestion"
)

// Feedback is a portal feedback submission; user is optional (anonymous allowed)
type Feedback struct {
	ID        int        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Source    string     `gorm:"type:varchar(50);not null;default:'web'" json:"source"`
	Category  string     `gorm:"type:varchar(50);not null;default:'general'" json:"category"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	Rating    *int       `json:"rating,omitempty"` // optional 1-5
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Feedback) TableName() string {
	return "feedback"
}
