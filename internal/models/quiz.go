package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz groups an ordered list of questions, optionally bound to a module.
// Questions are stored as a JSON document; see dto.QuizQuestion for shape.
type Quiz struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	ModuleID  string         `gorm:"size:36;index" json:"module_id"`
	Questions datatypes.JSON `gorm:"type:json" json:"questions"`
	CreatedBy string         `gorm:"size:36;index" json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// BeforeCreate assigns a random identifier when none is provided.
func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// QuizAttempt records one completed pass over a quiz. Attempts are
// append-only; there is no update or delete path.
type QuizAttempt struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	UserID         string         `gorm:"size:36;not null;index" json:"user_id"`
	QuizID         string         `gorm:"size:36;not null;index" json:"quiz_id"`
	ModuleID       string         `gorm:"size:36;index" json:"module_id"`
	Score          int            `gorm:"not null" json:"score"`
	TotalQuestions int            `gorm:"not null" json:"total_questions"`
	Answers        datatypes.JSON `gorm:"type:json" json:"answers"`
	CompletedAt    time.Time      `json:"completed_at"`
	CreatedAt      time.Time      `json:"-"`
}

// BeforeCreate assigns a random identifier when none is provided.
func (a *QuizAttempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
