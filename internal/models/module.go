package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Module is a self-contained instructional unit built around a video.
type Module struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	VideoURL      string    `gorm:"size:512;not null" json:"video_url"`
	VideoDuration int       `gorm:"not null" json:"video_duration"`
	Order         int       `gorm:"column:display_order;not null;index" json:"order"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeforeCreate assigns a random identifier when none is provided.
func (m *Module) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// VideoCompletion marks a module video as watched by a user. At most one
// live record exists per (user, module) pair; re-submission overwrites.
type VideoCompletion struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"size:36;not null;uniqueIndex:idx_completion_user_module" json:"user_id"`
	ModuleID        string    `gorm:"size:36;not null;uniqueIndex:idx_completion_user_module" json:"module_id"`
	WatchPercentage float64   `gorm:"not null;default:100" json:"watch_percentage"`
	CompletedAt     time.Time `json:"completed_at"`
}

// BeforeCreate assigns a random identifier when none is provided.
func (v *VideoCompletion) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
