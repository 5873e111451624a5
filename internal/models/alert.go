package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alert is an emergency broadcast shown to all users while active. Alerts
// are only ever toggled between active and inactive, never deleted.
type Alert struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	AlertType string    `gorm:"size:32;not null" json:"alert_type"`
	Severity  string    `gorm:"size:16;not null" json:"severity"`
	Active    bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedBy string    `gorm:"size:36;index" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a random identifier when none is provided.
func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
