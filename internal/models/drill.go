package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DrillParticipation logs attendance at a practice exercise such as a fire
// drill. Records are append-only.
type DrillParticipation struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         string    `gorm:"size:36;not null;index" json:"user_id"`
	DrillType      string    `gorm:"size:64;not null" json:"drill_type"`
	Notes          string    `gorm:"type:text" json:"notes"`
	ParticipatedAt time.Time `json:"participated_at"`
	CreatedAt      time.Time `json:"-"`
}

// BeforeCreate assigns a random identifier when none is provided.
func (d *DrillParticipation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
