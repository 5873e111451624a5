package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DisasterPrediction stores the output of the city risk heuristic.
type DisasterPrediction struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	City             string    `gorm:"size:128;not null" json:"city"`
	RiskPercentage   float64   `gorm:"not null" json:"risk_percentage"`
	DisasterTypesRaw string    `gorm:"column:disaster_types;type:text" json:"-"`
	FactorsRaw       string    `gorm:"column:factors;type:text" json:"-"`
	PredictedBy      string    `gorm:"size:36;not null;index" json:"predicted_by"`
	PredictedAt      time.Time `gorm:"index" json:"predicted_at"`
	DisasterTypes    []string  `gorm:"-" json:"disaster_types"`
	Factors          []string  `gorm:"-" json:"factors"`
}

// BeforeSave normalises list data before persisting.
func (p *DisasterPrediction) BeforeSave(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.DisasterTypesRaw = encodeList(p.DisasterTypes)
	p.FactorsRaw = encodeList(p.Factors)
	return nil
}

// AfterFind hydrates the list fields after retrieval.
func (p *DisasterPrediction) AfterFind(tx *gorm.DB) error {
	p.DisasterTypes = decodeList(p.DisasterTypesRaw)
	p.Factors = decodeList(p.FactorsRaw)
	return nil
}

func encodeList(values []string) string {
	if len(values) == 0 {
		return ""
	}
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	if len(cleaned) == 0 {
		return ""
	}
	return "|" + strings.Join(cleaned, "|") + "|"
}

func decodeList(raw string) []string {
	raw = strings.Trim(raw, "|")
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, "|")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		values = append(values, trimmed)
	}
	return values
}
