package dto

// DrillRequest records participation in a practice exercise.
type DrillRequest struct {
	DrillType string `json:"drill_type" validate:"required"`
	Notes     string `json:"notes"`
}
