package dto

// AlertCreateRequest carries the payload for publishing an emergency alert.
type AlertCreateRequest struct {
	Title     string `json:"title" validate:"required"`
	Message   string `json:"message" validate:"required"`
	AlertType string `json:"alert_type" validate:"required"`
	Severity  string `json:"severity" validate:"required,oneof=low medium high critical"`
}

// AlertUpdateRequest toggles the active flag of an existing alert.
type AlertUpdateRequest struct {
	Active *bool `json:"active" validate:"required"`
}
