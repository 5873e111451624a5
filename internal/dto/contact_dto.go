package dto

// ContactRequest carries the payload for emergency-contact create and update.
type ContactRequest struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description"`
}
