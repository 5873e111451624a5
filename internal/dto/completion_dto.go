package dto

import "github.com/noah-isme/siaga-go-api/internal/models"

// CompletionRequest marks a module video as watched by the caller.
type CompletionRequest struct {
	ModuleID        string  `json:"module_id" validate:"required"`
	WatchPercentage float64 `json:"watch_percentage" validate:"gte=0,lte=100"`
}

// CompletionStatusResponse reports whether the caller finished a module video.
type CompletionStatusResponse struct {
	Completed  bool                    `json:"completed"`
	Completion *models.VideoCompletion `json:"completion"`
}
