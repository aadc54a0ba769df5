package dto

import "github.com/ahmetcoskunkizilkaya/stresscast/internal/validation"

type ErrorResponse struct {
	Error  bool                    `json:"error"`
	Detail string                  `json:"detail"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	DB        string `json:"db"`
	Timestamp string `json:"timestamp"`
}
