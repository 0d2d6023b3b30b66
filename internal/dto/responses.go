package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gulfrate/gulfrate/internal/model"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// SnapshotResponse is the aggregated read-model for one (country, currency)
// pair. LastUpdated is the newest timestamp among the returned rows.
type SnapshotResponse struct {
	Rates       []model.RateRow `json:"rates"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

type LeadCreatedResponse struct {
	Message string  `json:"message"`
	Lead    LeadRef `json:"lead"`
}

type LeadRef struct {
	ID int64 `json:"id"`
}

type AuthResponse struct {
	Authenticated bool         `json:"authenticated"`
	Admin         *model.Admin `json:"admin,omitempty"`
}

type BulkUpdateResult struct {
	ID      int64               `json:"id"`
	Success bool                `json:"success"`
	Error   string              `json:"error,omitempty"`
	Rate    *model.ExchangeRate `json:"rate,omitempty"`
}

type BulkUpdateResponse struct {
	Updated int                `json:"updated"`
	Failed  int                `json:"failed"`
	Results []BulkUpdateResult `json:"results"`
}

// NewValidationError turns a gin binding error into a 400 payload with
// per-field messages where the validator provides them.
func NewValidationError(err error) ErrorResponse {
	resp := ErrorResponse{Message: "Validation failed"}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		resp.Message = "Validation failed: " + err.Error()
		return resp
	}

	for _, fe := range verrs {
		resp.Errors = append(resp.Errors, FieldError{
			Field:   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
			Message: validationMessage(fe),
		})
	}
	return resp
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
