// Package dto provides data transfer objects for the statistics endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/gamestats/internal/validation"
)

// MatchesRequest selects the matches of a server on a calendar day.
type MatchesRequest struct {
	Endpoint string `uri:"endpoint"`
	Date     string `uri:"date"`
}

// Validate checks if the matches request is valid.
func (r *MatchesRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Endpoint,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Date,
			validation.Required,
			customValidation.Date,
		),
	)
}
