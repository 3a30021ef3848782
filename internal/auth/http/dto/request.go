// Package dto provides data transfer objects for the authentication endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/gamestats/internal/validation"
)

// LoginRequest contains the credentials submitted to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"` //nolint:gosec // request field, never logged
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
