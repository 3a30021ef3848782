// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/gamestats/internal/errors"
)

// DateLayout is the calendar date format accepted in request paths.
const DateLayout = "2006-01-02"

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9._\-]+$`)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// Username restricts usernames to letters, digits, dots, dashes and underscores.
var Username = validation.NewStringRuleWithError(
	usernameRegex.MatchString,
	validation.NewError("validation_username", "must contain only letters, digits, '.', '-' or '_'"),
)

// Date validates a YYYY-MM-DD calendar date.
var Date = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := time.Parse(DateLayout, s)
		return err == nil
	},
	validation.NewError("validation_date", "must be a date in YYYY-MM-DD format"),
)
