// Package validation holds the custom request validation rules registered on gin's validator.
package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Custom tags usable in binding struct tags
const (
	// TagISODate accepts YYYY-MM-DD calendar dates
	TagISODate = "isodate"
	// TagNotBlank rejects strings made only of whitespace
	TagNotBlank = "notblank"
)

// DateLayout is the calendar date format accepted by TagISODate
const DateLayout = "2006-01-02"

// Messages returns the human-readable message for a custom tag failure
var Messages = map[string]string{
	TagISODate:  "must be a date in YYYY-MM-DD format",
	TagNotBlank: "cannot be blank",
}

// RegisterRules installs the custom tags on v
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation(TagISODate, isISODate); err != nil {
		return err
	}
	return v.RegisterValidation(TagNotBlank, isNotBlank)
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
