package reports

import (
	"fmt"

	"github.com/elyebdri/maurifind/internal/features/cities"
	"github.com/elyebdri/maurifind/internal/pkg/validator"
	errs "github.com/elyebdri/maurifind/pkg/errors"
)

// invalid wraps errs.ErrValidation so callers can match the class of the
// failure while the message stays field-specific.
func invalid(msg string) error {
	return fmt.Errorf("%w: %s", errs.ErrValidation, msg)
}

func ValidateCreateReport(req *CreateReportRequest) error {
	if !validator.IsNonEmpty(req.Title) {
		return invalid("title is required")
	}
	if !validator.IsNonEmpty(req.Description) {
		return invalid("description is required")
	}
	if !isValidCategory(req.Category) {
		return invalid("category must be one of: person, object, animal")
	}
	if !isValidStatus(req.Status) {
		return invalid("status must be one of: lost, found")
	}
	if !cities.IsKnown(req.LocationName) {
		return invalid("locationName must be a known city")
	}
	if !validator.IsNonEmpty(req.ContactName) {
		return invalid("contactName is required")
	}
	if !validator.IsValidPhone(req.ContactPhone) {
		return invalid("contactPhone must be a valid Mauritanian phone number")
	}
	if req.DateTimeLostOrFound != "" && !validator.IsValidDateTime(req.DateTimeLostOrFound) {
		return invalid("dateTimeLostOrFound must be an RFC 3339 timestamp")
	}
	return nil
}

func ValidateUpdateReport(req *UpdateReportRequest) error {
	if req.Category != "" && !isValidCategory(req.Category) {
		return invalid("category must be one of: person, object, animal")
	}
	if req.Status != "" && !isValidStatus(req.Status) {
		return invalid("status must be one of: lost, found")
	}
	if req.LocationName != "" && !cities.IsKnown(req.LocationName) {
		return invalid("locationName must be a known city")
	}
	if req.ContactPhone != "" && !validator.IsValidPhone(req.ContactPhone) {
		return invalid("contactPhone must be a valid Mauritanian phone number")
	}
	if req.DateTimeLostOrFound != "" && !validator.IsValidDateTime(req.DateTimeLostOrFound) {
		return invalid("dateTimeLostOrFound must be an RFC 3339 timestamp")
	}
	return nil
}

func isValidCategory(category string) bool {
	switch category {
	case CategoryPerson, CategoryObject, CategoryAnimal:
		return true
	}
	return false
}

func isValidStatus(status string) bool {
	switch status {
	case StatusLost, StatusFound:
		return true
	}
	return false
}
