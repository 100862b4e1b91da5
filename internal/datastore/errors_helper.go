// Package datastore provides error handling helpers for database operations
package datastore

import (
	"fmt"
	"strings"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/errors"
)

// dbError creates a properly categorized database error with context
func dbError(err error, operation string) error {
	priority := errors.PriorityMedium

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "disk full") ||
		strings.Contains(errStr, "no space") ||
		strings.Contains(errStr, "corrupt") ||
		strings.Contains(errStr, "malformed") {
		priority = errors.PriorityCritical
	}

	return errors.New(err).
		Component("datastore").
		Category(errors.CategoryDatabase).
		Priority(priority).
		Context("operation", operation).
		Build()
}

// validationError creates a validation error for rejected input
func validationError(message, field string) error {
	return errors.Newf("%s", message).
		Component("datastore").
		Category(errors.CategoryValidation).
		Context("field", field).
		Build()
}

// notFoundError creates a not found error (low priority, expected condition)
func notFoundError(resource string, id uint) error {
	return errors.Newf("%s %d not found", resource, id).
		Component("datastore").
		Category(errors.CategoryNotFound).
		Priority(errors.PriorityLow).
		Context("resource", resource).
		Context("identifier", fmt.Sprintf("%d", id)).
		Build()
}
