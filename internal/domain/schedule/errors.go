package schedule

import "errors"

// Schedule domain errors
var (
	ErrAssignmentNotFound = errors.New("schedule assignment not found")
	ErrAssignmentExists   = errors.New("employee already has a schedule assignment")

	// ErrInvalidScheduleDay marks a malformed weekly-map entry. It surfaces
	// as message text inside field-level validation errors keyed by day
	// name; entries are rejected before submission, never coerced.
	ErrInvalidScheduleDay = errors.New("invalid schedule day")

	ErrEmployeeIDRequired = errors.New("employee ID is required")
)
