package schedule

import (
	"context"
	"strings"

	"github.com/kerjahub/hris-portal-go/internal/pkg/listing"
	"github.com/kerjahub/hris-portal-go/internal/pkg/validator"
)

// ========================================
// SCHEDULE ASSIGNMENT DTOs
// ========================================

// AssignRequest creates or replaces an employee's weekly shift assignment.
type AssignRequest struct {
	EmployeeID string                `json:"employee_id"`
	ShiftType  string                `json:"shift_type"`
	Days       [DaysPerWeek]DayEntry `json:"days"`
}

// Validate enforces the weekly-map invariant for each of the 7 days:
// an off day must have no times, a working day needs both with start < end.
// Violations come back as field-level errors keyed by day name.
func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.ShiftType, ShiftTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be one of: " + strings.Join(ShiftTypeValues, ", "),
		})
	}

	for i, day := range r.Days {
		errs = append(errs, validateDay(DayNames[i], day)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateDay(name string, day DayEntry) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if day.IsOff {
		if !validator.IsEmpty(day.Start) || !validator.IsEmpty(day.End) {
			errs = append(errs, validator.ValidationError{
				Field:   name,
				Message: ErrInvalidScheduleDay.Error() + ": off day must not have start or end times",
			})
		}
		return errs
	}

	start, startOK := validator.IsValidClockTime(day.Start)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   name,
			Message: ErrInvalidScheduleDay.Error() + ": start must be a valid HH:MM time",
		})
	}
	end, endOK := validator.IsValidClockTime(day.End)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   name,
			Message: ErrInvalidScheduleDay.Error() + ": end must be a valid HH:MM time",
		})
	}
	if startOK && endOK && !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   name,
			Message: ErrInvalidScheduleDay.Error() + ": start must be before end",
		})
	}

	return errs
}

// AssignmentResponse is the read model for one assignment.
type AssignmentResponse struct {
	ID           string                `json:"id"`
	EmployeeID   string                `json:"employee_id"`
	EmployeeName string                `json:"employee_name"`
	Jobdesk      string                `json:"jobdesk"`
	ShiftType    string                `json:"shift_type"`
	Days         [DaysPerWeek]DayEntry `json:"days"`
}

// ListFilter is the table query for the schedule listing. It shares the
// attendance table's operator contract.
type ListFilter struct {
	Search    string `json:"search"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

var listSortFields = []string{"employee_name", "jobdesk", "shift_type", "employee_id"}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = listing.DefaultPageSize
	}

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, listSortFields) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of: " + strings.Join(listSortFields, ", "),
		})
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc", "none"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc, none",
			})
		}
	} else {
		f.SortOrder = "none"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Query converts the filter to the generic listing query.
func (f *ListFilter) Query() listing.Query {
	return listing.Query{
		Search:    f.Search,
		SortBy:    f.SortBy,
		SortOrder: listing.SortOrder(strings.ToLower(f.SortOrder)),
		Page:      f.Page,
		PageSize:  f.Limit,
	}
}

type ListResponse struct {
	TotalCount  int                  `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Assignments []AssignmentResponse `json:"assignments"`
}

// Service defines business logic for schedule assignments.
type Service interface {
	// Assign creates or replaces an employee's weekly assignment.
	Assign(ctx context.Context, req AssignRequest) (AssignmentResponse, error)

	// List retrieves assignments with list operators applied.
	List(ctx context.Context, filter ListFilter) (ListResponse, error)

	// GetByEmployee retrieves one employee's assignment.
	GetByEmployee(ctx context.Context, employeeID string) (AssignmentResponse, error)

	// Delete removes an employee's assignment.
	Delete(ctx context.Context, employeeID string) error
}
