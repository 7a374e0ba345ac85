package checkclock

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/kerjahub/hris-portal-go/internal/pkg/listing"
	"github.com/kerjahub/hris-portal-go/internal/pkg/validator"
)

// ========================================
// CHECKCLOCK DTOs
// ========================================

// SubmitRequest creates one checkclock record: a clock-in, a clock-out, or a
// leave/absence entry. Location fields mirror what the resolver produced on
// the client; leave fields are only read for ANNUAL_LEAVE.
type SubmitRequest struct {
	EmployeeID   string   `json:"employee_id"`
	Type         string   `json:"type"`
	LocationName string   `json:"location_name"`
	Address      string   `json:"address"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string  `json:"end_date,omitempty"`   // YYYY-MM-DD

	ProofURL   *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.Type, RecordTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(RecordTypeValues, ", "),
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.Type == string(TypeAnnualLeave) {
		if r.StartDate == nil || validator.IsEmpty(*r.StartDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date is required for annual leave",
			})
		} else if _, valid := validator.IsValidDate(*r.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
		if r.EndDate == nil || validator.IsEmpty(*r.EndDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date is required for annual leave",
			})
		} else if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.FileHeader != nil {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "attendance proof photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordResponse is the read model for one record, including its projection.
type RecordResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      string   `json:"employee_name"`
	Jobdesk           string   `json:"jobdesk"`
	Type              string   `json:"type"`
	ClockIn           *string  `json:"clock_in,omitempty"`
	ClockOut          *string  `json:"clock_out,omitempty"`
	RawStatus         *string  `json:"raw_status,omitempty"`
	Approval          string   `json:"approval"`
	DisplayStatus     string   `json:"display_status"`
	WorkHours         string   `json:"work_hours"`
	LocationName      string   `json:"location_name"`
	Address           string   `json:"address"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	ProofName         *string  `json:"proof_name,omitempty"`
	ProofURL          *string  `json:"proof_url,omitempty"`
	ClockOutProofName *string  `json:"clock_out_proof_name,omitempty"`
	ClockOutProofURL  *string  `json:"clock_out_proof_url,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	StartDate         *string  `json:"start_date,omitempty"`
	EndDate           *string  `json:"end_date,omitempty"`
}

// ListFilter is the table query for the admin and employee listings.
type ListFilter struct {
	Search    string `json:"search"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"` // asc, desc, none
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

var listSortFields = []string{"employee_name", "jobdesk", "display_status", "employee_id", "clock_in", "clock_out"}

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

// ListResponse is one computed page plus the rollups over the filtered set.
type ListResponse struct {
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Stats      Stats            `json:"stats"`
	Records    []RecordResponse `json:"records"`
}

// DecideRequest carries one admin decision.
type DecideRequest struct {
	ID     string  `json:"-"`
	Reason *string `json:"reason,omitempty"` // read on reject only
}

// ========================================
// RAW INGESTION
// ========================================

// RawRecord is the wire shape produced by the legacy portal API. Every field
// is optional: absent or null values must degrade gracefully, never panic.
type RawRecord struct {
	ID                string   `json:"id"`
	EmployeeID        *string  `json:"employeeId"`
	EmployeeName      *string  `json:"employeeName"`
	Jobdesk           *string  `json:"jobdesk"`
	ClockIn           *string  `json:"clockIn"`
	ClockOut          *string  `json:"clockOut"`
	Status            *string  `json:"status"`
	Approval          *string  `json:"approval"`
	Type              *string  `json:"type"`
	LocationName      *string  `json:"locationName"`
	Address           *string  `json:"address"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	ProofURL          *string  `json:"proofUrl"`
	ProofName         *string  `json:"proofName"`
	ClockOutProofURL  *string  `json:"clockOutProofUrl"`
	ClockOutProofName *string  `json:"clockOutProofName"`
	StartDate         *string  `json:"startDate"`
	EndDate           *string  `json:"endDate"`
	Notes             *string  `json:"notes"`
}

// FromRaw maps a legacy payload onto a Record. Missing type defaults to
// CLOCK_IN and missing approval to PENDING, matching how the portal treated
// partial rows.
func FromRaw(raw RawRecord) Record {
	rec := Record{
		ID:           raw.ID,
		EmployeeID:   strValue(raw.EmployeeID),
		EmployeeName: strValue(raw.EmployeeName),
		Jobdesk:      strValue(raw.Jobdesk),
		Type:         TypeClockIn,
		Approval:     ApprovalPending,
		Notes:        strValue(raw.Notes),
		Location: Location{
			Name:      strValue(raw.LocationName),
			Address:   strValue(raw.Address),
			Latitude:  raw.Latitude,
			Longitude: raw.Longitude,
		},
	}

	if raw.Type != nil && validator.IsInSlice(*raw.Type, RecordTypeValues) {
		rec.Type = RecordType(*raw.Type)
	}
	if raw.Approval != nil {
		switch Approval(*raw.Approval) {
		case ApprovalApproved, ApprovalRejected, ApprovalPending:
			rec.Approval = Approval(*raw.Approval)
		}
	}
	if raw.Status != nil {
		switch RawStatus(*raw.Status) {
		case RawOnTime, RawLate:
			s := RawStatus(*raw.Status)
			rec.RawStatus = &s
		}
	}

	rec.ClockIn = parseRawTime(raw.ClockIn)
	rec.ClockOut = parseRawTime(raw.ClockOut)
	rec.StartDate = parseRawDate(raw.StartDate)
	rec.EndDate = parseRawDate(raw.EndDate)

	if raw.ProofURL != nil {
		rec.Proof = &Proof{FileName: strValue(raw.ProofName), URL: *raw.ProofURL}
	}
	if raw.ClockOutProofURL != nil {
		rec.ClockOutProof = &Proof{FileName: strValue(raw.ClockOutProofName), URL: *raw.ClockOutProofURL}
	}

	return rec
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func parseRawTime(s *string) *time.Time {
	if s == nil || validator.IsEmpty(*s) {
		return nil
	}
	if t, ok := validator.IsValidDateTime(*s); ok {
		return &t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", *s); err == nil {
		return &t
	}
	return nil
}

func parseRawDate(s *string) *time.Time {
	if s == nil || validator.IsEmpty(*s) {
		return nil
	}
	if t, ok := validator.IsValidDate(*s); ok {
		return &t
	}
	return nil
}
