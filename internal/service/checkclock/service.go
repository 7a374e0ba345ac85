package checkclock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/hris-portal-go/internal/domain/checkclock"
	"github.com/kerjahub/hris-portal-go/internal/domain/location"
	"github.com/kerjahub/hris-portal-go/internal/domain/notification"
	"github.com/kerjahub/hris-portal-go/internal/domain/schedule"
	"github.com/kerjahub/hris-portal-go/internal/pkg/database"
	"github.com/kerjahub/hris-portal-go/internal/pkg/listing"
	"github.com/kerjahub/hris-portal-go/internal/service/file"
)

type CheckclockServiceImpl struct {
	db *database.DB
	checkclock.Repository
	scheduleRepo    schedule.Repository
	locationService location.Service
	fileService     file.FileService
	notificationSvc notification.Service

	// loc is the portal timezone. Day boundaries (duplicate clock-in, open
	// sessions, absent marking) follow this zone, not UTC: a 23:00 UTC
	// Monday clock-in belongs to Tuesday in Asia/Jakarta.
	loc *time.Location
	now func() time.Time
}

func NewCheckclockService(
	db *database.DB,
	repo checkclock.Repository,
	scheduleRepo schedule.Repository,
	locationService location.Service,
	fileService file.FileService,
	notificationSvc notification.Service,
	loc *time.Location,
) checkclock.Service {
	if loc == nil {
		loc = time.UTC
	}
	return &CheckclockServiceImpl{
		db:              db,
		Repository:      repo,
		scheduleRepo:    scheduleRepo,
		locationService: locationService,
		fileService:     fileService,
		notificationSvc: notificationSvc,
		loc:             loc,
		now:             time.Now,
	}
}

func claimString(ctx context.Context, key string) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	value, ok := claims[key].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s claim is missing or invalid", key)
	}
	return value, nil
}

// Submit implements checkclock.Service.
func (s *CheckclockServiceImpl) Submit(ctx context.Context, req checkclock.SubmitRequest) (checkclock.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return checkclock.RecordResponse{}, err
	}

	employeeID, err := claimString(ctx, "employee_id")
	if err != nil {
		return checkclock.RecordResponse{}, err
	}
	if req.EmployeeID != "" && req.EmployeeID != employeeID {
		role, _ := claimString(ctx, "role")
		if role != "admin" {
			return checkclock.RecordResponse{}, checkclock.ErrUnauthorized
		}
		employeeID = req.EmployeeID
	}

	nowUTC := s.now().UTC()
	dateLocal := nowUTC.In(s.loc).Format("2006-01-02")

	switch checkclock.RecordType(req.Type) {
	case checkclock.TypeClockOut:
		return s.submitClockOut(ctx, req, employeeID, nowUTC, dateLocal)
	default:
		return s.submitNewRecord(ctx, req, employeeID, nowUTC, dateLocal)
	}
}

func (s *CheckclockServiceImpl) submitNewRecord(ctx context.Context, req checkclock.SubmitRequest, employeeID string, nowUTC time.Time, dateLocal string) (checkclock.RecordResponse, error) {
	recType := checkclock.RecordType(req.Type)

	rec := checkclock.Record{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Type:       recType,
		Approval:   checkclock.ApprovalPending,
		Notes:      req.Notes,
		CreatedAt:  nowUTC,
		UpdatedAt:  nowUTC,
	}

	if recType == checkclock.TypeClockIn {
		hasClockedIn, err := s.Repository.HasClockedInOn(ctx, employeeID, dateLocal)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return checkclock.RecordResponse{}, fmt.Errorf("failed to check for existing clock-in: %w", err)
		}
		if hasClockedIn {
			return checkclock.RecordResponse{}, checkclock.ErrAlreadyClockedIn
		}

		rec.ClockIn = &nowUTC
		rec.RawStatus = s.deriveRawStatus(ctx, employeeID, nowUTC)
	}

	if recType == checkclock.TypeAnnualLeave || recType == checkclock.TypeSickLeave {
		rec.StartDate = parseDatePtr(req.StartDate)
		rec.EndDate = parseDatePtr(req.EndDate)
	}

	// Location evidence is resolved exactly once here; the stored value
	// never changes afterwards.
	resolved, err := s.locationService.Resolve(ctx, location.ResolveRequest{
		PresetKey: req.LocationName,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	})
	if err != nil {
		if !errors.Is(err, location.ErrPresetNotFound) {
			return checkclock.RecordResponse{}, fmt.Errorf("failed to resolve location: %w", err)
		}
		// Free-form location: keep the submitted name and coordinates.
		resolved = location.Resolved{
			Name:      req.LocationName,
			Address:   req.Address,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		}
	}
	rec.Location = checkclock.Location{
		Name:      resolved.Name,
		Address:   resolved.Address,
		Latitude:  resolved.Latitude,
		Longitude: resolved.Longitude,
	}

	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.UploadProof(ctx, employeeID, nowUTC, req.File, req.FileHeader.Filename, "CLOCK_IN")
		if err != nil {
			return checkclock.RecordResponse{}, fmt.Errorf("failed to upload attendance proof: %w", err)
		}
		rec.Proof = &checkclock.Proof{FileName: req.FileHeader.Filename, URL: path}
	}

	created, err := s.Repository.Create(ctx, rec)
	if err != nil {
		return checkclock.RecordResponse{}, fmt.Errorf("failed to create checkclock record: %w", err)
	}

	_ = s.notificationSvc.Notify(ctx, employeeID, nil, notification.TypeAttendanceSubmitted,
		"Checkclock submitted", "Your attendance record is waiting for approval",
		map[string]interface{}{"record_id": created.ID})

	return mapRecordToResponse(created)
}

func (s *CheckclockServiceImpl) submitClockOut(ctx context.Context, req checkclock.SubmitRequest, employeeID string, nowUTC time.Time, dateLocal string) (checkclock.RecordResponse, error) {
	rec, err := s.Repository.GetOpenClockIn(ctx, employeeID, dateLocal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, checkclock.ErrRecordNotFound) {
			return checkclock.RecordResponse{}, checkclock.ErrNotClockedIn
		}
		return checkclock.RecordResponse{}, fmt.Errorf("failed to get open clock-in session: %w", err)
	}

	if rec.ClockOut != nil {
		return checkclock.RecordResponse{}, checkclock.ErrAlreadyClockedOut
	}

	var proof *checkclock.Proof
	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.UploadProof(ctx, employeeID, nowUTC, req.File, req.FileHeader.Filename, "CLOCK_OUT")
		if err != nil {
			return checkclock.RecordResponse{}, fmt.Errorf("failed to upload attendance proof: %w", err)
		}
		proof = &checkclock.Proof{FileName: req.FileHeader.Filename, URL: path}
	}

	if err := s.Repository.SetClockOut(ctx, rec.ID, nowUTC, proof); err != nil {
		return checkclock.RecordResponse{}, fmt.Errorf("failed to set clock-out: %w", err)
	}

	rec.ClockOut = &nowUTC
	rec.ClockOutProof = proof
	rec.UpdatedAt = nowUTC

	return mapRecordToResponse(rec)
}

// deriveRawStatus computes the punctuality hint against the employee's
// weekly assignment. Without an assignment (or on an off day) the hint stays
// empty: there is no scheduled start to be late against.
func (s *CheckclockServiceImpl) deriveRawStatus(ctx context.Context, employeeID string, nowUTC time.Time) *checkclock.RawStatus {
	assignment, err := s.scheduleRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil
	}

	// Assignments are written in portal wall-clock time, so both the
	// weekday and the scheduled start are evaluated in that zone.
	nowLocal := nowUTC.In(s.loc)
	day := assignment.DayFor(nowLocal.Weekday())
	if day.IsOff || day.Start == "" {
		return nil
	}

	start, err := time.Parse("15:04", day.Start)
	if err != nil {
		return nil
	}
	scheduledStart := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(),
		start.Hour(), start.Minute(), 0, 0, s.loc)

	status := checkclock.RawOnTime
	if nowLocal.After(scheduledStart) {
		status = checkclock.RawLate
	}
	return &status
}

// List implements checkclock.Service.
func (s *CheckclockServiceImpl) List(ctx context.Context, filter checkclock.ListFilter) (checkclock.ListResponse, error) {
	records, err := s.Repository.List(ctx)
	if err != nil {
		return checkclock.ListResponse{}, fmt.Errorf("failed to list checkclock records: %w", err)
	}
	return applyListOperators(records, filter)
}

// ListMine implements checkclock.Service.
func (s *CheckclockServiceImpl) ListMine(ctx context.Context, filter checkclock.ListFilter) (checkclock.ListResponse, error) {
	employeeID, err := claimString(ctx, "employee_id")
	if err != nil {
		return checkclock.ListResponse{}, err
	}

	records, err := s.Repository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return checkclock.ListResponse{}, fmt.Errorf("failed to list my checkclock records: %w", err)
	}
	return applyListOperators(records, filter)
}

// applyListOperators runs the fixed filter -> sort -> paginate pipeline and
// computes statistics over the full filtered set, not the visible page.
func applyListOperators(records []checkclock.Record, filter checkclock.ListFilter) (checkclock.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return checkclock.ListResponse{}, err
	}
	q := filter.Query()

	views, err := buildViews(records)
	if err != nil {
		return checkclock.ListResponse{}, err
	}

	filtered := listing.Filter(views, q.Search, viewFields)
	stats := checkclock.ComputeStats(viewRecords(filtered))
	sorted := listing.Sort(filtered, q.SortBy, q.SortOrder, viewFields)
	page := listing.Paginate(sorted, q)

	responses := make([]checkclock.RecordResponse, 0, len(page.Items))
	for _, v := range page.Items {
		responses = append(responses, v.resp)
	}

	return checkclock.ListResponse{
		TotalCount: page.TotalCount,
		Page:       page.Page,
		Limit:      page.PageSize,
		TotalPages: page.TotalPages,
		Stats:      stats,
		Records:    responses,
	}, nil
}

// Get implements checkclock.Service.
func (s *CheckclockServiceImpl) Get(ctx context.Context, id string) (checkclock.RecordResponse, error) {
	rec, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, checkclock.ErrRecordNotFound) {
			return checkclock.RecordResponse{}, checkclock.ErrRecordNotFound
		}
		return checkclock.RecordResponse{}, fmt.Errorf("failed to get checkclock record: %w", err)
	}
	return mapRecordToResponse(rec)
}

// Approve implements checkclock.Service.
func (s *CheckclockServiceImpl) Approve(ctx context.Context, req checkclock.DecideRequest) (checkclock.RecordResponse, error) {
	return s.decide(ctx, req, checkclock.DecisionApprove)
}

// Reject implements checkclock.Service.
func (s *CheckclockServiceImpl) Reject(ctx context.Context, req checkclock.DecideRequest) (checkclock.RecordResponse, error) {
	return s.decide(ctx, req, checkclock.DecisionReject)
}

func (s *CheckclockServiceImpl) decide(ctx context.Context, req checkclock.DecideRequest, decision checkclock.Decision) (checkclock.RecordResponse, error) {
	userID, err := claimString(ctx, "user_id")
	if err != nil {
		return checkclock.RecordResponse{}, err
	}

	rec, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, checkclock.ErrRecordNotFound) {
			return checkclock.RecordResponse{}, checkclock.ErrRecordNotFound
		}
		return checkclock.RecordResponse{}, fmt.Errorf("failed to get checkclock record: %w", err)
	}

	now := s.now().UTC()
	if _, err := checkclock.Decide(&rec, decision, now); err != nil {
		return checkclock.RecordResponse{}, err
	}

	// The repository re-checks `approval = 'PENDING'` inside the UPDATE, so
	// a concurrent decision that committed first surfaces here as
	// ErrInvalidTransition. That loss is reported, never retried.
	updated, err := s.Repository.UpdateApproval(ctx, req.ID, rec.Approval, userID, req.Reason, now)
	if err != nil {
		if errors.Is(err, checkclock.ErrInvalidTransition) {
			return checkclock.RecordResponse{}, checkclock.ErrInvalidTransition
		}
		return checkclock.RecordResponse{}, fmt.Errorf("failed to commit approval decision: %w", err)
	}

	// Exactly one notification per committed transition.
	notifType := notification.TypeAttendanceApproved
	title := "Checkclock approved"
	message := "Your attendance record has been approved"
	if decision == checkclock.DecisionReject {
		notifType = notification.TypeAttendanceRejected
		title = "Checkclock rejected"
		message = "Your attendance record has been rejected"
		if req.Reason != nil {
			message = fmt.Sprintf("Your attendance record has been rejected: %s", *req.Reason)
		}
	}
	_ = s.notificationSvc.Notify(ctx, updated.EmployeeID, &userID, notifType, title, message,
		map[string]interface{}{"record_id": updated.ID})

	return mapRecordToResponse(updated)
}

// MarkAbsentees implements checkclock.Service.
func (s *CheckclockServiceImpl) MarkAbsentees(ctx context.Context, dateLocal string) (int, error) {
	employeeIDs, err := s.Repository.ListEmployeesWithoutRecordOn(ctx, dateLocal)
	if err != nil {
		return 0, fmt.Errorf("failed to list absent candidates: %w", err)
	}

	date, err := time.Parse("2006-01-02", dateLocal)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", dateLocal, err)
	}

	marked := 0
	for _, employeeID := range employeeIDs {
		if off := s.isScheduledOff(ctx, employeeID, date); off {
			continue
		}
		now := s.now().UTC()
		rec := checkclock.Record{
			ID:         uuid.New().String(),
			EmployeeID: employeeID,
			Type:       checkclock.TypeAbsent,
			Approval:   checkclock.ApprovalPending,
			StartDate:  &date,
			EndDate:    &date,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, err := s.Repository.Create(ctx, rec); err != nil {
			return marked, fmt.Errorf("failed to create absent record for %s: %w", employeeID, err)
		}
		marked++
	}
	return marked, nil
}

func (s *CheckclockServiceImpl) isScheduledOff(ctx context.Context, employeeID string, date time.Time) bool {
	assignment, err := s.scheduleRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		// No assignment: nothing scheduled, so nothing to be absent from.
		return true
	}
	return assignment.DayFor(date.Weekday()).IsOff
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
