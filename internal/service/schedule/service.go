package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kerjahub/hris-portal-go/internal/domain/notification"
	"github.com/kerjahub/hris-portal-go/internal/domain/schedule"
	"github.com/kerjahub/hris-portal-go/internal/fixtures"
	"github.com/kerjahub/hris-portal-go/internal/pkg/database"
	"github.com/kerjahub/hris-portal-go/internal/pkg/listing"
)

type ScheduleServiceImpl struct {
	db *database.DB
	schedule.Repository
	notificationSvc notification.Service
}

func NewScheduleService(db *database.DB, repo schedule.Repository, notificationSvc notification.Service) schedule.Service {
	return &ScheduleServiceImpl{
		db:              db,
		Repository:      repo,
		notificationSvc: notificationSvc,
	}
}

// Assign implements schedule.Service. Malformed weekly-map entries are
// rejected here, before anything reaches storage. An omitted weekly map
// falls back to the canonical times for the chosen shift type.
func (s *ScheduleServiceImpl) Assign(ctx context.Context, req schedule.AssignRequest) (schedule.AssignmentResponse, error) {
	if daysOmitted(req.Days) {
		req.Days = fixtures.GetDefaultShiftTimes(schedule.ShiftType(req.ShiftType))
	}

	if err := req.Validate(); err != nil {
		return schedule.AssignmentResponse{}, err
	}

	now := time.Now().UTC()
	assignment := schedule.Assignment{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		ShiftType:  schedule.ShiftType(req.ShiftType),
		Days:       req.Days,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	saved, err := s.Repository.Upsert(ctx, assignment)
	if err != nil {
		return schedule.AssignmentResponse{}, fmt.Errorf("failed to save schedule assignment: %w", err)
	}

	_ = s.notificationSvc.Notify(ctx, saved.EmployeeID, nil, notification.TypeScheduleUpdated,
		"Schedule updated", "Your weekly shift assignment has been updated",
		map[string]interface{}{"shift_type": string(saved.ShiftType)})

	return mapAssignmentToResponse(saved), nil
}

// List implements schedule.Service. It shares the attendance table's fixed
// filter -> sort -> paginate pipeline.
func (s *ScheduleServiceImpl) List(ctx context.Context, filter schedule.ListFilter) (schedule.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return schedule.ListResponse{}, err
	}

	assignments, err := s.Repository.List(ctx)
	if err != nil {
		return schedule.ListResponse{}, fmt.Errorf("failed to list schedule assignments: %w", err)
	}

	page := listing.Apply(assignments, filter.Query(), assignmentFields)

	responses := make([]schedule.AssignmentResponse, 0, len(page.Items))
	for _, a := range page.Items {
		responses = append(responses, mapAssignmentToResponse(a))
	}

	return schedule.ListResponse{
		TotalCount:  page.TotalCount,
		Page:        page.Page,
		Limit:       page.PageSize,
		TotalPages:  page.TotalPages,
		Assignments: responses,
	}, nil
}

// GetByEmployee implements schedule.Service.
func (s *ScheduleServiceImpl) GetByEmployee(ctx context.Context, employeeID string) (schedule.AssignmentResponse, error) {
	assignment, err := s.Repository.GetByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrAssignmentNotFound) {
			return schedule.AssignmentResponse{}, schedule.ErrAssignmentNotFound
		}
		return schedule.AssignmentResponse{}, fmt.Errorf("failed to get schedule assignment: %w", err)
	}
	return mapAssignmentToResponse(assignment), nil
}

// Delete implements schedule.Service.
func (s *ScheduleServiceImpl) Delete(ctx context.Context, employeeID string) error {
	if err := s.Repository.Delete(ctx, employeeID); err != nil {
		if errors.Is(err, schedule.ErrAssignmentNotFound) {
			return schedule.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete schedule assignment: %w", err)
	}
	return nil
}

// daysOmitted reports whether the request carried no weekly map at all.
// A deliberate all-off week still sets IsOff and is not treated as omitted.
func daysOmitted(days [schedule.DaysPerWeek]schedule.DayEntry) bool {
	for _, d := range days {
		if d != (schedule.DayEntry{}) {
			return false
		}
	}
	return true
}

func assignmentFields(a schedule.Assignment) map[string]string {
	return map[string]string{
		"employee_name": a.EmployeeName,
		"jobdesk":       a.Jobdesk,
		"shift_type":    string(a.ShiftType),
		"employee_id":   a.EmployeeID,
	}
}

func mapAssignmentToResponse(a schedule.Assignment) schedule.AssignmentResponse {
	return schedule.AssignmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Jobdesk:      a.Jobdesk,
		ShiftType:    string(a.ShiftType),
		Days:         a.Days,
	}
}
