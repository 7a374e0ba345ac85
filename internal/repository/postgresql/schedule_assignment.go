package postgresql

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/hris-portal-go/internal/domain/schedule"
	"github.com/kerjahub/hris-portal-go/internal/pkg/database"
)

type scheduleAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewScheduleAssignmentRepository(db *database.DB) schedule.Repository {
	return &scheduleAssignmentRepositoryImpl{db: db}
}

// Upsert implements schedule.Repository. One assignment per employee; a
// re-assignment replaces the weekly map in place. The employee's display
// fields are refreshed from the users table on the way out.
func (r *scheduleAssignmentRepositoryImpl) Upsert(ctx context.Context, assignment schedule.Assignment) (schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	days, err := json.Marshal(assignment.Days)
	if err != nil {
		return schedule.Assignment{}, err
	}

	query := `
		INSERT INTO schedule_assignments (id, employee_id, shift_type, days)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id) DO UPDATE
		SET shift_type = EXCLUDED.shift_type, days = EXCLUDED.days, updated_at = NOW()
		RETURNING id, employee_id, shift_type, days, created_at, updated_at
	`

	saved, err := scanAssignment(q.QueryRow(ctx, query, assignment.ID, assignment.EmployeeID, assignment.ShiftType, days))
	if err != nil {
		return schedule.Assignment{}, err
	}

	r.fillEmployeeFields(ctx, &saved)
	return saved, nil
}

// GetByEmployee implements schedule.Repository.
func (r *scheduleAssignmentRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) (schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.shift_type, s.days, s.created_at, s.updated_at,
			   COALESCE(u.employee_name, ''), COALESCE(u.jobdesk, '')
		FROM schedule_assignments s
		LEFT JOIN users u ON u.employee_id = s.employee_id
		WHERE s.employee_id = $1
	`

	assignment, err := scanAssignmentWithEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Assignment{}, schedule.ErrAssignmentNotFound
		}
		return schedule.Assignment{}, err
	}
	return assignment, nil
}

// List implements schedule.Repository.
func (r *scheduleAssignmentRepositoryImpl) List(ctx context.Context) ([]schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.shift_type, s.days, s.created_at, s.updated_at,
			   COALESCE(u.employee_name, ''), COALESCE(u.jobdesk, '')
		FROM schedule_assignments s
		LEFT JOIN users u ON u.employee_id = s.employee_id
		ORDER BY s.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []schedule.Assignment
	for rows.Next() {
		assignment, err := scanAssignmentWithEmployee(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	return assignments, rows.Err()
}

// Delete implements schedule.Repository.
func (r *scheduleAssignmentRepositoryImpl) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedule_assignments WHERE employee_id = $1`, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrAssignmentNotFound
	}
	return nil
}

func (r *scheduleAssignmentRepositoryImpl) fillEmployeeFields(ctx context.Context, assignment *schedule.Assignment) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COALESCE(employee_name, ''), COALESCE(jobdesk, '') FROM users WHERE employee_id = $1`
	// Missing user rows leave the display fields empty.
	_ = q.QueryRow(ctx, query, assignment.EmployeeID).Scan(&assignment.EmployeeName, &assignment.Jobdesk)
}

func scanAssignment(row rowScanner) (schedule.Assignment, error) {
	var assignment schedule.Assignment
	var days []byte

	err := row.Scan(
		&assignment.ID,
		&assignment.EmployeeID,
		&assignment.ShiftType,
		&days,
		&assignment.CreatedAt,
		&assignment.UpdatedAt,
	)
	if err != nil {
		return schedule.Assignment{}, err
	}

	if err := json.Unmarshal(days, &assignment.Days); err != nil {
		return schedule.Assignment{}, err
	}
	return assignment, nil
}

func scanAssignmentWithEmployee(row rowScanner) (schedule.Assignment, error) {
	var assignment schedule.Assignment
	var days []byte

	err := row.Scan(
		&assignment.ID,
		&assignment.EmployeeID,
		&assignment.ShiftType,
		&days,
		&assignment.CreatedAt,
		&assignment.UpdatedAt,
		&assignment.EmployeeName,
		&assignment.Jobdesk,
	)
	if err != nil {
		return schedule.Assignment{}, err
	}

	if err := json.Unmarshal(days, &assignment.Days); err != nil {
		return schedule.Assignment{}, err
	}
	return assignment, nil
}
