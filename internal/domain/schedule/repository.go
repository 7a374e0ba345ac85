package schedule

import "context"

// Repository defines data access for weekly shift assignments.
type Repository interface {
	// Upsert creates or replaces the employee's assignment.
	Upsert(ctx context.Context, assignment Assignment) (Assignment, error)

	// GetByEmployee retrieves one employee's assignment.
	GetByEmployee(ctx context.Context, employeeID string) (Assignment, error)

	// List retrieves all assignments.
	List(ctx context.Context) ([]Assignment, error)

	// Delete removes an employee's assignment.
	Delete(ctx context.Context, employeeID string) error
}
