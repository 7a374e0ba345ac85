package checkclock

import (
	"context"
	"time"
)

// Repository defines data access for checkclock records. List operators
// (filter/sort/paginate) run in the service layer over the fetched set; the
// repository only owns durability and the approval transition guard.
type Repository interface {
	// Create persists a new record in state (type, approval=PENDING).
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByID retrieves one record.
	GetByID(ctx context.Context, id string) (Record, error)

	// List retrieves all records, newest first.
	List(ctx context.Context) ([]Record, error)

	// ListByEmployee retrieves one employee's records, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// GetOpenClockIn returns the employee's CLOCK_IN record for the given
	// local date that has no clock-out yet.
	GetOpenClockIn(ctx context.Context, employeeID string, dateLocal string) (Record, error)

	// HasClockedInOn reports whether the employee already has a CLOCK_IN
	// record on the given local date.
	HasClockedInOn(ctx context.Context, employeeID string, dateLocal string) (bool, error)

	// SetClockOut closes an open clock-in session with the clock-out
	// timestamp and its independent proof.
	SetClockOut(ctx context.Context, id string, clockOut time.Time, proof *Proof) error

	// UpdateApproval commits one approval transition. The update is guarded
	// by `approval = 'PENDING'`: when another decision already won, no row
	// matches and ErrInvalidTransition is returned, so concurrent deciders
	// cannot silently overwrite each other.
	UpdateApproval(ctx context.Context, id string, to Approval, decidedBy string, reason *string, at time.Time) (Record, error)

	// ListEmployeesWithoutRecordOn returns employee IDs that have no record
	// of any type on the given local date. Used by the absent marker job.
	ListEmployeesWithoutRecordOn(ctx context.Context, dateLocal string) ([]string, error)
}
