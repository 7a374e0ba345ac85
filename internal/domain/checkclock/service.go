package checkclock

import (
	"context"
)

// Service defines business logic for checkclock operations
type Service interface {
	// Submit records a clock-in, clock-out, or leave/absence event for the
	// authenticated employee. Location evidence is resolved once here.
	Submit(ctx context.Context, req SubmitRequest) (RecordResponse, error)

	// List retrieves all records with list operators applied (admin).
	List(ctx context.Context, filter ListFilter) (ListResponse, error)

	// ListMine retrieves the authenticated employee's records.
	ListMine(ctx context.Context, filter ListFilter) (ListResponse, error)

	// Get retrieves a single record by ID.
	Get(ctx context.Context, id string) (RecordResponse, error)

	// Approve commits an APPROVE decision on a pending record.
	Approve(ctx context.Context, req DecideRequest) (RecordResponse, error)

	// Reject commits a REJECT decision on a pending record.
	Reject(ctx context.Context, req DecideRequest) (RecordResponse, error)

	// MarkAbsentees creates ABSENT records for employees without any record
	// on the given local date (run by the nightly job).
	MarkAbsentees(ctx context.Context, dateLocal string) (int, error)
}
