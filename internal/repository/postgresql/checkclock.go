package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/hris-portal-go/internal/domain/checkclock"
	"github.com/kerjahub/hris-portal-go/internal/pkg/database"
)

const checkclockColumns = `
	id, employee_id, employee_name, jobdesk, type, clock_in, clock_out,
	raw_status, approval, location_name, location_address, latitude, longitude,
	proof_name, proof_url, clock_out_proof_name, clock_out_proof_url,
	notes, start_date, end_date, created_at, updated_at
`

type checkclockRepositoryImpl struct {
	db *database.DB
	// timezone is the IANA zone name used to convert stored timestamps to
	// portal-local dates in day-boundary queries.
	timezone string
}

func NewCheckclockRepository(db *database.DB, timezone string) checkclock.Repository {
	if timezone == "" {
		timezone = "UTC"
	}
	return &checkclockRepositoryImpl{db: db, timezone: timezone}
}

// Create implements checkclock.Repository.
func (r *checkclockRepositoryImpl) Create(ctx context.Context, rec checkclock.Record) (checkclock.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO checkclock_records (
			id, employee_id, employee_name, jobdesk, type, clock_in, clock_out,
			raw_status, approval, location_name, location_address, latitude, longitude,
			proof_name, proof_url, clock_out_proof_name, clock_out_proof_url,
			notes, start_date, end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING ` + checkclockColumns

	var proofName, proofURL, outProofName, outProofURL *string
	if rec.Proof != nil {
		proofName = &rec.Proof.FileName
		proofURL = &rec.Proof.URL
	}
	if rec.ClockOutProof != nil {
		outProofName = &rec.ClockOutProof.FileName
		outProofURL = &rec.ClockOutProof.URL
	}

	row := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.EmployeeName,
		rec.Jobdesk,
		rec.Type,
		rec.ClockIn,
		rec.ClockOut,
		rec.RawStatus,
		rec.Approval,
		rec.Location.Name,
		rec.Location.Address,
		rec.Location.Latitude,
		rec.Location.Longitude,
		proofName,
		proofURL,
		outProofName,
		outProofURL,
		rec.Notes,
		rec.StartDate,
		rec.EndDate,
	)

	created, err := scanRecord(row)
	if err != nil {
		return checkclock.Record{}, err
	}
	return created, nil
}

// GetByID implements checkclock.Repository.
func (r *checkclockRepositoryImpl) GetByID(ctx context.Context, id string) (checkclock.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + checkclockColumns + ` FROM checkclock_records WHERE id = $1`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return checkclock.Record{}, checkclock.ErrRecordNotFound
		}
		return checkclock.Record{}, err
	}
	return rec, nil
}

// List implements checkclock.Repository.
func (r *checkclockRepositoryImpl) List(ctx context.Context) ([]checkclock.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + checkclockColumns + ` FROM checkclock_records ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListByEmployee implements checkclock.Repository.
func (r *checkclockRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]checkclock.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkclockColumns + `
		FROM checkclock_records
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// GetOpenClockIn implements checkclock.Repository.
func (r *checkclockRepositoryImpl) GetOpenClockIn(ctx context.Context, employeeID string, dateLocal string) (checkclock.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkclockColumns + `
		FROM checkclock_records
		WHERE employee_id = $1
		  AND type = 'CLOCK_IN'
		  AND (clock_in AT TIME ZONE $3)::date = $2::date
		  AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, dateLocal, r.timezone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return checkclock.Record{}, checkclock.ErrNotClockedIn
		}
		return checkclock.Record{}, err
	}
	return rec, nil
}

// HasClockedInOn implements checkclock.Repository.
func (r *checkclockRepositoryImpl) HasClockedInOn(ctx context.Context, employeeID string, dateLocal string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM checkclock_records
			WHERE employee_id = $1
			  AND type = 'CLOCK_IN'
			  AND (clock_in AT TIME ZONE $3)::date = $2::date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, dateLocal, r.timezone).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// SetClockOut implements checkclock.Repository.
func (r *checkclockRepositoryImpl) SetClockOut(ctx context.Context, id string, clockOut time.Time, proof *checkclock.Proof) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE checkclock_records
		SET clock_out = $1, clock_out_proof_name = $2, clock_out_proof_url = $3, updated_at = NOW()
		WHERE id = $4 AND clock_out IS NULL
	`

	var proofName, proofURL *string
	if proof != nil {
		proofName = &proof.FileName
		proofURL = &proof.URL
	}

	tag, err := q.Exec(ctx, query, clockOut, proofName, proofURL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return checkclock.ErrAlreadyClockedOut
	}
	return nil
}

// UpdateApproval implements checkclock.Repository. The WHERE clause only
// matches PENDING rows, so the second of two concurrent decisions affects
// zero rows and surfaces as ErrInvalidTransition.
func (r *checkclockRepositoryImpl) UpdateApproval(ctx context.Context, id string, to checkclock.Approval, decidedBy string, reason *string, at time.Time) (checkclock.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE checkclock_records
		SET approval = $1, decided_by = $2, decision_reason = $3, decided_at = $4, updated_at = $4
		WHERE id = $5 AND approval = 'PENDING'
		RETURNING ` + checkclockColumns

	rec, err := scanRecord(q.QueryRow(ctx, query, to, decidedBy, reason, at, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the record does not exist or it was already decided.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return checkclock.Record{}, getErr
			}
			return checkclock.Record{}, checkclock.ErrInvalidTransition
		}
		return checkclock.Record{}, err
	}
	return rec, nil
}

// ListEmployeesWithoutRecordOn implements checkclock.Repository.
func (r *checkclockRepositoryImpl) ListEmployeesWithoutRecordOn(ctx context.Context, dateLocal string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.employee_id
		FROM users u
		WHERE u.role = 'user'
		  AND u.employee_id IS NOT NULL
		  AND NOT EXISTS (
			SELECT 1 FROM checkclock_records c
			WHERE c.employee_id = u.employee_id
			  AND (
				(c.clock_in AT TIME ZONE $2)::date = $1::date
				OR ($1::date BETWEEN c.start_date AND c.end_date)
			  )
		  )
	`

	rows, err := q.Query(ctx, query, dateLocal, r.timezone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employeeIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		employeeIDs = append(employeeIDs, id)
	}
	return employeeIDs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (checkclock.Record, error) {
	var rec checkclock.Record
	var rawStatus *string
	var proofName, proofURL, outProofName, outProofURL *string

	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.EmployeeName,
		&rec.Jobdesk,
		&rec.Type,
		&rec.ClockIn,
		&rec.ClockOut,
		&rawStatus,
		&rec.Approval,
		&rec.Location.Name,
		&rec.Location.Address,
		&rec.Location.Latitude,
		&rec.Location.Longitude,
		&proofName,
		&proofURL,
		&outProofName,
		&outProofURL,
		&rec.Notes,
		&rec.StartDate,
		&rec.EndDate,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return checkclock.Record{}, err
	}

	if rawStatus != nil {
		s := checkclock.RawStatus(*rawStatus)
		rec.RawStatus = &s
	}
	if proofName != nil && proofURL != nil {
		rec.Proof = &checkclock.Proof{FileName: *proofName, URL: *proofURL}
	}
	if outProofName != nil && outProofURL != nil {
		rec.ClockOutProof = &checkclock.Proof{FileName: *outProofName, URL: *outProofURL}
	}

	return rec, nil
}

func collectRecords(rows pgx.Rows) ([]checkclock.Record, error) {
	var records []checkclock.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
