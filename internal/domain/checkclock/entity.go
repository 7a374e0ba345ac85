package checkclock

import (
	"time"
)

// RecordType is set once at submission and never changes.
type RecordType string

const (
	TypeClockIn     RecordType = "CLOCK_IN"
	TypeClockOut    RecordType = "CLOCK_OUT"
	TypeAbsent      RecordType = "ABSENT"
	TypeAnnualLeave RecordType = "ANNUAL_LEAVE"
	TypeSickLeave   RecordType = "SICK_LEAVE"
)

var RecordTypeValues = []string{
	string(TypeClockIn),
	string(TypeClockOut),
	string(TypeAbsent),
	string(TypeAnnualLeave),
	string(TypeSickLeave),
}

// RawStatus is the upstream punctuality hint attached to CLOCK_IN records.
// It is opaque here: the lateness rule belongs to whoever produced it.
type RawStatus string

const (
	RawOnTime RawStatus = "ON_TIME"
	RawLate   RawStatus = "LATE"
)

// Approval is the admin decision gate. PENDING is the only non-terminal
// state; a record is decided at most once.
type Approval string

const (
	ApprovalPending  Approval = "PENDING"
	ApprovalApproved Approval = "APPROVED"
	ApprovalRejected Approval = "REJECTED"
)

// DisplayStatus is the human-facing label derived from type, raw status and
// approval. It is a projection, never the system of record.
type DisplayStatus string

const (
	StatusOnTime          DisplayStatus = "On Time"
	StatusLate            DisplayStatus = "Late"
	StatusAbsent          DisplayStatus = "Absent"
	StatusAnnualLeave     DisplayStatus = "Annual Leave"
	StatusSick            DisplayStatus = "Sick"
	StatusWaitingApproval DisplayStatus = "Waiting Approval"
	StatusRejected        DisplayStatus = "Rejected"
)

// Location is the record's location evidence, resolved once at creation and
// immutable afterwards. Latitude/Longitude are nil for symbolic locations
// ("Remote") that never received a map fix.
type Location struct {
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
}

// Proof is one attendance evidence attachment. Clock-in and clock-out carry
// independent proofs; either, both, or neither may be present.
type Proof struct {
	FileName string
	URL      string
}

type Record struct {
	ID            string
	EmployeeID    string
	EmployeeName  string
	Jobdesk       string
	Type          RecordType
	ClockIn       *time.Time
	ClockOut      *time.Time
	RawStatus     *RawStatus
	Approval      Approval
	Location      Location
	Proof         *Proof
	ClockOutProof *Proof
	Notes         string
	StartDate     *time.Time
	EndDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLeave reports whether the record is a leave/absence entry rather than a
// clocked day boundary.
func (r *Record) IsLeave() bool {
	switch r.Type {
	case TypeAbsent, TypeAnnualLeave, TypeSickLeave:
		return true
	}
	return false
}
