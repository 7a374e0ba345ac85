package checkclock

import "time"

// Decision is an admin's verdict on a pending record.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

func (d Decision) terminal() Approval {
	if d == DecisionApprove {
		return ApprovalApproved
	}
	return ApprovalRejected
}

// Decide applies one approval decision to the record and refreshes its
// classification. A record is decided exactly once: any decision on a record
// that already left PENDING fails with ErrInvalidTransition and leaves the
// record untouched. The returned classification reflects the new state.
// The decider's identity is an audit concern persisted by the repository
// alongside the transition.
//
// The backing store upholds the same invariant for concurrent deciders
// (see Repository.UpdateApproval); a lost race surfaces here as the same
// ErrInvalidTransition and must be reported, not retried.
func Decide(rec *Record, decision Decision, at time.Time) (Classification, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return Classification{}, ErrInvalidTransition
	}
	if rec.Approval != ApprovalPending {
		return Classification{}, ErrInvalidTransition
	}

	rec.Approval = decision.terminal()
	rec.UpdatedAt = at

	return Classify(*rec)
}
