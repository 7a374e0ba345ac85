package checkclock

import (
	"fmt"
	"time"
)

// NoWorkHours is shown when a duration cannot be computed.
const NoWorkHours = "-"

// Classification is the read-side projection of a record: the label shown in
// dashboard tables and the formatted work duration.
type Classification struct {
	DisplayStatus DisplayStatus
	WorkHours     string
}

// Classify derives the display status and work hours from the record's
// current fields. It is a pure function: re-running it on an unchanged
// record yields the identical result, and it never mutates its input.
//
// Leave and absence types always show their literal label, irrespective of
// approval. Clocked records are gated by the approval state; the raw
// punctuality hint only becomes visible once a record is approved.
func Classify(rec Record) (Classification, error) {
	switch rec.Type {
	case TypeAnnualLeave:
		return Classification{StatusAnnualLeave, NoWorkHours}, nil
	case TypeSickLeave:
		return Classification{StatusSick, NoWorkHours}, nil
	case TypeAbsent:
		return Classification{StatusAbsent, NoWorkHours}, nil
	case TypeClockIn, TypeClockOut:
		return classifyClocked(rec)
	}
	return Classification{}, fmt.Errorf("%w: unknown type %q", ErrClassificationInputMissing, rec.Type)
}

func classifyClocked(rec Record) (Classification, error) {
	if rec.ClockIn == nil {
		return Classification{}, fmt.Errorf("%w: clock-in time is required for %s", ErrClassificationInputMissing, rec.Type)
	}

	hours := FormatWorkHours(rec.ClockIn, rec.ClockOut)

	switch rec.Approval {
	case ApprovalPending:
		return Classification{StatusWaitingApproval, hours}, nil
	case ApprovalRejected:
		return Classification{StatusRejected, hours}, nil
	case ApprovalApproved:
		if rec.RawStatus != nil && *rec.RawStatus == RawLate {
			return Classification{StatusLate, hours}, nil
		}
		return Classification{StatusOnTime, hours}, nil
	}
	return Classification{}, fmt.Errorf("%w: unknown approval %q", ErrClassificationInputMissing, rec.Approval)
}

// FormatWorkHours renders the duration between the two day boundaries as
// whole hours and minutes ("9h 50m"). Without both timestamps, or with a
// clock-out before the clock-in, there is nothing to compute.
func FormatWorkHours(clockIn, clockOut *time.Time) string {
	if clockIn == nil || clockOut == nil {
		return NoWorkHours
	}
	d := clockOut.Sub(*clockIn)
	if d < 0 {
		return NoWorkHours
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
