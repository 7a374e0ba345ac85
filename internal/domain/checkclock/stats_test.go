package checkclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	in := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	out := in.Add(9*time.Hour + 30*time.Minute)

	records := []Record{
		clockedRecord(ApprovalApproved, rawPtr(RawOnTime), timePtr(in), timePtr(out)),
		clockedRecord(ApprovalApproved, rawPtr(RawLate), timePtr(in), timePtr(in.Add(8*time.Hour))),
		clockedRecord(ApprovalPending, rawPtr(RawOnTime), timePtr(in), nil),
		clockedRecord(ApprovalRejected, nil, timePtr(in), nil),
		{Type: TypeAnnualLeave, Approval: ApprovalApproved},
		{Type: TypeSickLeave, Approval: ApprovalPending},
		{Type: TypeAbsent, Approval: ApprovalPending},
		// Malformed row: clocked without a clock-in is skipped, not fatal.
		{Type: TypeClockIn, Approval: ApprovalApproved},
	}

	s := ComputeStats(records)

	assert.Equal(t, 1, s.OnTime)
	assert.Equal(t, 1, s.Late)
	assert.Equal(t, 1, s.WaitingApproval)
	assert.Equal(t, 1, s.Rejected)
	assert.Equal(t, 1, s.AnnualLeave)
	assert.Equal(t, 1, s.Sick)
	assert.Equal(t, 1, s.Absent)
	assert.InDelta(t, 17.5, s.TotalWorkHours, 0.001)
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestParseWorkHours(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"9h 50m", 9.0 + 50.0/60},
		{"8h 0m", 8},
		{"0h 25m", 25.0 / 60},
		{"-", 0},
		{"", 0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, ParseWorkHours(c.input), 0.0001, "ParseWorkHours(%q)", c.input)
	}
}
