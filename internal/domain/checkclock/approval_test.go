package checkclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRecord() Record {
	in := time.Date(2026, 3, 2, 8, 5, 0, 0, time.UTC)
	return Record{
		ID:         "rec-1",
		EmployeeID: "EMP-001",
		Type:       TypeClockIn,
		ClockIn:    &in,
		RawStatus:  rawPtr(RawLate),
		Approval:   ApprovalPending,
	}
}

func TestDecideApprove(t *testing.T) {
	rec := pendingRecord()
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	c, err := Decide(&rec, DecisionApprove, at)
	require.NoError(t, err)

	assert.Equal(t, ApprovalApproved, rec.Approval)
	assert.Equal(t, at, rec.UpdatedAt)
	// Approval unlocks the punctuality hint.
	assert.Equal(t, StatusLate, c.DisplayStatus)
}

func TestDecideReject(t *testing.T) {
	rec := pendingRecord()

	c, err := Decide(&rec, DecisionReject, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, ApprovalRejected, rec.Approval)
	assert.Equal(t, StatusRejected, c.DisplayStatus)
}

func TestDecideOnlyOnce(t *testing.T) {
	rec := pendingRecord()
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	_, err := Decide(&rec, DecisionApprove, at)
	require.NoError(t, err)

	// Any second decision fails, including repeating the same one.
	for _, d := range []Decision{DecisionApprove, DecisionReject} {
		_, err := Decide(&rec, d, at.Add(time.Minute))
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}

	// The losing decision leaves the record untouched.
	assert.Equal(t, ApprovalApproved, rec.Approval)
	assert.Equal(t, at, rec.UpdatedAt)
}

func TestDecideUnknownDecision(t *testing.T) {
	rec := pendingRecord()

	_, err := Decide(&rec, Decision("MAYBE"), time.Now().UTC())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, ApprovalPending, rec.Approval)
}
