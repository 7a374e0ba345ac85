package checkclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFromRawDefaults(t *testing.T) {
	// A payload with only an ID still maps to a usable record.
	rec := FromRaw(RawRecord{ID: "raw-1"})

	assert.Equal(t, "raw-1", rec.ID)
	assert.Equal(t, TypeClockIn, rec.Type)
	assert.Equal(t, ApprovalPending, rec.Approval)
	assert.Nil(t, rec.RawStatus)
	assert.Nil(t, rec.ClockIn)
	assert.Nil(t, rec.Proof)
}

func TestFromRawFullPayload(t *testing.T) {
	rec := FromRaw(RawRecord{
		ID:           "raw-2",
		EmployeeID:   strPtr("EMP-007"),
		EmployeeName: strPtr("Juanita"),
		Jobdesk:      strPtr("CEO"),
		ClockIn:      strPtr("2026-03-02 08:00:00"),
		ClockOut:     strPtr("2026-03-02T17:50:00Z"),
		Status:       strPtr("LATE"),
		Approval:     strPtr("APPROVED"),
		Type:         strPtr("CLOCK_IN"),
		LocationName: strPtr("Kantor Pusat"),
		ProofURL:     strPtr("/uploads/proofs/a.jpg"),
		ProofName:    strPtr("a.jpg"),
	})

	assert.Equal(t, "EMP-007", rec.EmployeeID)
	assert.Equal(t, "Juanita", rec.EmployeeName)
	require.NotNil(t, rec.ClockIn)
	require.NotNil(t, rec.ClockOut)
	require.NotNil(t, rec.RawStatus)
	assert.Equal(t, RawLate, *rec.RawStatus)
	assert.Equal(t, ApprovalApproved, rec.Approval)
	require.NotNil(t, rec.Proof)
	assert.Equal(t, "a.jpg", rec.Proof.FileName)
}

func TestFromRawDegradesBadValues(t *testing.T) {
	// Unknown enums and unparseable timestamps fall back instead of failing.
	rec := FromRaw(RawRecord{
		ID:       "raw-3",
		Type:     strPtr("TELEPORTED"),
		Approval: strPtr("MAYBE"),
		Status:   strPtr("KINDA_LATE"),
		ClockIn:  strPtr("yesterday morning"),
	})

	assert.Equal(t, TypeClockIn, rec.Type)
	assert.Equal(t, ApprovalPending, rec.Approval)
	assert.Nil(t, rec.RawStatus)
	assert.Nil(t, rec.ClockIn)
}

func TestListFilterValidateDefaults(t *testing.T) {
	f := ListFilter{}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, "none", f.SortOrder)
}

func TestListFilterValidateRejectsUnknownSortKey(t *testing.T) {
	f := ListFilter{SortBy: "salary"}
	assert.Error(t, f.Validate())
}

func TestSubmitRequestValidateLeaveDates(t *testing.T) {
	req := SubmitRequest{EmployeeID: "EMP-001", Type: string(TypeAnnualLeave)}
	err := req.Validate()
	require.Error(t, err)

	start, end := "2026-03-02", "2026-03-06"
	req.StartDate, req.EndDate = &start, &end
	assert.NoError(t, req.Validate())
}
