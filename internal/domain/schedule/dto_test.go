package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjahub/hris-portal-go/internal/pkg/validator"
)

func workWeek() [DaysPerWeek]DayEntry {
	return [DaysPerWeek]DayEntry{
		{Start: "08:00", End: "17:00"},
		{Start: "08:00", End: "17:00"},
		{Start: "08:00", End: "17:00"},
		{Start: "08:00", End: "17:00"},
		{Start: "08:00", End: "17:00"},
		{IsOff: true},
		{IsOff: true},
	}
}

func TestAssignRequestValidate(t *testing.T) {
	req := AssignRequest{
		EmployeeID: "EMP-001",
		ShiftType:  string(ShiftRegular),
		Days:       workWeek(),
	}
	assert.NoError(t, req.Validate())
}

func TestAssignRequestRejectsOffDayWithTimes(t *testing.T) {
	req := AssignRequest{
		EmployeeID: "EMP-001",
		ShiftType:  string(ShiftRegular),
		Days:       workWeek(),
	}
	req.Days[5] = DayEntry{Start: "08:00", End: "17:00", IsOff: true}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "saturday", errs[0].Field)
}

func TestAssignRequestRejectsInvertedTimes(t *testing.T) {
	req := AssignRequest{
		EmployeeID: "EMP-001",
		ShiftType:  string(ShiftPagi),
		Days:       workWeek(),
	}
	req.Days[2] = DayEntry{Start: "17:00", End: "08:00"}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "wednesday", errs[0].Field)

	// Equal times fail too: a working day needs a positive span.
	req.Days[2] = DayEntry{Start: "08:00", End: "08:00"}
	assert.Error(t, req.Validate())
}

func TestAssignRequestRejectsMalformedTimes(t *testing.T) {
	req := AssignRequest{
		EmployeeID: "EMP-001",
		ShiftType:  string(ShiftRegular),
		Days:       workWeek(),
	}
	req.Days[0] = DayEntry{Start: "8am", End: "17:00"}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "monday", errs[0].Field)
}

func TestAssignRequestRejectsUnknownShiftType(t *testing.T) {
	req := AssignRequest{
		EmployeeID: "EMP-001",
		ShiftType:  "Graveyard",
		Days:       workWeek(),
	}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "shift_type", errs[0].Field)
}

func TestDayForIsMondayFirst(t *testing.T) {
	a := Assignment{Days: [DaysPerWeek]DayEntry{
		{Start: "01:00", End: "02:00"}, // monday
		{Start: "02:00", End: "03:00"},
		{Start: "03:00", End: "04:00"},
		{Start: "04:00", End: "05:00"},
		{Start: "05:00", End: "06:00"},
		{IsOff: true}, // saturday
		{IsOff: true}, // sunday
	}}

	assert.Equal(t, "01:00", a.DayFor(time.Monday).Start)
	assert.Equal(t, "05:00", a.DayFor(time.Friday).Start)
	assert.True(t, a.DayFor(time.Saturday).IsOff)
	assert.True(t, a.DayFor(time.Sunday).IsOff)
}

func TestScheduleListFilterDefaults(t *testing.T) {
	f := ListFilter{}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, "none", f.SortOrder)

	bad := ListFilter{SortBy: "salary"}
	assert.Error(t, bad.Validate())
}
