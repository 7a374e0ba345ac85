package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjahub/hris-portal-go/internal/domain/checkclock"
	"github.com/kerjahub/hris-portal-go/internal/domain/location"
	"github.com/kerjahub/hris-portal-go/internal/domain/schedule"
)

func handle(t *testing.T, err error) (int, Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	HandleError(rec, err)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHandleErrorWeeklyMapViolationIs422(t *testing.T) {
	// A broken weekly map surfaces as field-level validation errors, not a
	// generic 400.
	req := schedule.AssignRequest{
		EmployeeID: "EMP-001",
		ShiftType:  string(schedule.ShiftRegular),
	}
	req.Days[0] = schedule.DayEntry{Start: "17:00", End: "08:00"}
	req.Days[5] = schedule.DayEntry{Start: "08:00", End: "17:00", IsOff: true}
	for _, i := range []int{1, 2, 3, 4} {
		req.Days[i] = schedule.DayEntry{Start: "08:00", End: "17:00"}
	}
	req.Days[6] = schedule.DayEntry{IsOff: true}

	err := req.Validate()
	require.Error(t, err)

	code, body := handle(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "monday")
	assert.Contains(t, body.Error.Details, "saturday")
}

func TestHandleErrorDomainSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"record not found", checkclock.ErrRecordNotFound, http.StatusNotFound},
		{"already decided", checkclock.ErrInvalidTransition, http.StatusConflict},
		{"already clocked in", checkclock.ErrAlreadyClockedIn, http.StatusConflict},
		{"preset not found", location.ErrPresetNotFound, http.StatusNotFound},
		{"assignment not found", schedule.ErrAssignmentNotFound, http.StatusNotFound},
		{"unknown error", fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, body := handle(t, c.err)
			assert.Equal(t, c.code, code)
			require.NotNil(t, body.Error)
			assert.False(t, body.Success)
		})
	}
}

func TestHandleErrorWrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("failed to commit approval decision: %w", checkclock.ErrInvalidTransition)
	code, _ := handle(t, wrapped)
	assert.Equal(t, http.StatusConflict, code)
}
