package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjahub/hris-portal-go/internal/domain/notification"
	"github.com/kerjahub/hris-portal-go/internal/domain/schedule"
	"github.com/kerjahub/hris-portal-go/internal/pkg/sse"
)

type fakeAssignmentRepo struct {
	assignments map[string]schedule.Assignment
}

func (r *fakeAssignmentRepo) Upsert(ctx context.Context, a schedule.Assignment) (schedule.Assignment, error) {
	r.assignments[a.EmployeeID] = a
	return a, nil
}

func (r *fakeAssignmentRepo) GetByEmployee(ctx context.Context, employeeID string) (schedule.Assignment, error) {
	a, ok := r.assignments[employeeID]
	if !ok {
		return schedule.Assignment{}, schedule.ErrAssignmentNotFound
	}
	return a, nil
}

func (r *fakeAssignmentRepo) List(ctx context.Context) ([]schedule.Assignment, error) {
	var out []schedule.Assignment
	for _, a := range r.assignments {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAssignmentRepo) Delete(ctx context.Context, employeeID string) error {
	if _, ok := r.assignments[employeeID]; !ok {
		return schedule.ErrAssignmentNotFound
	}
	delete(r.assignments, employeeID)
	return nil
}

type recordingNotifier struct {
	types []notification.NotificationType
}

func (n *recordingNotifier) Notify(ctx context.Context, recipientID string, senderID *string, notifType notification.NotificationType, title string, message string, data map[string]interface{}) error {
	n.types = append(n.types, notifType)
	return nil
}

func (n *recordingNotifier) List(ctx context.Context, recipientID string, limit int) ([]*notification.Notification, error) {
	return nil, nil
}

func (n *recordingNotifier) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return 0, nil
}

func (n *recordingNotifier) MarkAllRead(ctx context.Context, recipientID string) error { return nil }

func (n *recordingNotifier) Subscribe(recipientID string) (chan sse.Event, func()) {
	return make(chan sse.Event), func() {}
}

func newTestService() (schedule.Service, *fakeAssignmentRepo, *recordingNotifier) {
	repo := &fakeAssignmentRepo{assignments: make(map[string]schedule.Assignment)}
	notifier := &recordingNotifier{}
	return NewScheduleService(nil, repo, notifier), repo, notifier
}

func TestAssignFillsDefaultShiftDays(t *testing.T) {
	svc, repo, notifier := newTestService()

	// No weekly map in the request: the canonical times for the shift type
	// apply, weekend off.
	resp, err := svc.Assign(context.Background(), schedule.AssignRequest{
		EmployeeID: "EMP-001",
		ShiftType:  string(schedule.ShiftPagi),
	})
	require.NoError(t, err)

	assert.Equal(t, "06:00", resp.Days[0].Start)
	assert.Equal(t, "14:00", resp.Days[0].End)
	assert.Equal(t, "06:00", resp.Days[4].Start)
	assert.True(t, resp.Days[5].IsOff)
	assert.True(t, resp.Days[6].IsOff)

	saved := repo.assignments["EMP-001"]
	assert.Equal(t, "06:00", saved.Days[0].Start)
	assert.Equal(t, []notification.NotificationType{notification.TypeScheduleUpdated}, notifier.types)
}

func TestAssignKeepsCustomDays(t *testing.T) {
	svc, _, _ := newTestService()

	var days [schedule.DaysPerWeek]schedule.DayEntry
	for i := range days {
		days[i] = schedule.DayEntry{Start: "10:00", End: "19:00"}
	}

	resp, err := svc.Assign(context.Background(), schedule.AssignRequest{
		EmployeeID: "EMP-001",
		ShiftType:  string(schedule.ShiftFlexible),
		Days:       days,
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.Days[0].Start)
	assert.Equal(t, "19:00", resp.Days[6].End)
}

func TestAssignRejectsInvalidCustomDays(t *testing.T) {
	svc, _, notifier := newTestService()

	var days [schedule.DaysPerWeek]schedule.DayEntry
	for i := range days {
		days[i] = schedule.DayEntry{Start: "10:00", End: "19:00"}
	}
	days[3] = schedule.DayEntry{Start: "10:00", End: "19:00", IsOff: true}

	_, err := svc.Assign(context.Background(), schedule.AssignRequest{
		EmployeeID: "EMP-001",
		ShiftType:  string(schedule.ShiftRegular),
		Days:       days,
	})
	assert.Error(t, err)
	assert.Empty(t, notifier.types)
}

func TestDeleteMissingAssignment(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Delete(context.Background(), "EMP-404")
	assert.ErrorIs(t, err, schedule.ErrAssignmentNotFound)
}
