package checkclock

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjahub/hris-portal-go/internal/domain/checkclock"
	"github.com/kerjahub/hris-portal-go/internal/domain/location"
	"github.com/kerjahub/hris-portal-go/internal/domain/notification"
	"github.com/kerjahub/hris-portal-go/internal/domain/schedule"
	"github.com/kerjahub/hris-portal-go/internal/pkg/sse"
)

// ========================================
// FAKES
// ========================================

type fakeRepo struct {
	mu        sync.Mutex
	records   []checkclock.Record
	employees []string
	loc       *time.Location
}

// localDate mirrors the repository's day-boundary conversion: stored UTC
// timestamps are compared as portal-local dates.
func (r *fakeRepo) localDate(t time.Time) string {
	loc := r.loc
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02")
}

func (r *fakeRepo) seed(rec checkclock.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
}

func (r *fakeRepo) Create(ctx context.Context, rec checkclock.Record) (checkclock.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (checkclock.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return checkclock.Record{}, checkclock.ErrRecordNotFound
}

func (r *fakeRepo) List(ctx context.Context) ([]checkclock.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]checkclock.Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *fakeRepo) ListByEmployee(ctx context.Context, employeeID string) ([]checkclock.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []checkclock.Record
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetOpenClockIn(ctx context.Context, employeeID string, dateLocal string) (checkclock.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Type == checkclock.TypeClockIn &&
			rec.ClockIn != nil && r.localDate(*rec.ClockIn) == dateLocal &&
			rec.ClockOut == nil {
			return rec, nil
		}
	}
	return checkclock.Record{}, checkclock.ErrRecordNotFound
}

func (r *fakeRepo) HasClockedInOn(ctx context.Context, employeeID string, dateLocal string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Type == checkclock.TypeClockIn &&
			rec.ClockIn != nil && r.localDate(*rec.ClockIn) == dateLocal {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time, proof *checkclock.Proof) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			if r.records[i].ClockOut != nil {
				return checkclock.ErrAlreadyClockedOut
			}
			r.records[i].ClockOut = &clockOut
			r.records[i].ClockOutProof = proof
			return nil
		}
	}
	return checkclock.ErrRecordNotFound
}

func (r *fakeRepo) UpdateApproval(ctx context.Context, id string, to checkclock.Approval, decidedBy string, reason *string, at time.Time) (checkclock.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID != id {
			continue
		}
		// Mirrors the guarded UPDATE: only a pending row transitions.
		if r.records[i].Approval != checkclock.ApprovalPending {
			return checkclock.Record{}, checkclock.ErrInvalidTransition
		}
		r.records[i].Approval = to
		r.records[i].UpdatedAt = at
		return r.records[i], nil
	}
	return checkclock.Record{}, checkclock.ErrRecordNotFound
}

func (r *fakeRepo) ListEmployeesWithoutRecordOn(ctx context.Context, dateLocal string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, emp := range r.employees {
		covered := false
		for _, rec := range r.records {
			if rec.EmployeeID != emp {
				continue
			}
			if rec.ClockIn != nil && r.localDate(*rec.ClockIn) == dateLocal {
				covered = true
				break
			}
			if rec.StartDate != nil && rec.EndDate != nil {
				if s, e := rec.StartDate.Format("2006-01-02"), rec.EndDate.Format("2006-01-02"); s <= dateLocal && dateLocal <= e {
					covered = true
					break
				}
			}
		}
		if !covered {
			out = append(out, emp)
		}
	}
	return out, nil
}

type fakeScheduleRepo struct {
	assignments map[string]schedule.Assignment
}

func (r *fakeScheduleRepo) Upsert(ctx context.Context, a schedule.Assignment) (schedule.Assignment, error) {
	r.assignments[a.EmployeeID] = a
	return a, nil
}

func (r *fakeScheduleRepo) GetByEmployee(ctx context.Context, employeeID string) (schedule.Assignment, error) {
	a, ok := r.assignments[employeeID]
	if !ok {
		return schedule.Assignment{}, schedule.ErrAssignmentNotFound
	}
	return a, nil
}

func (r *fakeScheduleRepo) List(ctx context.Context) ([]schedule.Assignment, error) {
	var out []schedule.Assignment
	for _, a := range r.assignments {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeScheduleRepo) Delete(ctx context.Context, employeeID string) error {
	delete(r.assignments, employeeID)
	return nil
}

type fakeLocationService struct{}

func (s *fakeLocationService) ListPresets(ctx context.Context) ([]location.PresetResponse, error) {
	return nil, nil
}

func (s *fakeLocationService) SeedDefaults(ctx context.Context) error { return nil }

func (s *fakeLocationService) Resolve(ctx context.Context, req location.ResolveRequest) (location.Resolved, error) {
	name := req.PresetKey
	if name == "" {
		name = "Custom"
	}
	return location.Resolved{
		Name:      name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}, nil
}

type fakeFileService struct{}

func (s *fakeFileService) UploadProof(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, boundary string) (string, error) {
	return "/uploads/proofs/" + filename, nil
}

func (s *fakeFileService) DeleteFile(ctx context.Context, path string) error { return nil }

func (s *fakeFileService) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return path, nil
}

type sentNotification struct {
	recipient string
	notifType notification.NotificationType
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *fakeNotifier) Notify(ctx context.Context, recipientID string, senderID *string, notifType notification.NotificationType, title string, message string, data map[string]interface{}) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{recipient: recipientID, notifType: notifType})
	return nil
}

func (n *fakeNotifier) List(ctx context.Context, recipientID string, limit int) ([]*notification.Notification, error) {
	return nil, nil
}

func (n *fakeNotifier) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return 0, nil
}

func (n *fakeNotifier) MarkAllRead(ctx context.Context, recipientID string) error { return nil }

func (n *fakeNotifier) Subscribe(recipientID string) (chan sse.Event, func()) {
	return make(chan sse.Event), func() {}
}

func (n *fakeNotifier) all() []sentNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]sentNotification, len(n.sent))
	copy(out, n.sent)
	return out
}

// ========================================
// HELPERS
// ========================================

func newTestService(t *testing.T) (checkclock.Service, *fakeRepo, *fakeScheduleRepo, *fakeNotifier) {
	t.Helper()
	repo := &fakeRepo{}
	schedules := &fakeScheduleRepo{assignments: make(map[string]schedule.Assignment)}
	notifier := &fakeNotifier{}
	svc := NewCheckclockService(nil, repo, schedules, &fakeLocationService{}, &fakeFileService{}, notifier, time.UTC)
	return svc, repo, schedules, notifier
}

func authedCtx(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	tok := jwt.New()
	for k, v := range claims {
		require.NoError(t, tok.Set(k, v))
	}
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func employeeCtx(t *testing.T, employeeID string) context.Context {
	return authedCtx(t, map[string]interface{}{
		"user_id":     "user-" + employeeID,
		"employee_id": employeeID,
		"role":        "user",
	})
}

func adminCtx(t *testing.T) context.Context {
	return authedCtx(t, map[string]interface{}{
		"user_id":     "admin-1",
		"employee_id": "EMP-ADMIN",
		"role":        "admin",
	})
}

func allWorkDays(start, end string) [schedule.DaysPerWeek]schedule.DayEntry {
	var days [schedule.DaysPerWeek]schedule.DayEntry
	for i := range days {
		days[i] = schedule.DayEntry{Start: start, End: end}
	}
	return days
}

func seedClocked(repo *fakeRepo, id, employeeID, name string, approval checkclock.Approval, raw *checkclock.RawStatus) {
	in := time.Now().UTC().Add(-8 * time.Hour)
	repo.seed(checkclock.Record{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: name,
		Type:         checkclock.TypeClockIn,
		ClockIn:      &in,
		RawStatus:    raw,
		Approval:     approval,
		CreatedAt:    in,
		UpdatedAt:    in,
	})
}

// ========================================
// SUBMIT
// ========================================

func TestSubmitClockIn(t *testing.T) {
	svc, repo, _, notifier := newTestService(t)
	ctx := employeeCtx(t, "EMP-001")

	resp, err := svc.Submit(ctx, checkclock.SubmitRequest{
		EmployeeID:   "EMP-001",
		Type:         string(checkclock.TypeClockIn),
		LocationName: "Kantor Pusat",
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP-001", resp.EmployeeID)
	assert.Equal(t, string(checkclock.ApprovalPending), resp.Approval)
	assert.Equal(t, "Waiting Approval", resp.DisplayStatus)
	assert.NotNil(t, resp.ClockIn)
	// No weekly assignment: there is no scheduled start to be late against.
	assert.Nil(t, resp.RawStatus)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	sent := notifier.all()
	require.Len(t, sent, 1)
	assert.Equal(t, notification.TypeAttendanceSubmitted, sent[0].notifType)
	assert.Equal(t, "EMP-001", sent[0].recipient)
}

func TestSubmitClockInDerivesLateness(t *testing.T) {
	svc, _, schedules, _ := newTestService(t)
	ctx := employeeCtx(t, "EMP-001")

	schedules.assignments["EMP-001"] = schedule.Assignment{
		EmployeeID: "EMP-001",
		ShiftType:  schedule.ShiftRegular,
		Days:       allWorkDays("00:00", "23:59"),
	}

	resp, err := svc.Submit(ctx, checkclock.SubmitRequest{
		EmployeeID: "EMP-001",
		Type:       string(checkclock.TypeClockIn),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.RawStatus)
	assert.Equal(t, string(checkclock.RawLate), *resp.RawStatus)
	// The hint stays hidden while the record is pending.
	assert.Equal(t, "Waiting Approval", resp.DisplayStatus)
}

func TestSubmitDuplicateClockIn(t *testing.T) {
	svc, repo, _, notifier := newTestService(t)
	ctx := employeeCtx(t, "EMP-001")

	req := checkclock.SubmitRequest{EmployeeID: "EMP-001", Type: string(checkclock.TypeClockIn)}

	_, err := svc.Submit(ctx, req)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, req)
	assert.ErrorIs(t, err, checkclock.ErrAlreadyClockedIn)

	records, _ := repo.List(context.Background())
	assert.Len(t, records, 1)
	assert.Len(t, notifier.all(), 1)
}

func TestSubmitClockOutWithoutOpenSession(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := employeeCtx(t, "EMP-001")

	_, err := svc.Submit(ctx, checkclock.SubmitRequest{
		EmployeeID: "EMP-001",
		Type:       string(checkclock.TypeClockOut),
	})
	assert.ErrorIs(t, err, checkclock.ErrNotClockedIn)
}

func TestSubmitClockOutClosesSession(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	ctx := employeeCtx(t, "EMP-001")

	_, err := svc.Submit(ctx, checkclock.SubmitRequest{
		EmployeeID: "EMP-001",
		Type:       string(checkclock.TypeClockIn),
	})
	require.NoError(t, err)

	resp, err := svc.Submit(ctx, checkclock.SubmitRequest{
		EmployeeID: "EMP-001",
		Type:       string(checkclock.TypeClockOut),
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.ClockOut)

	// A second clock-out finds no open session left.
	_, err = svc.Submit(ctx, checkclock.SubmitRequest{
		EmployeeID: "EMP-001",
		Type:       string(checkclock.TypeClockOut),
	})
	assert.ErrorIs(t, err, checkclock.ErrNotClockedIn)

	records, _ := repo.List(context.Background())
	require.Len(t, records, 1)
	assert.NotNil(t, records[0].ClockOut)
}

func TestSubmitForAnotherEmployeeRequiresAdmin(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Submit(employeeCtx(t, "EMP-001"), checkclock.SubmitRequest{
		EmployeeID: "EMP-002",
		Type:       string(checkclock.TypeClockIn),
	})
	assert.ErrorIs(t, err, checkclock.ErrUnauthorized)

	resp, err := svc.Submit(adminCtx(t), checkclock.SubmitRequest{
		EmployeeID: "EMP-002",
		Type:       string(checkclock.TypeClockIn),
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-002", resp.EmployeeID)
}

// ========================================
// APPROVAL
// ========================================

func TestApproveNotifiesOnce(t *testing.T) {
	svc, repo, _, notifier := newTestService(t)
	seedClocked(repo, "rec-1", "EMP-001", "Juanita", checkclock.ApprovalPending, rawStatusPtr(checkclock.RawLate))

	resp, err := svc.Approve(adminCtx(t), checkclock.DecideRequest{ID: "rec-1"})
	require.NoError(t, err)

	assert.Equal(t, string(checkclock.ApprovalApproved), resp.Approval)
	// Approval unlocks the punctuality label.
	assert.Equal(t, "Late", resp.DisplayStatus)

	sent := notifier.all()
	require.Len(t, sent, 1)
	assert.Equal(t, notification.TypeAttendanceApproved, sent[0].notifType)
	assert.Equal(t, "EMP-001", sent[0].recipient)
}

func TestRejectCarriesReason(t *testing.T) {
	svc, repo, _, notifier := newTestService(t)
	seedClocked(repo, "rec-1", "EMP-001", "Juanita", checkclock.ApprovalPending, nil)

	reason := "proof photo is unreadable"
	resp, err := svc.Reject(adminCtx(t), checkclock.DecideRequest{ID: "rec-1", Reason: &reason})
	require.NoError(t, err)

	assert.Equal(t, string(checkclock.ApprovalRejected), resp.Approval)
	assert.Equal(t, "Rejected", resp.DisplayStatus)

	sent := notifier.all()
	require.Len(t, sent, 1)
	assert.Equal(t, notification.TypeAttendanceRejected, sent[0].notifType)
}

func TestDecideOnlyOncePerRecord(t *testing.T) {
	svc, repo, _, notifier := newTestService(t)
	seedClocked(repo, "rec-1", "EMP-001", "Juanita", checkclock.ApprovalPending, nil)

	_, err := svc.Approve(adminCtx(t), checkclock.DecideRequest{ID: "rec-1"})
	require.NoError(t, err)

	_, err = svc.Reject(adminCtx(t), checkclock.DecideRequest{ID: "rec-1"})
	assert.ErrorIs(t, err, checkclock.ErrInvalidTransition)

	_, err = svc.Approve(adminCtx(t), checkclock.DecideRequest{ID: "rec-1"})
	assert.ErrorIs(t, err, checkclock.ErrInvalidTransition)

	// Exactly one notification per committed transition.
	assert.Len(t, notifier.all(), 1)

	rec, err := repo.GetByID(context.Background(), "rec-1")
	require.NoError(t, err)
	assert.Equal(t, checkclock.ApprovalApproved, rec.Approval)
}

func TestDecideUnknownRecord(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Approve(adminCtx(t), checkclock.DecideRequest{ID: "missing"})
	assert.ErrorIs(t, err, checkclock.ErrRecordNotFound)
}

// ========================================
// LISTING
// ========================================

func TestListAppliesOperatorsInOrder(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	seedClocked(repo, "rec-1", "EMP-001", "Juanita", checkclock.ApprovalApproved, rawStatusPtr(checkclock.RawOnTime))
	seedClocked(repo, "rec-2", "EMP-002", "Don Juan", checkclock.ApprovalPending, rawStatusPtr(checkclock.RawLate))
	seedClocked(repo, "rec-3", "EMP-003", "Budi", checkclock.ApprovalApproved, rawStatusPtr(checkclock.RawLate))

	resp, err := svc.List(context.Background(), checkclock.ListFilter{
		Search:    "juan",
		SortBy:    "employee_name",
		SortOrder: "asc",
	})
	require.NoError(t, err)

	// Stats cover the filtered set, so Budi's late day is excluded.
	assert.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, 1, resp.Stats.OnTime)
	assert.Equal(t, 1, resp.Stats.WaitingApproval)
	assert.Equal(t, 0, resp.Stats.Late)

	require.Len(t, resp.Records, 2)
	assert.Equal(t, "Don Juan", resp.Records[0].EmployeeName)
	assert.Equal(t, "Juanita", resp.Records[1].EmployeeName)
}

func TestListPaginates(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	for i := 0; i < 12; i++ {
		seedClocked(repo, "rec-"+string(rune('a'+i)), "EMP-001", "Juanita", checkclock.ApprovalPending, nil)
	}

	resp, err := svc.List(context.Background(), checkclock.ListFilter{Page: 2, Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, 12, resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 2, resp.Page)
	assert.Len(t, resp.Records, 5)
	// Stats still describe all 12, not the visible page.
	assert.Equal(t, 12, resp.Stats.WaitingApproval)
}

func TestListMineScopedToCaller(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	seedClocked(repo, "rec-1", "EMP-001", "Juanita", checkclock.ApprovalPending, nil)
	seedClocked(repo, "rec-2", "EMP-002", "Budi", checkclock.ApprovalPending, nil)

	resp, err := svc.ListMine(employeeCtx(t, "EMP-001"), checkclock.ListFilter{})
	require.NoError(t, err)

	require.Len(t, resp.Records, 1)
	assert.Equal(t, "EMP-001", resp.Records[0].EmployeeID)
}

// ========================================
// ABSENT MARKER
// ========================================

func TestMarkAbsentees(t *testing.T) {
	svc, repo, schedules, _ := newTestService(t)
	repo.employees = []string{"EMP-001", "EMP-002", "EMP-003"}

	// EMP-001 is scheduled and silent: marked absent.
	schedules.assignments["EMP-001"] = schedule.Assignment{
		EmployeeID: "EMP-001",
		ShiftType:  schedule.ShiftRegular,
		Days:       allWorkDays("08:00", "17:00"),
	}
	// EMP-002 already clocked in that day.
	in := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	repo.seed(checkclock.Record{
		ID:         "rec-1",
		EmployeeID: "EMP-002",
		Type:       checkclock.TypeClockIn,
		ClockIn:    &in,
		Approval:   checkclock.ApprovalPending,
	})
	// EMP-003 has no assignment, so there is nothing to be absent from.

	marked, err := svc.MarkAbsentees(context.Background(), "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	records, _ := repo.ListByEmployee(context.Background(), "EMP-001")
	require.Len(t, records, 1)
	assert.Equal(t, checkclock.TypeAbsent, records[0].Type)
	assert.Equal(t, checkclock.ApprovalPending, records[0].Approval)
}

func TestMarkAbsenteesSkipsOffDays(t *testing.T) {
	svc, repo, schedules, _ := newTestService(t)
	repo.employees = []string{"EMP-001"}

	var offWeek [schedule.DaysPerWeek]schedule.DayEntry
	for i := range offWeek {
		offWeek[i] = schedule.DayEntry{IsOff: true}
	}
	schedules.assignments["EMP-001"] = schedule.Assignment{
		EmployeeID: "EMP-001",
		ShiftType:  schedule.ShiftRegular,
		Days:       offWeek,
	}

	marked, err := svc.MarkAbsentees(context.Background(), "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}

// ========================================
// DAY BOUNDARIES
// ========================================

func TestSubmitDayBoundaryFollowsPortalTimezone(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	repo := &fakeRepo{loc: wib}
	schedules := &fakeScheduleRepo{assignments: make(map[string]schedule.Assignment)}
	notifier := &fakeNotifier{}
	svc := NewCheckclockService(nil, repo, schedules, &fakeLocationService{}, &fakeFileService{}, notifier, wib)
	impl := svc.(*CheckclockServiceImpl)
	ctx := employeeCtx(t, "EMP-001")

	// Monday 23:00 UTC is Tuesday 06:00 in WIB: the record belongs to
	// Tuesday's working day.
	impl.now = func() time.Time { return time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC) }
	_, err := svc.Submit(ctx, checkclock.SubmitRequest{
		EmployeeID: "EMP-001",
		Type:       string(checkclock.TypeClockIn),
	})
	require.NoError(t, err)

	// Two hours later it is still Tuesday in WIB even though the UTC date
	// rolled over, so a second clock-in is a duplicate.
	impl.now = func() time.Time { return time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC) }
	_, err = svc.Submit(ctx, checkclock.SubmitRequest{
		EmployeeID: "EMP-001",
		Type:       string(checkclock.TypeClockIn),
	})
	assert.ErrorIs(t, err, checkclock.ErrAlreadyClockedIn)

	// The open session is likewise found on the same local day.
	resp, err := svc.Submit(ctx, checkclock.SubmitRequest{
		EmployeeID: "EMP-001",
		Type:       string(checkclock.TypeClockOut),
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.ClockOut)
}

func TestDeriveRawStatusUsesLocalWallClock(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	repo := &fakeRepo{loc: wib}
	schedules := &fakeScheduleRepo{assignments: make(map[string]schedule.Assignment)}
	svc := NewCheckclockService(nil, repo, schedules, &fakeLocationService{}, &fakeFileService{}, &fakeNotifier{}, wib)
	impl := svc.(*CheckclockServiceImpl)
	ctx := employeeCtx(t, "EMP-001")

	schedules.assignments["EMP-001"] = schedule.Assignment{
		EmployeeID: "EMP-001",
		ShiftType:  schedule.ShiftRegular,
		Days:       allWorkDays("08:00", "17:00"),
	}

	// 02:00 UTC Tuesday is 09:00 WIB, an hour past the scheduled start.
	// Against UTC wall-clock this would read as on time.
	impl.now = func() time.Time { return time.Date(2026, 3, 3, 2, 0, 0, 0, time.UTC) }
	resp, err := svc.Submit(ctx, checkclock.SubmitRequest{
		EmployeeID: "EMP-001",
		Type:       string(checkclock.TypeClockIn),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.RawStatus)
	assert.Equal(t, string(checkclock.RawLate), *resp.RawStatus)
}

func rawStatusPtr(s checkclock.RawStatus) *checkclock.RawStatus { return &s }
