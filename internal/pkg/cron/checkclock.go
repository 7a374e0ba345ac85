package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/kerjahub/hris-portal-go/internal/domain/checkclock"
)

// CheckclockJobs holds the background jobs of the attendance lifecycle.
type CheckclockJobs struct {
	checkclockSvc checkclock.Service
	loc           *time.Location
	now           func() time.Time
}

func NewCheckclockJobs(checkclockSvc checkclock.Service, loc *time.Location) *CheckclockJobs {
	if loc == nil {
		loc = time.UTC
	}
	return &CheckclockJobs{
		checkclockSvc: checkclockSvc,
		loc:           loc,
		now:           time.Now,
	}
}

func (j *CheckclockJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees creates ABSENT records for yesterday's no-shows. The
// gate and the swept date both follow the portal timezone, so "yesterday"
// matches what employees saw on the clock.
func (j *CheckclockJobs) MarkAbsentEmployees(ctx context.Context) error {
	nowLocal := j.now().In(j.loc)

	// Only run during the first hour of the local day.
	if nowLocal.Hour() != 0 {
		return nil
	}

	dateLocal := nowLocal.AddDate(0, 0, -1).Format("2006-01-02")

	marked, err := j.checkclockSvc.MarkAbsentees(ctx, dateLocal)
	if err != nil {
		return err
	}

	if marked > 0 {
		slog.Info("Cron: marked absent employees", "date", dateLocal, "count", marked)
	}
	return nil
}
