package checkclock

import (
	"strconv"
	"strings"
)

// Stats are the aggregate rollups shown above the attendance table. They are
// computed over the full filtered set, not the visible page.
type Stats struct {
	OnTime          int     `json:"on_time"`
	Late            int     `json:"late"`
	Absent          int     `json:"absent"`
	AnnualLeave     int     `json:"annual_leave"`
	Sick            int     `json:"sick"`
	WaitingApproval int     `json:"waiting_approval"`
	Rejected        int     `json:"rejected"`
	TotalWorkHours  float64 `json:"total_work_hours"`
}

// ComputeStats buckets records by display status and sums the numeric
// components of their work-hour strings. Records that fail classification
// are skipped rather than failing the whole rollup.
func ComputeStats(records []Record) Stats {
	var s Stats
	for _, rec := range records {
		c, err := Classify(rec)
		if err != nil {
			continue
		}
		switch c.DisplayStatus {
		case StatusOnTime:
			s.OnTime++
		case StatusLate:
			s.Late++
		case StatusAbsent:
			s.Absent++
		case StatusAnnualLeave:
			s.AnnualLeave++
		case StatusSick:
			s.Sick++
		case StatusWaitingApproval:
			s.WaitingApproval++
		case StatusRejected:
			s.Rejected++
		}
		s.TotalWorkHours += ParseWorkHours(c.WorkHours)
	}
	return s
}

// ParseWorkHours extracts the hour value from a "9h 50m" string. Entries
// that carry no numeric components ("-", empty) contribute zero.
func ParseWorkHours(s string) float64 {
	var hours, minutes float64
	for _, part := range strings.Fields(s) {
		if v, ok := numericSuffix(part, "h"); ok {
			hours = v
		} else if v, ok := numericSuffix(part, "m"); ok {
			minutes = v
		}
	}
	return hours + minutes/60
}

func numericSuffix(part, suffix string) (float64, bool) {
	if !strings.HasSuffix(part, suffix) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(part, suffix), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
