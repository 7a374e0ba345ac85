package schedule

import "time"

// ShiftType is the weekly schedule category assigned to an employee.
type ShiftType string

const (
	ShiftRegular  ShiftType = "Regular"
	ShiftPagi     ShiftType = "Shift Pagi"
	ShiftSiang    ShiftType = "Shift Siang"
	ShiftMalam    ShiftType = "Shift Malam"
	ShiftFlexible ShiftType = "Flexible"
)

var ShiftTypeValues = []string{
	string(ShiftRegular),
	string(ShiftPagi),
	string(ShiftSiang),
	string(ShiftMalam),
	string(ShiftFlexible),
}

// DaysPerWeek is the fixed length of an assignment's weekly map.
const DaysPerWeek = 7

var DayNames = [DaysPerWeek]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// DayEntry is one day of the weekly map. When IsOff is set, Start and End
// must be empty; otherwise both are required "HH:MM" values with Start
// strictly before End.
type DayEntry struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	IsOff bool   `json:"is_off"`
}

type Assignment struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Jobdesk      string
	ShiftType    ShiftType
	Days         [DaysPerWeek]DayEntry
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DayFor returns the entry for a weekday (time.Weekday, Sunday=0).
func (a *Assignment) DayFor(wd time.Weekday) DayEntry {
	// Weekly map is Monday-first.
	idx := (int(wd) + 6) % DaysPerWeek
	return a.Days[idx]
}
