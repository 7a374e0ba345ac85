package fixtures

import (
	"github.com/kerjahub/hris-portal-go/internal/domain/location"
	"github.com/kerjahub/hris-portal-go/internal/domain/schedule"
)

func float64Ptr(f float64) *float64 { return &f }

// GetDefaultLocationPresets returns the quick-select locations seeded for a
// fresh portal. "Remote" is symbolic: it carries no coordinates, so the map
// picker stays live after selecting it.
func GetDefaultLocationPresets() []location.Preset {
	return []location.Preset{
		{
			Name:      "Kantor Pusat",
			Address:   "Jl. Jenderal Sudirman No. 1, Jakarta Pusat",
			Latitude:  float64Ptr(-6.208763),
			Longitude: float64Ptr(106.845599),
		},
		{
			Name:      "Kantor Cabang Malang",
			Address:   "Jl. Seruni No. 9, Lowokwaru, Malang",
			Latitude:  float64Ptr(-7.952201),
			Longitude: float64Ptr(112.614056),
		},
		{
			Name:    "Remote",
			Address: "",
		},
	}
}

// GetDefaultShiftTimes returns the canonical weekly map for a shift type,
// used when an admin assigns a schedule without customizing the days.
// Regular and Flexible run Monday-Friday office hours; the three shifts
// cover morning, afternoon and night windows. Saturday and Sunday are off.
func GetDefaultShiftTimes(shiftType schedule.ShiftType) [schedule.DaysPerWeek]schedule.DayEntry {
	var start, end string
	switch shiftType {
	case schedule.ShiftPagi:
		start, end = "06:00", "14:00"
	case schedule.ShiftSiang:
		start, end = "14:00", "22:00"
	case schedule.ShiftMalam:
		// Night windows are stored as the on-duty evening block; the
		// after-midnight remainder belongs to the next calendar day.
		start, end = "22:00", "23:59"
	case schedule.ShiftFlexible:
		start, end = "08:00", "17:00"
	default:
		start, end = "09:00", "18:00"
	}

	var days [schedule.DaysPerWeek]schedule.DayEntry
	for i := 0; i < schedule.DaysPerWeek; i++ {
		// Monday-first map; indexes 5 and 6 are the weekend.
		if i >= 5 {
			days[i] = schedule.DayEntry{IsOff: true}
			continue
		}
		days[i] = schedule.DayEntry{Start: start, End: end}
	}
	return days
}
