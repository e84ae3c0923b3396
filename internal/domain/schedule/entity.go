package schedule

import "time"

type WorkSchedule struct {
	ID                 string
	CompanyID          string
	EmployeeID         *string // nil for a company-wide default schedule
	Name               string
	InTime             string // "HH:MM"
	OutTime            string // "HH:MM"
	WeeklyOff          []string
	GracePeriodMinutes int
	ShiftType          ShiftType
	EffectiveFrom      time.Time
	EffectiveTo        *time.Time
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type ShiftType string

const (
	ShiftTypeFixed    ShiftType = "fixed"
	ShiftTypeFlexible ShiftType = "flexible"
)

var ShiftTypeValues = []string{
	string(ShiftTypeFixed),
	string(ShiftTypeFlexible),
}

// Resolved is the effective shift definition for one employee after the
// fallback chain (employee schedule, company defaults, hardcoded times) has
// been applied. It always carries usable values.
type Resolved struct {
	InTime       string
	OutTime      string
	WeeklyOff    []string
	GraceMinutes int
	Location     *time.Location
}

// IsWeeklyOff reports whether the weekday name of date (in the resolved
// location) belongs to the weekly-off set.
func (r Resolved) IsWeeklyOff(date time.Time) bool {
	day := date.In(r.Location).Weekday().String()
	for _, off := range r.WeeklyOff {
		if off == day {
			return true
		}
	}
	return false
}
