package attendance

import (
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/schedule"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/timeutil"
)

// Status thresholds in worked minutes. Fixed across schedules.
const (
	PresentThresholdMinutes = 480 // 8h
	HalfDayThresholdMinutes = 240 // 4h
)

// Derived is the outcome of classifying one day's raw punches against the
// resolved schedule.
type Derived struct {
	Status            Status
	TotalMinutes      int
	TotalHours        float64
	LateMinutes       int
	EarlyLeaveMinutes int
	OvertimeMinutes   int
	OvertimeHours     float64
}

// Derive computes a single day's attendance figures. A record missing either
// punch reads as absent with zeroed numbers; an open session stays absent
// until the sweeper or a manual edit closes it.
//
// All wall-clock anchors are built in the resolved schedule's location, so
// the company timezone is applied once here rather than as per-computation
// offset corrections.
func Derive(date time.Time, checkIn, checkOut *time.Time, sched schedule.Resolved) Derived {
	if checkIn == nil || checkOut == nil {
		return Derived{Status: StatusAbsent}
	}

	fixedIn, errIn := timeutil.AtClock(date, sched.InTime, sched.Location)
	fixedOut, errOut := timeutil.AtClock(date, sched.OutTime, sched.Location)
	if errIn != nil || errOut != nil {
		// Resolver output is validated upstream; unparseable times mean the
		// day cannot be scored against a shift.
		return Derived{Status: StatusAbsent}
	}

	in := checkIn.In(sched.Location)
	out := checkOut.In(sched.Location)

	d := Derived{
		TotalMinutes: timeutil.MinutesBetween(in, out),
	}
	d.TotalHours = timeutil.MinutesToHours(d.TotalMinutes)

	if in.After(fixedIn) {
		d.LateMinutes = timeutil.MinutesBetween(fixedIn, in)
	}
	if out.Before(fixedOut) {
		d.EarlyLeaveMinutes = timeutil.MinutesBetween(out, fixedOut)
	}
	if out.After(fixedOut) {
		d.OvertimeMinutes = timeutil.MinutesBetween(fixedOut, out)
		d.OvertimeHours = timeutil.MinutesToHours(d.OvertimeMinutes)
	}

	switch {
	case d.TotalMinutes >= PresentThresholdMinutes:
		d.Status = StatusPresent
	case d.TotalMinutes >= HalfDayThresholdMinutes:
		d.Status = StatusHalfDay
	default:
		d.Status = StatusAbsent
	}

	return d
}

// Apply copies the derived figures onto an attendance record.
func (d Derived) Apply(att *Attendance) {
	att.Status = d.Status
	att.TotalMinutes = d.TotalMinutes
	att.TotalHours = d.TotalHours
	att.LateMinutes = d.LateMinutes
	att.EarlyLeaveMinutes = d.EarlyLeaveMinutes
	att.OvertimeMinutes = d.OvertimeMinutes
	att.OvertimeHours = d.OvertimeHours
}
