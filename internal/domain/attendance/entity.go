package attendance

import "time"

type Attendance struct {
	ID                string
	EmployeeID        string
	CompanyID         string
	Date              time.Time // calendar day, midnight in the company zone
	CheckIn           *time.Time
	CheckOut          *time.Time
	Status            Status
	TotalMinutes      int
	TotalHours        float64
	LateMinutes       int
	EarlyLeaveMinutes int
	OvertimeMinutes   int
	OvertimeHours     float64
	LogType           LogType
	AutoCheckout      bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined for responses
	EmployeeName string
	EmployeeCode string
}

type Status string

const (
	StatusPresent   Status = "present"
	StatusHalfDay   Status = "half_day"
	StatusAbsent    Status = "absent"
	StatusHoliday   Status = "holiday"
	StatusLeave     Status = "leave"
	StatusWeeklyOff Status = "weekly_off"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusHalfDay),
	string(StatusAbsent),
	string(StatusHoliday),
	string(StatusLeave),
	string(StatusWeeklyOff),
}

type LogType string

const (
	LogTypeSelf   LogType = "self"   // employee check-in/out
	LogTypeManual LogType = "manual" // HR correction
	LogTypeSystem LogType = "system" // holiday propagation, sweeper
)
