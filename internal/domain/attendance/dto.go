package attendance

import (
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ManualUpdateRequest lets HR correct a day's punches. Clock values are
// local wall-clock times in the company timezone.
type ManualUpdateRequest struct {
	Date     string  `json:"date"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
}

func (r *ManualUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.CheckIn != nil && !validator.IsValidClock(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be in HH:MM format",
		})
	}

	if r.CheckOut != nil && !validator.IsValidClock(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
}

type AttendanceResponse struct {
	ID                string     `json:"id"`
	EmployeeID        string     `json:"employee_id"`
	EmployeeCode      string     `json:"employee_code,omitempty"`
	EmployeeName      string     `json:"employee_name,omitempty"`
	Date              string     `json:"date"`
	CheckIn           *time.Time `json:"check_in"`
	CheckOut          *time.Time `json:"check_out"`
	Status            Status     `json:"status"`
	TotalHours        float64    `json:"total_hours"`
	LateMinutes       int        `json:"late_minutes"`
	EarlyLeaveMinutes int        `json:"early_leave_minutes"`
	OvertimeHours     float64    `json:"overtime_hours"`
	LogType           LogType    `json:"log_type"`
	AutoCheckout      bool       `json:"auto_checkout"`
}

func ToResponse(a *Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                a.ID,
		EmployeeID:        a.EmployeeID,
		EmployeeCode:      a.EmployeeCode,
		EmployeeName:      a.EmployeeName,
		Date:              a.Date.Format("2006-01-02"),
		CheckIn:           a.CheckIn,
		CheckOut:          a.CheckOut,
		Status:            a.Status,
		TotalHours:        a.TotalHours,
		LateMinutes:       a.LateMinutes,
		EarlyLeaveMinutes: a.EarlyLeaveMinutes,
		OvertimeHours:     a.OvertimeHours,
		LogType:           a.LogType,
		AutoCheckout:      a.AutoCheckout,
	}
}

func ToResponseList(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for i := range records {
		out = append(out, ToResponse(&records[i]))
	}
	return out
}
