package response

import (
	"errors"
	"net/http"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/attendance"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/company"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/employee"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/holiday"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/leave"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/payroll"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/schedule"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/timeutil"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "You are not allowed to perform this action")

	// Company
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")

	// Attendance
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for this date")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out for this date")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No open attendance session for this date", nil)
	case errors.Is(err, attendance.ErrNonWorkingDay):
		BadRequest(w, "Cannot check in on a non-working day", nil)

	// Leave
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveOverlaps):
		Conflict(w, "Leave request overlaps an existing request")
	case errors.Is(err, leave.ErrLeaveAlreadyFinal):
		Conflict(w, "Leave request has already been decided")
	case errors.Is(err, leave.ErrInvalidLeaveRange):
		BadRequest(w, "end_date must not be before start_date", nil)

	// Holiday
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday with the same date range already exists")
	case errors.Is(err, holiday.ErrInvalidRange):
		BadRequest(w, "end_date must not be before start_date", nil)

	// Schedule
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrActiveScheduleExists):
		Conflict(w, "Employee already has an active work schedule")
	case errors.Is(err, schedule.ErrInvalidEffectiveRange):
		BadRequest(w, "effective_to must not precede effective_from", nil)

	// Payroll
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidMonthLabel):
		BadRequest(w, "month must be in \"January 2006\" format", nil)
	case errors.Is(err, payroll.ErrFutureMonth):
		BadRequest(w, "Cannot compute payroll for a future month", nil)

	// Shared
	case errors.Is(err, timeutil.ErrInvalidClock):
		BadRequest(w, "Clock values must be in HH:MM format", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
