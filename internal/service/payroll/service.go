package payroll

import (
	"context"
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/attendance"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/employee"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/holiday"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/leave"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/payroll"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/schedule"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/timeutil"
)

const (
	statusMissing = "missing"
	dateFormat    = "2006-01-02"
	clockFormat   = "15:04"
)

type PayrollServiceImpl struct {
	payrollRepo     payroll.PayrollRepository
	attendanceRepo  attendance.AttendanceRepository
	leaveRepo       leave.LeaveRepository
	holidayRepo     holiday.HolidayRepository
	employeeRepo    employee.EmployeeRepository
	scheduleService schedule.ScheduleService
	now             func() time.Time
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	holidayRepo holiday.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleService schedule.ScheduleService,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		payrollRepo:     payrollRepo,
		attendanceRepo:  attendanceRepo,
		leaveRepo:       leaveRepo,
		holidayRepo:     holidayRepo,
		employeeRepo:    employeeRepo,
		scheduleService: scheduleService,
		now:             time.Now,
	}
}

func (s *PayrollServiceImpl) authorizeView(p auth.Principal, employeeID string) bool {
	if auth.CanPerform(p, auth.ActionPayrollView, p.CompanyID) {
		return true
	}
	return auth.CanPerform(p, auth.ActionPayrollViewOwn, p.CompanyID) &&
		p.EmployeeID != nil && *p.EmployeeID == employeeID
}

// Compute implements payroll.PayrollService. The walk runs from the first
// of the month through min(month end, today) and classifies each day with
// strict priority: holiday, then approved leave, then weekly off (only when
// no attendance row exists), then the recorded attendance status, then
// missing.
func (s *PayrollServiceImpl) Compute(ctx context.Context, p auth.Principal, employeeID, month string) (payroll.Computation, error) {
	if !s.authorizeView(p, employeeID) {
		return payroll.Computation{}, auth.ErrForbidden
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, p.CompanyID)
	if err != nil {
		return payroll.Computation{}, err
	}

	sched := s.scheduleService.Resolve(ctx, p.CompanyID, emp.ID)

	start, nextMonth, err := timeutil.MonthRange(month, sched.Location)
	if err != nil {
		return payroll.Computation{}, payroll.ErrInvalidMonthLabel
	}

	today := timeutil.DateOnly(s.now(), sched.Location)
	if start.After(today) {
		return payroll.Computation{}, payroll.ErrFutureMonth
	}
	end := nextMonth.AddDate(0, 0, -1)
	if end.After(today) {
		end = today
	}

	records, err := s.attendanceRepo.ListByEmployeeRange(ctx, emp.ID, start, end)
	if err != nil {
		return payroll.Computation{}, err
	}
	leaves, err := s.leaveRepo.ListApprovedInRange(ctx, emp.ID, start, end)
	if err != nil {
		return payroll.Computation{}, err
	}
	holidays, err := s.holidayRepo.ListOverlapping(ctx, p.CompanyID, start, end)
	if err != nil {
		return payroll.Computation{}, err
	}

	byDate := make(map[string]*attendance.Attendance, len(records))
	for i := range records {
		byDate[records[i].Date.Format(dateFormat)] = &records[i]
	}

	holidayDays := make(map[string]bool)
	for _, h := range holidays {
		for d := h.StartDate; !d.After(h.EndDate); d = d.AddDate(0, 0, 1) {
			holidayDays[d.Format(dateFormat)] = true
		}
	}

	summary := payroll.Payroll{
		EmployeeID:  emp.ID,
		CompanyID:   p.CompanyID,
		Month:       month,
		PeriodStart: start,
		PeriodEnd:   end,
		BaseSalary:  emp.BaseSalary,
	}
	var ledger []payroll.LedgerEntry

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateFormat)
		att := byDate[key]

		entry := payroll.LedgerEntry{
			EmployeeCode: emp.EmployeeCode,
			Name:         emp.FullName,
			Date:         key,
			Day:          day.Weekday().String(),
		}

		switch {
		case holidayDays[key]:
			entry.Status = string(attendance.StatusHoliday)
			summary.OfficeHolidays++

		case coveringLeave(leaves, day) != nil:
			entry.Status = string(attendance.StatusLeave)
			if coveringLeave(leaves, day).Type == leave.TypeUnpaid {
				summary.UnpaidLeaves++
			} else {
				summary.PaidLeaves++
			}

		case att == nil && sched.IsWeeklyOff(day):
			entry.Status = string(attendance.StatusWeeklyOff)
			summary.WeeklyOffs++

		case att != nil:
			entry.Status = string(att.Status)
			if att.CheckIn != nil {
				entry.CheckIn = att.CheckIn.In(sched.Location).Format(clockFormat)
			}
			if att.CheckOut != nil {
				entry.CheckOut = att.CheckOut.In(sched.Location).Format(clockFormat)
			}
			entry.TotalHours = att.TotalHours
			entry.OvertimeHours = att.OvertimeHours

			switch att.Status {
			case attendance.StatusPresent:
				summary.Present++
			case attendance.StatusHalfDay:
				summary.Present += 0.5
			case attendance.StatusWeeklyOff:
				summary.WeeklyOffs++
			default:
				summary.MissingDays++
			}
			summary.OvertimeHours += att.OvertimeHours

		default:
			entry.Status = statusMissing
			summary.MissingDays++
		}

		ledger = append(ledger, entry)
	}

	summary.TotalWorking = summary.Present +
		float64(summary.PaidLeaves+summary.OfficeHolidays+summary.WeeklyOffs)

	return payroll.Computation{Summary: summary, Ledger: ledger}, nil
}

// Generate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Generate(ctx context.Context, p auth.Principal, req payroll.GeneratePayrollRequest) (payroll.Computation, error) {
	if err := req.Validate(); err != nil {
		return payroll.Computation{}, err
	}
	if !auth.CanPerform(p, auth.ActionPayrollGenerate, p.CompanyID) {
		return payroll.Computation{}, auth.ErrForbidden
	}

	comp, err := s.Compute(ctx, p, req.EmployeeID, req.Month)
	if err != nil {
		return payroll.Computation{}, err
	}

	if err := s.payrollRepo.Upsert(ctx, &comp.Summary); err != nil {
		return payroll.Computation{}, err
	}

	return comp, nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, p auth.Principal, employeeID, month string) (*payroll.Payroll, error) {
	if !s.authorizeView(p, employeeID) {
		return nil, auth.ErrForbidden
	}

	return s.payrollRepo.GetByEmployeeAndMonth(ctx, p.CompanyID, employeeID, month)
}

func coveringLeave(leaves []leave.Leave, day time.Time) *leave.Leave {
	for i := range leaves {
		if leaves[i].Covers(day) {
			return &leaves[i]
		}
	}
	return nil
}
