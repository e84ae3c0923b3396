package auth

type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}

type Action string

const (
	// Self service
	ActionAttendanceCheckIn  Action = "attendance.check_in"
	ActionAttendanceCheckOut Action = "attendance.check_out"
	ActionAttendanceViewOwn  Action = "attendance.view_own"
	ActionLeaveApply         Action = "leave.apply"
	ActionLeaveViewOwn       Action = "leave.view_own"
	ActionPayrollViewOwn     Action = "payroll.view_own"
	ActionHolidayView        Action = "holiday.view"

	// HR operations
	ActionEmployeeView    Action = "employee.view"
	ActionEmployeeManage  Action = "employee.manage"
	ActionAttendanceView  Action = "attendance.view"
	ActionAttendanceEdit  Action = "attendance.edit"
	ActionLeaveView       Action = "leave.view"
	ActionLeaveDecide     Action = "leave.decide"
	ActionHolidayManage   Action = "holiday.manage"
	ActionScheduleManage  Action = "schedule.manage"
	ActionPayrollView     Action = "payroll.view"
	ActionPayrollGenerate Action = "payroll.generate"

	// Administration
	ActionEmployeeDelete Action = "employee.delete"
	ActionCompanyManage  Action = "company.manage"
)

var hrActions = []Action{
	ActionEmployeeView, ActionEmployeeManage,
	ActionAttendanceView, ActionAttendanceEdit,
	ActionLeaveView, ActionLeaveDecide,
	ActionHolidayManage, ActionScheduleManage,
	ActionPayrollView, ActionPayrollGenerate,
}

var selfActions = []Action{
	ActionAttendanceCheckIn, ActionAttendanceCheckOut, ActionAttendanceViewOwn,
	ActionLeaveApply, ActionLeaveViewOwn, ActionPayrollViewOwn,
	ActionHolidayView,
}

var adminActions = []Action{
	ActionEmployeeDelete, ActionCompanyManage,
}

// rolePermissions maps each role to its allowed actions. Owner and admin
// cover everything; hr covers people operations plus self service; employee
// covers self service only.
var rolePermissions = map[Role][]Action{
	RoleOwner:    concat(selfActions, hrActions, adminActions),
	RoleAdmin:    concat(selfActions, hrActions, adminActions),
	RoleHR:       concat(selfActions, hrActions),
	RoleEmployee: selfActions,
}

func concat(lists ...[]Action) []Action {
	var out []Action
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// CanPerform is the single authorization decision point: the principal may
// perform action on a resource owned by companyID. Cross-tenant access is
// always denied, regardless of role.
func CanPerform(p Principal, action Action, companyID string) bool {
	if companyID == "" || p.CompanyID != companyID {
		return false
	}

	allowed, ok := rolePermissions[p.Role]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == action {
			return true
		}
	}
	return false
}
