package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func principal(role Role, companyID string) Principal {
	empID := "emp-1"
	return Principal{UserID: "user-1", CompanyID: companyID, Role: role, EmployeeID: &empID}
}

func TestCanPerform_RoleMatrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		role   Role
		action Action
		want   bool
	}{
		{"employee can check in", RoleEmployee, ActionAttendanceCheckIn, true},
		{"employee can apply for leave", RoleEmployee, ActionLeaveApply, true},
		{"employee cannot decide leave", RoleEmployee, ActionLeaveDecide, false},
		{"employee cannot generate payroll", RoleEmployee, ActionPayrollGenerate, false},
		{"employee cannot delete employees", RoleEmployee, ActionEmployeeDelete, false},
		{"hr can manage employees", RoleHR, ActionEmployeeManage, true},
		{"hr can manage holidays", RoleHR, ActionHolidayManage, true},
		{"hr can generate payroll", RoleHR, ActionPayrollGenerate, true},
		{"hr cannot delete employees", RoleHR, ActionEmployeeDelete, false},
		{"hr cannot manage company settings", RoleHR, ActionCompanyManage, false},
		{"admin can delete employees", RoleAdmin, ActionEmployeeDelete, true},
		{"admin can manage company", RoleAdmin, ActionCompanyManage, true},
		{"owner can do everything hr can", RoleOwner, ActionLeaveDecide, true},
		{"owner can manage company", RoleOwner, ActionCompanyManage, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CanPerform(principal(tt.role, "company-1"), tt.action, "company-1")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanPerform_TenantIsolation(t *testing.T) {
	t.Parallel()

	// Even an owner is denied on another company's resources.
	p := principal(RoleOwner, "company-1")
	assert.False(t, CanPerform(p, ActionEmployeeView, "company-2"))
	assert.False(t, CanPerform(p, ActionCompanyManage, ""))
}

func TestCanPerform_UnknownRole(t *testing.T) {
	t.Parallel()

	p := principal(Role("pending"), "company-1")
	assert.False(t, CanPerform(p, ActionAttendanceViewOwn, "company-1"))
}
