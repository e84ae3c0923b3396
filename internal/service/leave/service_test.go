package leave

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/attendance"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/employee"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	leaves map[string]*leave.Leave
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: make(map[string]*leave.Leave)}
}

func (r *fakeLeaveRepo) Create(_ context.Context, l *leave.Leave) error {
	l.ID = uuid.NewString()
	stored := *l
	r.leaves[l.ID] = &stored
	return nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, companyID, id string) (*leave.Leave, error) {
	l, ok := r.leaves[id]
	if !ok || l.CompanyID != companyID {
		return nil, leave.ErrLeaveNotFound
	}
	copied := *l
	return &copied, nil
}

func (r *fakeLeaveRepo) ListByCompany(_ context.Context, companyID string, _ leave.ListFilter) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if l.CompanyID == companyID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) Update(_ context.Context, l *leave.Leave) error {
	stored := *l
	r.leaves[l.ID] = &stored
	return nil
}

func (r *fakeLeaveRepo) HasOverlap(_ context.Context, employeeID string, start, end time.Time) (bool, error) {
	for _, l := range r.leaves {
		if l.EmployeeID != employeeID || l.Status == leave.StatusRejected {
			continue
		}
		if !start.After(l.EndDate) && !end.Before(l.StartDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLeaveRepo) ListApprovedInRange(_ context.Context, employeeID string, start, end time.Time) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if l.EmployeeID == employeeID && l.Status == leave.StatusApproved &&
			!start.After(l.EndDate) && !end.Before(l.StartDate) {
			out = append(out, *l)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = uuid.NewString()
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id, companyID string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok || e.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ employee.ListEmployeeFilter, _ string) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (r *fakeEmployeeRepo) ListActiveIDs(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id, _ string) error {
	delete(r.employees, id)
	return nil
}

// stampRecorder captures status propagation calls; everything else is a
// no-op because Decide only touches UpsertStatusRange.
type stampRecorder struct {
	stamps []stamp
}

type stamp struct {
	employeeIDs []string
	start, end  time.Time
	status      attendance.Status
}

func (r *stampRecorder) Create(_ context.Context, _ *attendance.Attendance) error { return nil }
func (r *stampRecorder) GetByID(_ context.Context, _, _ string) (*attendance.Attendance, error) {
	return nil, attendance.ErrAttendanceNotFound
}
func (r *stampRecorder) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Attendance, error) {
	return nil, attendance.ErrAttendanceNotFound
}
func (r *stampRecorder) ListByEmployeeRange(_ context.Context, _ string, _, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}
func (r *stampRecorder) ListByCompany(_ context.Context, _ string, _ attendance.ListFilter) ([]attendance.Attendance, error) {
	return nil, nil
}
func (r *stampRecorder) Update(_ context.Context, _ *attendance.Attendance) error { return nil }
func (r *stampRecorder) ListOpenInWindow(_ context.Context, _, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}
func (r *stampRecorder) CloseOpenSession(_ context.Context, _ *attendance.Attendance) (bool, error) {
	return false, nil
}
func (r *stampRecorder) UpsertStatusRange(_ context.Context, _ string, employeeIDs []string, start, end time.Time, status attendance.Status) error {
	r.stamps = append(r.stamps, stamp{employeeIDs: employeeIDs, start: start, end: end, status: status})
	return nil
}
func (r *stampRecorder) DeleteStatusRange(_ context.Context, _ string, _, _ time.Time, _ attendance.Status) error {
	return nil
}

type fixture struct {
	svc       *LeaveServiceImpl
	leaveRepo *fakeLeaveRepo
	stamps    *stampRecorder
	employee  employee.Employee
	principal auth.Principal
	hr        auth.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	companyID := uuid.NewString()
	emp := employee.Employee{
		ID:           uuid.NewString(),
		CompanyID:    companyID,
		EmployeeCode: "EMP-002",
		FullName:     "Ravi Nair",
		Status:       employee.StatusActive,
	}

	leaveRepo := newFakeLeaveRepo()
	stamps := &stampRecorder{}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{emp.ID: emp}}

	svc := NewLeaveService(leaveRepo, employeeRepo, stamps)
	svc.now = func() time.Time { return time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC) }

	return &fixture{
		svc:       svc,
		leaveRepo: leaveRepo,
		stamps:    stamps,
		employee:  emp,
		principal: auth.Principal{
			UserID:     uuid.NewString(),
			CompanyID:  companyID,
			Role:       auth.RoleEmployee,
			EmployeeID: &emp.ID,
		},
		hr: auth.Principal{UserID: uuid.NewString(), CompanyID: companyID, Role: auth.RoleHR},
	}
}

func applyRequest(employeeID string) leave.ApplyLeaveRequest {
	return leave.ApplyLeaveRequest{
		EmployeeID: employeeID,
		Type:       string(leave.TypeCasual),
		StartDate:  "2025-03-17",
		EndDate:    "2025-03-19",
		Reason:     "family function",
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	resp, err := f.svc.Apply(context.Background(), f.principal, applyRequest(f.employee.ID))
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, "2025-03-17", resp.StartDate)
	assert.Equal(t, "EMP-002", resp.EmployeeCode)
}

func TestApply_Overlap(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.svc.Apply(context.Background(), f.principal, applyRequest(f.employee.ID))
	require.NoError(t, err)

	// Same span again, still pending.
	_, err = f.svc.Apply(context.Background(), f.principal, applyRequest(f.employee.ID))
	assert.ErrorIs(t, err, leave.ErrLeaveOverlaps)

	// Partially intersecting span.
	req := applyRequest(f.employee.ID)
	req.StartDate, req.EndDate = "2025-03-19", "2025-03-21"
	_, err = f.svc.Apply(context.Background(), f.principal, req)
	assert.ErrorIs(t, err, leave.ErrLeaveOverlaps)
}

func TestApply_InvertedRange(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	req := applyRequest(f.employee.ID)
	req.StartDate, req.EndDate = "2025-03-19", "2025-03-17"
	_, err := f.svc.Apply(context.Background(), f.principal, req)
	assert.ErrorIs(t, err, leave.ErrInvalidLeaveRange)
}

func TestApply_OnBehalfRequiresDecideCapability(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	otherID := uuid.NewString()
	other := f.principal
	other.EmployeeID = &otherID

	_, err := f.svc.Apply(context.Background(), other, applyRequest(f.employee.ID))
	assert.ErrorIs(t, err, auth.ErrForbidden)

	_, err = f.svc.Apply(context.Background(), f.hr, applyRequest(f.employee.ID))
	assert.NoError(t, err)
}

func TestDecide_ApproveStampsAttendance(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	resp, err := f.svc.Apply(context.Background(), f.principal, applyRequest(f.employee.ID))
	require.NoError(t, err)

	decided, err := f.svc.Decide(context.Background(), f.hr, resp.ID, leave.DecideLeaveRequest{
		Status: string(leave.StatusApproved),
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, f.hr.UserID, *decided.DecidedBy)
	assert.NotNil(t, decided.DecidedAt)

	require.Len(t, f.stamps.stamps, 1)
	s := f.stamps.stamps[0]
	assert.Equal(t, []string{f.employee.ID}, s.employeeIDs)
	assert.Equal(t, "2025-03-17", s.start.Format("2006-01-02"))
	assert.Equal(t, "2025-03-19", s.end.Format("2006-01-02"))
	assert.Equal(t, attendance.StatusLeave, s.status)
}

func TestDecide_RejectLeavesAttendanceUntouched(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	resp, err := f.svc.Apply(context.Background(), f.principal, applyRequest(f.employee.ID))
	require.NoError(t, err)

	decided, err := f.svc.Decide(context.Background(), f.hr, resp.ID, leave.DecideLeaveRequest{
		Status: string(leave.StatusRejected),
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusRejected, decided.Status)
	assert.Empty(t, f.stamps.stamps)
}

func TestDecide_AlreadyFinal(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	resp, err := f.svc.Apply(context.Background(), f.principal, applyRequest(f.employee.ID))
	require.NoError(t, err)

	_, err = f.svc.Decide(context.Background(), f.hr, resp.ID, leave.DecideLeaveRequest{
		Status: string(leave.StatusApproved),
	})
	require.NoError(t, err)

	_, err = f.svc.Decide(context.Background(), f.hr, resp.ID, leave.DecideLeaveRequest{
		Status: string(leave.StatusRejected),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyFinal)
}

func TestDecide_EmployeeForbidden(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	resp, err := f.svc.Apply(context.Background(), f.principal, applyRequest(f.employee.ID))
	require.NoError(t, err)

	_, err = f.svc.Decide(context.Background(), f.principal, resp.ID, leave.DecideLeaveRequest{
		Status: string(leave.StatusApproved),
	})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestListMine(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.svc.Apply(context.Background(), f.principal, applyRequest(f.employee.ID))
	require.NoError(t, err)

	records, err := f.svc.ListMine(context.Background(), f.principal)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// HR without a linked employee record has nothing to list.
	_, err = f.svc.ListMine(context.Background(), f.hr)
	assert.ErrorIs(t, err, auth.ErrForbidden)
}
