package employee

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	for _, existing := range r.employees {
		if existing.CompanyID == e.CompanyID && existing.EmployeeCode == e.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}
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

func (r *fakeEmployeeRepo) List(_ context.Context, _ employee.ListEmployeeFilter, companyID string) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeEmployeeRepo) ListActiveIDs(_ context.Context, companyID string) ([]string, error) {
	var out []string
	for _, e := range r.employees {
		if e.CompanyID == companyID && e.Status == employee.StatusActive {
			out = append(out, e.ID)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id, _ string) error {
	delete(r.employees, id)
	return nil
}

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode: "ENG-042",
		FullName:     "Divya Pillai",
		Email:        "divya@example.com",
		BaseSalary:   decimal.NewFromInt(55000),
		JoinDate:     "2024-11-01",
	}
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	hr := auth.Principal{UserID: uuid.NewString(), CompanyID: uuid.NewString(), Role: auth.RoleHR}

	resp, err := svc.Create(context.Background(), hr, createRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "ENG-042", resp.EmployeeCode)
	assert.Equal(t, string(employee.StatusActive), resp.Status)
	assert.Equal(t, "2024-11-01", resp.JoinDate)
}

func TestCreateEmployee_DuplicateCode(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	hr := auth.Principal{UserID: uuid.NewString(), CompanyID: uuid.NewString(), Role: auth.RoleHR}

	_, err := svc.Create(context.Background(), hr, createRequest())
	require.NoError(t, err)

	req := createRequest()
	req.Email = "other@example.com"
	_, err = svc.Create(context.Background(), hr, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestCreateEmployee_Validation(t *testing.T) {
	t.Parallel()

	svc := NewEmployeeService(newFakeEmployeeRepo())
	hr := auth.Principal{UserID: uuid.NewString(), CompanyID: uuid.NewString(), Role: auth.RoleHR}

	req := createRequest()
	req.Email = "not-an-email"
	req.JoinDate = "01/11/2024"
	_, err := svc.Create(context.Background(), hr, req)
	assert.Error(t, err)
}

func TestGetEmployee_SelfLookup(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	companyID := uuid.NewString()
	hr := auth.Principal{UserID: uuid.NewString(), CompanyID: companyID, Role: auth.RoleHR}

	created, err := svc.Create(context.Background(), hr, createRequest())
	require.NoError(t, err)

	self := auth.Principal{
		UserID:     uuid.NewString(),
		CompanyID:  companyID,
		Role:       auth.RoleEmployee,
		EmployeeID: &created.ID,
	}
	resp, err := svc.Get(context.Background(), self, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)

	// Another employee's record needs the view capability.
	otherID := uuid.NewString()
	other := self
	other.EmployeeID = &otherID
	_, err = svc.Get(context.Background(), other, created.ID)
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestGetEmployee_CrossTenant(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	hr := auth.Principal{UserID: uuid.NewString(), CompanyID: uuid.NewString(), Role: auth.RoleHR}

	created, err := svc.Create(context.Background(), hr, createRequest())
	require.NoError(t, err)

	intruder := auth.Principal{UserID: uuid.NewString(), CompanyID: uuid.NewString(), Role: auth.RoleOwner}
	_, err = svc.Get(context.Background(), intruder, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateEmployee(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	hr := auth.Principal{UserID: uuid.NewString(), CompanyID: uuid.NewString(), Role: auth.RoleHR}

	created, err := svc.Create(context.Background(), hr, createRequest())
	require.NoError(t, err)

	inactive := string(employee.StatusInactive)
	salary := decimal.NewFromInt(62000)
	resp, err := svc.Update(context.Background(), hr, created.ID, employee.UpdateEmployeeRequest{
		Status:     &inactive,
		BaseSalary: &salary,
	})
	require.NoError(t, err)

	assert.Equal(t, inactive, resp.Status)
	assert.True(t, resp.BaseSalary.Equal(salary))
	// Untouched fields survive the partial update.
	assert.Equal(t, "Divya Pillai", resp.FullName)
}

func TestDeleteEmployee_AdminOnly(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	companyID := uuid.NewString()
	hr := auth.Principal{UserID: uuid.NewString(), CompanyID: companyID, Role: auth.RoleHR}

	created, err := svc.Create(context.Background(), hr, createRequest())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), hr, created.ID)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	admin := auth.Principal{UserID: uuid.NewString(), CompanyID: companyID, Role: auth.RoleAdmin}
	require.NoError(t, svc.Delete(context.Background(), admin, created.ID))

	_, err = svc.Get(context.Background(), admin, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployees(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	hr := auth.Principal{UserID: uuid.NewString(), CompanyID: uuid.NewString(), Role: auth.RoleHR}

	_, err := svc.Create(context.Background(), hr, createRequest())
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), hr, employee.ListEmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, resp.Employees, 1)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)

	employeeID := uuid.NewString()
	self := auth.Principal{
		UserID:     uuid.NewString(),
		CompanyID:  hr.CompanyID,
		Role:       auth.RoleEmployee,
		EmployeeID: &employeeID,
	}
	_, err = svc.List(context.Background(), self, employee.ListEmployeeFilter{})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}
