package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	CompanyID    string
	EmployeeCode string
	FullName     string
	Email        string
	Status       Status
	BaseSalary   decimal.Decimal
	JoinDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
