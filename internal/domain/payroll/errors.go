package payroll

import "errors"

var (
	ErrPayrollNotFound   = errors.New("payroll record not found")
	ErrInvalidMonthLabel = errors.New("month must be in \"January 2006\" format")
	ErrFutureMonth       = errors.New("cannot compute payroll for a future month")
)
