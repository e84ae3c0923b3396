package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("a holiday with the same date range already exists")
	ErrInvalidRange    = errors.New("holiday end date must not be before start date")
)
