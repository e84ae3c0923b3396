package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("already checked in for this date")
	ErrNotCheckedIn       = errors.New("no open attendance session for this date")
	ErrAlreadyCheckedOut  = errors.New("already checked out for this date")
	ErrNonWorkingDay      = errors.New("cannot check in on a non-working day")
)
