package schedule

import "errors"

var (
	ErrScheduleNotFound      = errors.New("work schedule not found")
	ErrActiveScheduleExists  = errors.New("employee already has an active work schedule")
	ErrInvalidEffectiveRange = errors.New("effective_to must not precede effective_from")
)
