package leave

import "errors"

var (
	ErrLeaveNotFound      = errors.New("leave request not found")
	ErrLeaveOverlaps      = errors.New("leave request overlaps an existing request")
	ErrLeaveAlreadyFinal  = errors.New("leave request has already been decided")
	ErrInvalidLeaveRange  = errors.New("leave end date must not be before start date")
	ErrLeaveNotOwnRequest = errors.New("leave request belongs to another employee")
)
