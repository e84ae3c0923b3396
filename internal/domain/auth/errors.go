package auth

import "errors"

var (
	ErrInvalidToken = errors.New("invalid or missing token")
	ErrForbidden    = errors.New("insufficient permissions for this action")
)
