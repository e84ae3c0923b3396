package auth

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
)

// Principal is the authenticated caller. It is materialized once from the
// verified token at the HTTP boundary and passed explicitly to services;
// nothing below the handler layer reads claims from context.
type Principal struct {
	UserID     string
	CompanyID  string
	Role       Role
	EmployeeID *string
}

// IsEmployee reports whether the principal is linked to an employee record.
func (p Principal) IsEmployee() bool {
	return p.EmployeeID != nil && *p.EmployeeID != ""
}

// Owns reports whether the principal's employee record is employeeID.
func (p Principal) Owns(employeeID string) bool {
	return p.EmployeeID != nil && *p.EmployeeID == employeeID
}

// PrincipalFromContext builds a Principal from the jwtauth claims placed in
// the request context by the token verifier.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Principal{}, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Principal{}, ErrInvalidToken
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return Principal{}, ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return Principal{}, ErrInvalidToken
	}
	role := Role(roleStr)
	if !role.Valid() {
		return Principal{}, ErrInvalidToken
	}

	p := Principal{
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
	}

	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		p.EmployeeID = &employeeID
	}

	return p, nil
}
