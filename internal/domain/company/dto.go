package company

import (
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/pkg/validator"
)

type UpdateCompanyRequest struct {
	Name             *string  `json:"name,omitempty"`
	Timezone         *string  `json:"timezone,omitempty"`
	DefaultInTime    *string  `json:"default_in_time,omitempty"`
	DefaultOutTime   *string  `json:"default_out_time,omitempty"`
	DefaultWeeklyOff []string `json:"default_weekly_off,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Timezone != nil {
		if _, err := time.LoadLocation(*r.Timezone); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "timezone",
				Message: "timezone must be a valid IANA zone name",
			})
		}
	}

	if r.DefaultInTime != nil && !validator.IsValidClock(*r.DefaultInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_in_time",
			Message: "default_in_time must be HH:MM",
		})
	}

	if r.DefaultOutTime != nil && !validator.IsValidClock(*r.DefaultOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_out_time",
			Message: "default_out_time must be HH:MM",
		})
	}

	for _, day := range r.DefaultWeeklyOff {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "default_weekly_off",
				Message: "weekly off days must be English weekday names",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompanyResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Timezone         string   `json:"timezone"`
	DefaultInTime    string   `json:"default_in_time"`
	DefaultOutTime   string   `json:"default_out_time"`
	DefaultWeeklyOff []string `json:"default_weekly_off"`
}
