package schedule

import (
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	EmployeeID         *string  `json:"employee_id,omitempty"`
	Name               string   `json:"name"`
	InTime             string   `json:"in_time"`
	OutTime            string   `json:"out_time"`
	WeeklyOff          []string `json:"weekly_off"`
	GracePeriodMinutes int      `json:"grace_period_minutes"`
	ShiftType          string   `json:"shift_type"`
	EffectiveFrom      string   `json:"effective_from"` // "2006-01-02"
	EffectiveTo        *string  `json:"effective_to,omitempty"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidClock(r.InTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "in_time",
			Message: "in_time must be HH:MM",
		})
	}

	if !validator.IsValidClock(r.OutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "out_time",
			Message: "out_time must be HH:MM",
		})
	}

	for _, day := range r.WeeklyOff {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "weekly_off",
				Message: "weekly off days must be English weekday names",
			})
			break
		}
	}

	if r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must not be negative",
		})
	}

	if !validator.IsInSlice(r.ShiftType, ShiftTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be fixed or flexible",
		})
	}

	from, fromOK := validator.IsValidDate(r.EffectiveFrom)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from must be YYYY-MM-DD",
		})
	}

	if r.EffectiveTo != nil {
		to, toOK := validator.IsValidDate(*r.EffectiveTo)
		if !toOK {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_to",
				Message: "effective_to must be YYYY-MM-DD",
			})
		} else if fromOK && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_to",
				Message: "effective_to must not precede effective_from",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	ID                 string   `json:"id"`
	EmployeeID         *string  `json:"employee_id,omitempty"`
	Name               string   `json:"name"`
	InTime             string   `json:"in_time"`
	OutTime            string   `json:"out_time"`
	WeeklyOff          []string `json:"weekly_off"`
	GracePeriodMinutes int      `json:"grace_period_minutes"`
	ShiftType          string   `json:"shift_type"`
	EffectiveFrom      string   `json:"effective_from"`
	EffectiveTo        *string  `json:"effective_to,omitempty"`
	IsActive           bool     `json:"is_active"`
}

func ToResponse(s WorkSchedule) ScheduleResponse {
	resp := ScheduleResponse{
		ID:                 s.ID,
		EmployeeID:         s.EmployeeID,
		Name:               s.Name,
		InTime:             s.InTime,
		OutTime:            s.OutTime,
		WeeklyOff:          s.WeeklyOff,
		GracePeriodMinutes: s.GracePeriodMinutes,
		ShiftType:          string(s.ShiftType),
		EffectiveFrom:      s.EffectiveFrom.Format("2006-01-02"),
		IsActive:           s.IsActive,
	}
	if s.EffectiveTo != nil {
		to := s.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &to
	}
	return resp
}

func ToResponseList(schedules []WorkSchedule) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, ToResponse(s))
	}
	return out
}
