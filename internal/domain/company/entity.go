package company

import "time"

type Company struct {
	ID               string
	Name             string
	Timezone         string // IANA zone name, e.g. "Asia/Kolkata"
	DefaultInTime    string // "HH:MM"
	DefaultOutTime   string // "HH:MM"
	DefaultWeeklyOff []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Location resolves the company timezone, falling back to UTC when the
// stored zone name is unknown.
func (c Company) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
