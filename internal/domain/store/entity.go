// internal/domain/store/entity.go
package store

import (
	"fmt"
	"regexp"
	"time"
)

// DaySchedule holds the working hours for one weekday. Times are local
// wall-clock "HH:MM"; they are not consulted when the day is disabled.
type DaySchedule struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Weekday   time.Weekday `gorm:"uniqueIndex;not null" json:"weekday"`
	Enabled   bool         `gorm:"default:true" json:"enabled"`
	OpenTime  string       `gorm:"size:5" json:"open_time"`
	CloseTime string       `gorm:"size:5" json:"close_time"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Settings is the persisted manual open flag and auto-close toggle.
// A single row; admin edited.
type Settings struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	IsOpen           bool      `gorm:"default:true" json:"is_open"`
	AutoCloseEnabled bool      `gorm:"default:true" json:"auto_close_enabled"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName overrides
func (DaySchedule) TableName() string { return "store_day_schedules" }
func (Settings) TableName() string    { return "store_settings" }

// WeeklySchedule maps each weekday to its working hours
type WeeklySchedule map[time.Weekday]DaySchedule

// Status is the full availability input consulted at checkout: manual
// flag, auto-close toggle and the weekly schedule. It is fetched fresh
// per checkout attempt, never cached across long intervals.
type Status struct {
	IsOpen           bool           `json:"is_open"`
	AutoCloseEnabled bool           `json:"auto_close_enabled"`
	Schedule         WeeklySchedule `json:"schedule"`
}

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateDaySchedule checks a schedule row where it enters the
// availability decision. Malformed rows are a loud error, not a
// default.
func ValidateDaySchedule(day *DaySchedule) error {
	if day.Weekday < time.Sunday || day.Weekday > time.Saturday {
		return fmt.Errorf("day schedule %d has invalid weekday %d", day.ID, day.Weekday)
	}
	if !day.Enabled {
		return nil
	}
	if !timePattern.MatchString(day.OpenTime) {
		return fmt.Errorf("day schedule for %s has malformed open time %q", day.Weekday, day.OpenTime)
	}
	if !timePattern.MatchString(day.CloseTime) {
		return fmt.Errorf("day schedule for %s has malformed close time %q", day.Weekday, day.CloseTime)
	}
	return nil
}
