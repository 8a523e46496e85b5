// internal/domain/store/service.go
package store

import (
	"fmt"
	"time"

	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"gorm.io/gorm"
)

// Service handles store availability state
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new store service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// UpdateSettingsRequest represents admin updates to the manual flag
// and the auto-close toggle
type UpdateSettingsRequest struct {
	IsOpen           *bool `json:"is_open"`
	AutoCloseEnabled *bool `json:"auto_close_enabled"`
}

// UpdateDayScheduleRequest represents admin updates to one weekday
type UpdateDayScheduleRequest struct {
	Enabled   *bool   `json:"enabled"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
}

// GetStatus loads the full availability state fresh from the database.
// The weekly schedule must hold exactly seven valid rows; anything else
// means the stored configuration is broken and the error surfaces.
func (s *Service) GetStatus() (*Status, error) {
	var settings Settings
	if err := s.db.First(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to load store settings: %w", err)
	}

	var days []DaySchedule
	if err := s.db.Find(&days).Error; err != nil {
		return nil, fmt.Errorf("failed to load weekly schedule: %w", err)
	}
	if len(days) != 7 {
		return nil, fmt.Errorf("weekly schedule has %d days, expected 7", len(days))
	}

	schedule := make(WeeklySchedule, 7)
	for _, day := range days {
		if err := ValidateDaySchedule(&day); err != nil {
			return nil, fmt.Errorf("weekly schedule is malformed: %w", err)
		}
		if _, exists := schedule[day.Weekday]; exists {
			return nil, fmt.Errorf("weekly schedule has duplicate rows for %s", day.Weekday)
		}
		schedule[day.Weekday] = day
	}

	return &Status{
		IsOpen:           settings.IsOpen,
		AutoCloseEnabled: settings.AutoCloseEnabled,
		Schedule:         schedule,
	}, nil
}

// IsOpenNow fetches the current status and evaluates it against the
// wall clock
func (s *Service) IsOpenNow() (bool, error) {
	status, err := s.GetStatus()
	if err != nil {
		return false, err
	}
	return IsOpenNow(status, time.Now()), nil
}

// UpdateSettings applies admin changes to the manual flag and
// auto-close toggle
func (s *Service) UpdateSettings(req *UpdateSettingsRequest) (*Settings, error) {
	var settings Settings
	if err := s.db.First(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to load store settings: %w", err)
	}

	updates := map[string]interface{}{}
	if req.IsOpen != nil {
		updates["is_open"] = *req.IsOpen
	}
	if req.AutoCloseEnabled != nil {
		updates["auto_close_enabled"] = *req.AutoCloseEnabled
	}
	if len(updates) == 0 {
		return &settings, nil
	}

	if err := s.db.Model(&settings).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update store settings: %w", err)
	}
	return &settings, nil
}

// UpdateDaySchedule applies admin changes to one weekday's hours.
// The updated row is validated before it is stored.
func (s *Service) UpdateDaySchedule(weekday time.Weekday, req *UpdateDayScheduleRequest) (*DaySchedule, error) {
	var day DaySchedule
	if err := s.db.Where("weekday = ?", weekday).First(&day).Error; err != nil {
		return nil, fmt.Errorf("no schedule row for %s", weekday)
	}

	if req.Enabled != nil {
		day.Enabled = *req.Enabled
	}
	if req.OpenTime != nil {
		day.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		day.CloseTime = *req.CloseTime
	}

	if err := ValidateDaySchedule(&day); err != nil {
		return nil, err
	}

	if err := s.db.Save(&day).Error; err != nil {
		return nil, fmt.Errorf("failed to update day schedule: %w", err)
	}
	return &day, nil
}
