// internal/domain/store/availability.go
package store

import (
	"time"
)

// IsOpenNow decides whether the store accepts new orders at the given
// instant. Pure function of its inputs:
//
//  1. The manual flag wins: when the store is switched off, it is
//     closed no matter what the schedule says.
//  2. With auto-close disabled, the manual flag alone decides.
//  3. Otherwise the weekly schedule applies: the current weekday must
//     be enabled and the local time must fall inside [open, close],
//     inclusive on both ends.
//
// The HH:MM comparison is lexical, which is exact for zero-padded
// 24-hour times. Schedules that cross midnight (close earlier than
// open) never match and are not supported.
func IsOpenNow(status *Status, now time.Time) bool {
	if !status.IsOpen {
		return false
	}
	if !status.AutoCloseEnabled {
		return true
	}

	day, ok := status.Schedule[now.Weekday()]
	if !ok || !day.Enabled {
		return false
	}

	nowHM := now.Format("15:04")
	return day.OpenTime <= nowHM && nowHM <= day.CloseTime
}
