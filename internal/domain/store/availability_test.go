package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-08-31 is a Monday
func mondayAt(hm string) time.Time {
	parsed, err := time.Parse("2006-01-02 15:04", "2026-08-31 "+hm)
	if err != nil {
		panic(err)
	}
	return parsed
}

func openWeek(open, close string) WeeklySchedule {
	schedule := make(WeeklySchedule, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		schedule[d] = DaySchedule{Weekday: d, Enabled: true, OpenTime: open, CloseTime: close}
	}
	return schedule
}

func TestIsOpenNowSchedule(t *testing.T) {
	status := &Status{
		IsOpen:           true,
		AutoCloseEnabled: true,
		Schedule:         openWeek("09:00", "22:00"),
	}

	tests := []struct {
		at   string
		want bool
	}{
		{"08:59", false},
		{"09:00", true}, // opening minute is inclusive
		{"12:30", true},
		{"22:00", true}, // closing minute is inclusive
		{"22:01", false},
		{"00:00", false},
		{"23:59", false},
	}

	for _, tt := range tests {
		t.Run(tt.at, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOpenNow(status, mondayAt(tt.at)))
		})
	}
}

func TestManualFlagAlwaysWins(t *testing.T) {
	status := &Status{
		IsOpen:           false,
		AutoCloseEnabled: true,
		Schedule:         openWeek("00:00", "23:59"),
	}

	// Closed manually means closed at any instant
	assert.False(t, IsOpenNow(status, mondayAt("12:00")))

	status.AutoCloseEnabled = false
	assert.False(t, IsOpenNow(status, mondayAt("12:00")))
}

func TestAutoCloseDisabledFollowsManualFlag(t *testing.T) {
	status := &Status{
		IsOpen:           true,
		AutoCloseEnabled: false,
		// Schedule says closed, but it is not consulted
		Schedule: openWeek("09:00", "09:01"),
	}

	assert.True(t, IsOpenNow(status, mondayAt("03:00")))
}

func TestDisabledDayIsClosed(t *testing.T) {
	schedule := openWeek("09:00", "22:00")
	monday := schedule[time.Monday]
	monday.Enabled = false
	schedule[time.Monday] = monday

	status := &Status{IsOpen: true, AutoCloseEnabled: true, Schedule: schedule}
	assert.False(t, IsOpenNow(status, mondayAt("12:00")))
}

func TestMissingDayIsClosed(t *testing.T) {
	schedule := openWeek("09:00", "22:00")
	delete(schedule, time.Monday)

	status := &Status{IsOpen: true, AutoCloseEnabled: true, Schedule: schedule}
	assert.False(t, IsOpenNow(status, mondayAt("12:00")))
}

func TestOvernightScheduleNeverMatches(t *testing.T) {
	// Close before open lexically matches nothing; crossing midnight
	// is unsupported
	status := &Status{
		IsOpen:           true,
		AutoCloseEnabled: true,
		Schedule:         openWeek("18:00", "02:00"),
	}

	assert.False(t, IsOpenNow(status, mondayAt("20:00")))
	assert.False(t, IsOpenNow(status, mondayAt("01:00")))
}

func TestValidateDaySchedule(t *testing.T) {
	valid := DaySchedule{Weekday: time.Monday, Enabled: true, OpenTime: "09:00", CloseTime: "22:00"}
	require.NoError(t, ValidateDaySchedule(&valid))

	// Disabled days skip the time checks entirely
	disabled := DaySchedule{Weekday: time.Monday, Enabled: false}
	require.NoError(t, ValidateDaySchedule(&disabled))

	tests := []struct {
		name string
		day  DaySchedule
	}{
		{"bad hour", DaySchedule{Weekday: time.Monday, Enabled: true, OpenTime: "24:00", CloseTime: "22:00"}},
		{"bad minute", DaySchedule{Weekday: time.Monday, Enabled: true, OpenTime: "09:60", CloseTime: "22:00"}},
		{"missing padding", DaySchedule{Weekday: time.Monday, Enabled: true, OpenTime: "9:00", CloseTime: "22:00"}},
		{"empty close", DaySchedule{Weekday: time.Monday, Enabled: true, OpenTime: "09:00", CloseTime: ""}},
		{"garbage", DaySchedule{Weekday: time.Monday, Enabled: true, OpenTime: "noon", CloseTime: "22:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateDaySchedule(&tt.day))
		})
	}
}
