package interview

import (
	"time"

	"github.com/prepslot/interview-scheduler/internal/httperr"
)

// ===============================
// Schedule Grid
// ===============================

// LeadTime is the minimum notice before a slot's start at which it is
// still bookable. The availability read path and the allocator MUST
// apply the same constant through the same predicate, otherwise slots
// show as bookable and then fail.
const LeadTime = 30 * time.Minute

const DateLayout = "2006-01-02"

// TimeLabels is the fixed grid of slot starts offered by the booking
// wizard. The 13:00 hour is deliberately absent.
var TimeLabels = []string{
	"09:00", "10:00", "11:00", "12:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

var labelMinutes = func() map[string]int {
	m := make(map[string]int, len(TimeLabels))
	for _, label := range TimeLabels {
		t, _ := time.Parse("15:04", label)
		m[label] = t.Hour()*60 + t.Minute()
	}
	return m
}()

func IsValidTimeLabel(label string) bool {
	_, ok := labelMinutes[label]
	return ok
}

// Durations are the selectable session lengths, in minutes.
var Durations = []int{15, 30, 45, 60}

func IsValidDuration(min int) bool {
	for _, d := range Durations {
		if d == min {
			return true
		}
	}
	return false
}

// ===============================
// Shared Time-Buffer Predicate
// ===============================

// StartAt resolves a date string plus time label to a concrete start
// instant in now's location.
func StartAt(date string, label string, now time.Time) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}

	min, ok := labelMinutes[label]
	if !ok {
		return time.Time{}, httperr.ErrBusiness("invalid_time_label")
	}

	return day.Add(time.Duration(min) * time.Minute), nil
}

// ValidateSchedule applies the publish-side rules: past_date for a day
// before today, past_time when today's label plus the lead-time buffer
// has already elapsed.
func ValidateSchedule(date string, label string, now time.Time) error {
	start, err := StartAt(date, label, now)
	if err != nil {
		return err
	}

	today := now.Format(DateLayout)
	if date < today {
		return httperr.ErrBusiness("past_date")
	}

	if start.Before(now.Add(LeadTime)) {
		return httperr.ErrBusiness("past_time")
	}

	return nil
}

// Bookable is the single predicate both the allocator and the
// availability query consult.
func Bookable(date string, label string, now time.Time) bool {
	return ValidateSchedule(date, label, now) == nil
}
