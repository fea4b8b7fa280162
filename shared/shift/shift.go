// Package shift decides whether a recurring weekly work-hour window is open.
//
// A window is a day range plus a time range, both of which may wrap: a Friday
// to Monday range covers the weekend, and 22:00 to 06:00 covers midnight. Any
// field that does not parse makes the window unavailable.
package shift

import (
	"barber/shared/timezone"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Days in week order, Sunday first so the index matches time.Weekday.
var Days = []string{"minggu", "senin", "selasa", "rabu", "kamis", "jumat", "sabtu"}

var aliases = map[string]string{
	"jumaat":    "jumat",
	"sunday":    "minggu",
	"monday":    "senin",
	"tuesday":   "selasa",
	"wednesday": "rabu",
	"thursday":  "kamis",
	"friday":    "jumat",
	"saturday":  "sabtu",
}

// Window is a capster's recurring availability.
type Window struct {
	DayStart  string `json:"day_start"`
	DayEnd    string `json:"day_end"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}

// DayIndex returns the 0..6 position of a day name, Sunday being 0.
func DayIndex(name string) (int, bool) {
	key := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, name)

	if canonical, ok := aliases[key]; ok {
		key = canonical
	}

	for idx, day := range Days {
		if day == key {
			return idx, true
		}
	}

	return 0, false
}

// Minutes converts "HH:MM" (seconds ignored) to minutes since midnight.
func Minutes(value string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

func inRange(value, start, end int) bool {
	if start <= end {
		return value >= start && value <= end
	}

	return value >= start || value <= end
}

// IsWithinShift reports whether the window is open.
//
// With a bookingDate on a day other than today only the day range counts.
// Otherwise now's time of day must also fall inside the time range. Both
// inputs are evaluated in the application timezone; bookingDate is treated
// as a calendar date.
func IsWithinShift(window *Window, bookingDate *time.Time, now time.Time) bool {
	if window == nil {
		return false
	}

	dayStart, ok := DayIndex(window.DayStart)
	if !ok {
		return false
	}

	dayEnd, ok := DayIndex(window.DayEnd)
	if !ok {
		return false
	}

	timeStart, ok := Minutes(window.TimeStart)
	if !ok {
		return false
	}

	timeEnd, ok := Minutes(window.TimeEnd)
	if !ok {
		return false
	}

	now = timezone.ToAppTime(now)
	today := timezone.StartOfDay(now)

	target := today
	if bookingDate != nil {
		target = timezone.StartOfDay(*bookingDate)
	}

	if !inRange(int(target.Weekday()), dayStart, dayEnd) {
		return false
	}

	if !target.Equal(today) {
		return true
	}

	return inRange(now.Hour()*60+now.Minute(), timeStart, timeEnd)
}

// Label renders the window the way it is shown next to a capster,
// e.g. "Senin - Jumat, 09:00 - 17:00".
func (w *Window) Label() string {
	if w == nil {
		return ""
	}

	return titleDay(w.DayStart) + " - " + titleDay(w.DayEnd) + ", " + w.TimeStart + " - " + w.TimeEnd
}

func titleDay(name string) string {
	idx, ok := DayIndex(name)
	if !ok {
		return name
	}

	day := Days[idx]

	return strings.ToUpper(day[:1]) + day[1:]
}
