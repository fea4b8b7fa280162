package timezone

import (
	"barber/config"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

const (
	DefaultName = "Asia/Jakarta"
	DateLayout  = "2006-01-02"
)

var (
	appLocation *time.Location
	fallback    = time.FixedZone("WIB", 7*60*60)
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		cfg.App.Timezone = DefaultName
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC+7")
		appLocation = fallback
		return
	}

	appLocation = loc
	log.Debug().
		Str("timezone", cfg.App.Timezone).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return fallback
	}
	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// ParseDate parses a YYYY-MM-DD value as midnight in the application timezone.
func ParseDate(value string) (time.Time, error) {
	return Parse(DateLayout, value)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// FormatDate renders t as YYYY-MM-DD in the application timezone.
func FormatDate(t time.Time) string {
	return Format(t, DateLayout)
}

// StartOfDay keeps the calendar date of t as written and returns midnight of
// that date in the application timezone.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, GetLocation())
}

// Clock abstracts the wall clock so time dependent rules can be tested.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return Now()
}

func NewClock() Clock {
	return systemClock{}
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return ToAppTime(time.Time(c))
}
