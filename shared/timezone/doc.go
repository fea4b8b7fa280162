// Package timezone holds the application timezone and date helpers.
//
// Shift windows, booking dates and duplicate checks are all evaluated in this
// zone. It is configured via APP_TIMEZONE and defaults to Asia/Jakarta; the
// tz database is embedded so the zone resolves on minimal images.
//
//	now := timezone.Now()
//	day, err := timezone.ParseDate("2025-07-14")
//	timezone.StartOfDay(now).Equal(day)
package timezone
