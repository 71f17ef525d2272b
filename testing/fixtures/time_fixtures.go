package fixtures

import "time"

// Reference is a fixed "now" for tests. Noon keeps short offsets on the same calendar date.
var Reference = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

// Days returns n days as a duration.
func Days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

// Before returns the instant d before Reference.
func Before(d time.Duration) time.Time {
	return Reference.Add(-d)
}

// After returns the instant d after Reference.
func After(d time.Duration) time.Time {
	return Reference.Add(d)
}

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
