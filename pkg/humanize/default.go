package humanize

import (
	"math"
	"time"

	"github.com/sgaunet/humantime/internal/timeutil"
)

const (
	// averageMonthDays approximates a month when counting months from days.
	averageMonthDays = 29.5
	// yearDays is the length of a year when counting years from days.
	yearDays = 365
)

// TenseOf returns [Future] if input is strictly after reference, [Past] otherwise.
// Monotonic clock readings are ignored so the tense agrees with the measured span.
func TenseOf(input, reference time.Time) Tense {
	if timeutil.Compare(input, reference) > 0 {
		return Future
	}
	return Past
}

// DefaultHumanize describes the distance from reference to input using fixed thresholds.
//
// Thresholds are evaluated on the span's totals, most granular first, and the
// first match wins. Lower bounds are inclusive and upper bounds exclusive:
//
//	< 500ms          now (millisecond, 0)
//	< 60s            seconds
//	< 120s           1 minute
//	< 60min          minutes
//	< 90min          1 hour
//	< 24h            hours
//	< 48h            calendar days between the two dates
//	< 28 days        days
//	< 30 days        1 month if reference ±1 month lands on the input date, days otherwise
//	< 345 days       floor(days / 29.5) months
//	otherwise        floor(days / 365) years, at least 1
//
// Calendar dates are read in the reference's location.
// Errors from f are returned unchanged.
func DefaultHumanize(input, reference time.Time, f Formatter, mode QuantityMode) (string, error) {
	span := timeutil.Between(input, reference)
	tense := TenseOf(input, reference)

	switch {
	case span.TotalMilliseconds() < 500:
		return f.DateHumanize(Millisecond, tense, 0, mode)
	case span.TotalSeconds() < 60:
		return f.DateHumanize(Second, tense, span.Seconds(), mode)
	case span.TotalSeconds() < 120:
		return f.DateHumanize(Minute, tense, 1, mode)
	case span.TotalMinutes() < 60:
		return f.DateHumanize(Minute, tense, span.Minutes(), mode)
	case span.TotalMinutes() < 90:
		return f.DateHumanize(Hour, tense, 1, mode)
	case span.TotalHours() < 24:
		return f.DateHumanize(Hour, tense, span.Hours(), mode)
	case span.TotalHours() < 48:
		days := timeutil.DateDiffDays(input, reference, reference.Location())
		return f.DateHumanize(Day, tense, days, mode)
	case span.TotalDays() < 28:
		return f.DateHumanize(Day, tense, span.Days(), mode)
	case span.TotalDays() < 30:
		if isOneCalendarMonth(input, reference, tense) {
			return f.DateHumanize(Month, tense, 1, mode)
		}
		return f.DateHumanize(Day, tense, span.Days(), mode)
	case span.TotalDays() < 345:
		months := int(math.Floor(span.TotalDays() / averageMonthDays))
		return f.DateHumanize(Month, tense, months, mode)
	}

	years := int(math.Floor(span.TotalDays() / yearDays))
	if years == 0 {
		years = 1
	}
	return f.DateHumanize(Year, tense, years, mode)
}

// isOneCalendarMonth reports whether moving the reference date one month in the
// direction of tense lands on the input date. The day is clamped to the end of
// the target month (January 31 + 1 month is February 28 or 29).
func isOneCalendarMonth(input, reference time.Time, tense Tense) bool {
	step := -1
	if tense == Future {
		step = 1
	}

	target := timeutil.AddMonths(reference, step)
	return timeutil.SameDate(target, input, reference.Location())
}
