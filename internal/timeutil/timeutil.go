// Package timeutil provides the span arithmetic shared by the humanize strategies.
//
// A [Span] is the absolute distance between two instants, decomposed under a
// fixed calendar convention (60 s/min, 60 min/h, 24 h/day). It keeps whole
// seconds and a nanosecond remainder separately so spans longer than the
// range of [time.Duration] do not saturate.
package timeutil

import (
	"time"

	"github.com/hako/durafmt"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	nanosPerSecond   = int64(time.Second)
	nanosPerMilli    = int64(time.Millisecond)

	// exactUnits is how many units FormatExact keeps.
	exactUnits = 2
)

// Span is the non-negative elapsed time between two instants.
type Span struct {
	seconds int64
	nanos   int64 // always in [0, 1e9)
}

// Between returns the absolute span between a and b. Argument order does not matter.
// Only wall-clock readings are used; see [Compare].
func Between(a, b time.Time) Span {
	sec := b.Unix() - a.Unix()
	nsec := int64(b.Nanosecond()) - int64(a.Nanosecond())

	if sec < 0 || (sec == 0 && nsec < 0) {
		sec, nsec = -sec, -nsec
	}
	if nsec < 0 {
		nsec += nanosPerSecond
		sec--
	}

	return Span{seconds: sec, nanos: nsec}
}

// Compare returns -1, 0 or +1 as a is before, equal to or after b, using
// wall-clock readings only, the same ones [Between] measures.
func Compare(a, b time.Time) int {
	return a.Round(0).Compare(b.Round(0))
}

// FromDuration returns the span of |d|.
func FromDuration(d time.Duration) Span {
	if d < 0 {
		d = -d
	}
	// -math.MinInt64 is still negative; clamp it to the largest positive duration.
	if d < 0 {
		d = time.Duration(1<<63 - 1)
	}
	return Span{
		seconds: int64(d / time.Second),
		nanos:   int64(d % time.Second),
	}
}

// IsZero reports whether the span is empty.
func (s Span) IsZero() bool {
	return s.seconds == 0 && s.nanos == 0
}

// Milliseconds is the millisecond component, in [0, 999].
func (s Span) Milliseconds() int {
	return int(s.nanos / nanosPerMilli)
}

// Seconds is the seconds component, in [0, 59].
func (s Span) Seconds() int {
	return int(s.seconds % secondsPerMinute)
}

// Minutes is the minutes component, in [0, 59].
func (s Span) Minutes() int {
	return int(s.seconds % secondsPerHour / secondsPerMinute)
}

// Hours is the hours component, in [0, 23].
func (s Span) Hours() int {
	return int(s.seconds % secondsPerDay / secondsPerHour)
}

// Days is the whole number of days.
func (s Span) Days() int {
	return int(s.seconds / secondsPerDay)
}

// TotalSeconds is the whole span expressed in fractional seconds.
func (s Span) TotalSeconds() float64 {
	return float64(s.seconds) + float64(s.nanos)/float64(nanosPerSecond)
}

// TotalMilliseconds is the whole span expressed in fractional milliseconds.
func (s Span) TotalMilliseconds() float64 {
	return s.TotalSeconds() * 1000
}

// TotalMinutes is the whole span expressed in fractional minutes.
func (s Span) TotalMinutes() float64 {
	return s.TotalSeconds() / secondsPerMinute
}

// TotalHours is the whole span expressed in fractional hours.
func (s Span) TotalHours() float64 {
	return s.TotalSeconds() / secondsPerHour
}

// TotalDays is the whole span expressed in fractional days.
func (s Span) TotalDays() float64 {
	return s.TotalSeconds() / secondsPerDay
}

// Duration converts the span to a [time.Duration], saturating at the maximum duration.
func (s Span) Duration() time.Duration {
	const maxSeconds = int64(1<<63-1) / nanosPerSecond
	if s.seconds >= maxSeconds {
		return time.Duration(1<<63 - 1)
	}
	return time.Duration(s.seconds*nanosPerSecond + s.nanos)
}

// FormatExact renders the span with its two most significant units, e.g. "3 days 4 hours".
// Spans under a millisecond render as "0 seconds".
func FormatExact(s Span) string {
	d := s.Duration().Truncate(time.Millisecond)
	if d == 0 {
		return "0 seconds"
	}
	return durafmt.Parse(d).LimitFirstN(exactUnits).String()
}

// DateDiffDays returns the number of calendar days between the dates of a and b,
// both read in loc. The result is never negative.
func DateDiffDays(a, b time.Time, loc *time.Location) int {
	da := civilDay(a.In(loc))
	db := civilDay(b.In(loc))
	if da > db {
		return int(da - db)
	}
	return int(db - da)
}

// civilDay counts days since the epoch for the wall-clock date of t, ignoring its offset.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths moves t by n calendar months, keeping its clock and location.
// The day is clamped to the length of the target month, so January 31 + 1
// month is the last day of February.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := DaysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	hour, minute, sec := t.Clock()
	return time.Date(first.Year(), first.Month(), d, hour, minute, sec, t.Nanosecond(), t.Location())
}

// SameDate reports whether a and b fall on the same calendar date in loc.
func SameDate(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
