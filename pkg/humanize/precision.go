package humanize

import (
	"fmt"
	"math"
	"time"

	"github.com/sgaunet/humantime/internal/timeutil"
)

const (
	carryMilliseconds = 999
	carrySeconds      = 59
	carryMinutes      = 59
	carryHours        = 23

	monthDays    = 30
	maxMonthDays = 31
)

// ValidatePrecision returns [ErrInvalidPrecision] unless 0 < precision <= 1.
func ValidatePrecision(precision float64) error {
	if math.IsNaN(precision) || precision <= 0 || precision > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidPrecision, precision)
	}
	return nil
}

// PrecisionHumanize describes the distance from reference to input, rounding up
// to the next unit once a component reaches precision times the unit's maximum.
//
// A precision of 1 only rounds at the exact boundary; smaller values round up
// more eagerly. Months and years are estimated independently from the carried
// day count and the largest non-zero unit wins, so a span that qualifies for
// both is always reported in years.
//
// It returns [ErrInvalidPrecision] without calling f when precision is outside (0, 1].
// Errors from f are returned unchanged.
func PrecisionHumanize(input, reference time.Time, precision float64, f Formatter, mode QuantityMode) (string, error) {
	if err := ValidatePrecision(precision); err != nil {
		return "", err
	}

	span := timeutil.Between(input, reference)
	tense := TenseOf(input, reference)

	seconds, minutes, hours, days := span.Seconds(), span.Minutes(), span.Hours(), span.Days()

	// carry from smaller units towards bigger ones
	if float64(span.Milliseconds()) >= carryMilliseconds*precision {
		seconds++
	}
	if float64(seconds) >= carrySeconds*precision {
		minutes++
	}
	if float64(minutes) >= carryMinutes*precision {
		hours++
	}
	if float64(hours) >= carryHours*precision {
		days++
	}

	months := estimateMonths(days, precision)
	years := estimateYears(days, precision)

	switch {
	case years > 0:
		return f.DateHumanize(Year, tense, years, mode)
	case months > 0:
		return f.DateHumanize(Month, tense, months, mode)
	case days > 0:
		return f.DateHumanize(Day, tense, days, mode)
	case hours > 0:
		return f.DateHumanize(Hour, tense, hours, mode)
	case minutes > 0:
		return f.DateHumanize(Minute, tense, minutes, mode)
	case seconds > 0:
		return f.DateHumanize(Second, tense, seconds, mode)
	}
	return f.DateHumanize(Millisecond, tense, 0, mode)
}

func estimateMonths(days int, precision float64) int {
	d := float64(days)
	switch {
	case d >= monthDays*precision && days <= maxMonthDays:
		return 1
	case days > maxMonthDays && d < yearDays*precision:
		return roundPeriods(days, monthDays, precision)
	}
	return 0
}

func estimateYears(days int, precision float64) int {
	// past a full year the rounded count wins, even at 366 days
	switch {
	case days > yearDays:
		return roundPeriods(days, yearDays, precision)
	case float64(days) >= yearDays*precision:
		return 1
	}
	return 0
}

// roundPeriods counts whole periods in days, rounding the fractional part up only
// when days reaches period*(floor+precision). days must be positive.
func roundPeriods(days, period int, precision float64) int {
	factor := days / period
	maxPeriods := (days + period - 1) / period

	if float64(days) >= float64(period)*(float64(factor)+precision) {
		return maxPeriods
	}
	return maxPeriods - 1
}
