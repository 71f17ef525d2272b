// Package humanize turns the distance between two instants into a localized phrase
// such as "3 days ago" or "in 2 months".
//
// Two strategies reduce a span to a single (unit, quantity) pair:
//
//   - [DefaultHumanize] applies fixed thresholds tuned for natural phrasing.
//   - [PrecisionHumanize] carries small units into larger ones once they come
//     within a caller-supplied tolerance of the next boundary.
//
// Neither strategy renders text itself; both call a [Formatter] exactly once
// and return its result verbatim.
//
// Usage:
//
//	phrase, err := humanize.DefaultHumanize(then, now, formatter, humanize.Numeric)
//
//	h := humanize.New(formatter, humanize.WithStrategy(precision))
//	phrase, err = h.Humanize(then, now)
package humanize

import (
	"fmt"
	"strings"
)

// Unit is the time unit chosen to express a span.
type Unit int

// Units, from the most granular to the least.
const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Month
	Year
)

var unitNames = [...]string{"millisecond", "second", "minute", "hour", "day", "month", "year"}

// String returns the lowercase English name of the unit.
func (u Unit) String() string {
	if u < Millisecond || u > Year {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// Units lists every unit in ascending order.
func Units() []Unit {
	return []Unit{Millisecond, Second, Minute, Hour, Day, Month, Year}
}

// Tense tells whether the input instant lies before or after the reference.
type Tense int

const (
	// Past means the input is before (or equal to) the reference.
	Past Tense = iota
	// Future means the input is strictly after the reference.
	Future
)

// String returns "past" or "future".
func (t Tense) String() string {
	if t == Future {
		return "future"
	}
	return "past"
}

// QuantityMode controls how a formatter renders the quantity.
// The strategies never interpret it.
type QuantityMode int

const (
	// Numeric renders the quantity as digits ("3 days ago").
	Numeric QuantityMode = iota
	// Words renders the quantity as a word ("three days ago").
	Words
	// None omits the quantity ("days ago").
	None
)

var quantityModeNames = map[QuantityMode]string{
	Numeric: "numeric",
	Words:   "words",
	None:    "none",
}

// String returns the name accepted by [ParseQuantityMode].
func (m QuantityMode) String() string {
	if name, ok := quantityModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("QuantityMode(%d)", int(m))
}

// ParseQuantityMode parses "numeric", "words" or "none" (case-insensitive).
func ParseQuantityMode(s string) (QuantityMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range quantityModeNames {
		if n == name {
			return mode, nil
		}
	}
	return Numeric, fmt.Errorf("%w: %q", ErrUnknownQuantityMode, s)
}
