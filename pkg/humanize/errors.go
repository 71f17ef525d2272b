package humanize

import "errors"

var (
	// ErrInvalidPrecision is returned when a precision falls outside (0, 1].
	ErrInvalidPrecision = errors.New("precision must be greater than 0 and at most 1")

	// ErrUnknownStrategy is returned when a strategy name is not recognized.
	ErrUnknownStrategy = errors.New("unknown humanize strategy")

	// ErrUnknownQuantityMode is returned when a quantity mode name is not recognized.
	ErrUnknownQuantityMode = errors.New("unknown quantity mode")

	// ErrNoNeverPhrase is returned by [Humanizer.HumanizeOptional] when the formatter
	// cannot describe a missing instant.
	ErrNoNeverPhrase = errors.New("formatter has no phrase for a missing date")
)
