package locale

import "errors"

var (
	// ErrInvalidLocale is returned when a locale tag cannot be parsed.
	ErrInvalidLocale = errors.New("invalid locale tag")

	// ErrMissingPhrase is returned when a phrase table has no template for a unit and tense.
	ErrMissingPhrase = errors.New("no phrase for unit")

	// ErrMalformedTable is returned when a phrase table cannot be decoded or is incomplete.
	ErrMalformedTable = errors.New("malformed phrase table")
)
