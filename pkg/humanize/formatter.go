package humanize

// Formatter renders a (unit, tense, quantity) triple as localized text.
//
// Implementations must be deterministic and safe for concurrent use.
// quantity is never negative.
type Formatter interface {
	DateHumanize(unit Unit, tense Tense, quantity int, mode QuantityMode) (string, error)
}

// NeverFormatter is implemented by formatters that can describe a missing date.
type NeverFormatter interface {
	Never() string
}

// FormatterFunc adapts an ordinary function to the [Formatter] interface.
type FormatterFunc func(unit Unit, tense Tense, quantity int, mode QuantityMode) (string, error)

// DateHumanize calls f.
func (f FormatterFunc) DateHumanize(unit Unit, tense Tense, quantity int, mode QuantityMode) (string, error) {
	return f(unit, tense, quantity, mode)
}
