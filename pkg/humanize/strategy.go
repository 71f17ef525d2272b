package humanize

import (
	"fmt"
	"strings"
	"time"
)

// Strategy names accepted by [ParseStrategy].
const (
	StrategyDefault   = "default"
	StrategyPrecision = "precision"
)

// Strategy reduces the distance between two instants to a phrase.
type Strategy interface {
	Humanize(input, reference time.Time, f Formatter, mode QuantityMode) (string, error)
}

// DefaultStrategy applies [DefaultHumanize].
type DefaultStrategy struct{}

// Humanize implements [Strategy].
func (DefaultStrategy) Humanize(input, reference time.Time, f Formatter, mode QuantityMode) (string, error) {
	return DefaultHumanize(input, reference, f, mode)
}

// String returns the strategy name.
func (DefaultStrategy) String() string {
	return StrategyDefault
}

// PrecisionStrategy applies [PrecisionHumanize] with a validated precision.
type PrecisionStrategy struct {
	precision float64
}

// NewPrecisionStrategy returns a precision strategy, or [ErrInvalidPrecision]
// when precision is outside (0, 1].
func NewPrecisionStrategy(precision float64) (PrecisionStrategy, error) {
	if err := ValidatePrecision(precision); err != nil {
		return PrecisionStrategy{}, err
	}
	return PrecisionStrategy{precision: precision}, nil
}

// Precision returns the tolerance the strategy rounds with.
func (s PrecisionStrategy) Precision() float64 {
	return s.precision
}

// Humanize implements [Strategy]. A zero PrecisionStrategy fails with [ErrInvalidPrecision].
func (s PrecisionStrategy) Humanize(input, reference time.Time, f Formatter, mode QuantityMode) (string, error) {
	return PrecisionHumanize(input, reference, s.precision, f, mode)
}

// String returns the strategy name and its precision.
func (s PrecisionStrategy) String() string {
	return fmt.Sprintf("%s(%g)", StrategyPrecision, s.precision)
}

// ParseStrategy returns the strategy called name. precision is only used,
// and validated, for the precision strategy.
func ParseStrategy(name string, precision float64) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyDefault:
		return DefaultStrategy{}, nil
	case StrategyPrecision:
		s, err := NewPrecisionStrategy(precision)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
