package humanize

import "time"

// Humanizer binds a formatter, a strategy and a quantity mode.
// It holds no mutable state and is safe for concurrent use when its formatter is.
type Humanizer struct {
	formatter Formatter
	strategy  Strategy
	mode      QuantityMode
}

// Option configures a [Humanizer].
type Option func(*Humanizer)

// WithStrategy selects the strategy. The default is [DefaultStrategy].
func WithStrategy(s Strategy) Option {
	return func(h *Humanizer) {
		if s != nil {
			h.strategy = s
		}
	}
}

// WithQuantityMode selects how quantities are rendered. The default is [Numeric].
func WithQuantityMode(mode QuantityMode) Option {
	return func(h *Humanizer) {
		h.mode = mode
	}
}

// New returns a Humanizer rendering through f.
func New(f Formatter, opts ...Option) *Humanizer {
	h := &Humanizer{
		formatter: f,
		strategy:  DefaultStrategy{},
		mode:      Numeric,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Strategy returns the configured strategy.
func (h *Humanizer) Strategy() Strategy {
	return h.strategy
}

// QuantityMode returns the configured quantity mode.
func (h *Humanizer) QuantityMode() QuantityMode {
	return h.mode
}

// Humanize describes input relative to reference.
func (h *Humanizer) Humanize(input, reference time.Time) (string, error) {
	return h.strategy.Humanize(input, reference, h.formatter, h.mode)
}

// HumanizeOptional is like Humanize but accepts a missing input, which is
// described with the formatter's "never" phrase.
func (h *Humanizer) HumanizeOptional(input *time.Time, reference time.Time) (string, error) {
	if input != nil {
		return h.Humanize(*input, reference)
	}
	nf, ok := h.formatter.(NeverFormatter)
	if !ok {
		return "", ErrNoNeverPhrase
	}
	return nf.Never(), nil
}
