// Package ui provides interactive terminal prompts backed by survey.
package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sgaunet/humantime/pkg/humanize"
)

// ErrPromptCancelled is returned when the user aborts a prompt.
var ErrPromptCancelled = errors.New("prompt cancelled by user")

// OptionPrompter asks the user for humanize options.
type OptionPrompter interface {
	SelectStrategy(current string) (string, error)
	AskPrecision(current float64) (float64, error)
	SelectLocale(tags []string, current string) (string, error)
	SelectQuantityMode(current string) (string, error)
}

// Prompter implements [OptionPrompter] with survey prompts.
type Prompter struct{}

var _ OptionPrompter = (*Prompter)(nil)

// NewPrompter creates a new survey prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// SelectStrategy lets the user pick the rounding strategy.
func (p *Prompter) SelectStrategy(current string) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message: "Choose rounding strategy:",
		Options: []string{humanize.StrategyDefault, humanize.StrategyPrecision},
		Default: defaultOption(current, humanize.StrategyDefault, humanize.StrategyDefault, humanize.StrategyPrecision),
		Description: func(value string, _ int) string {
			if value == humanize.StrategyPrecision {
				return "round up once a unit is close to the next"
			}
			return "natural thresholds"
		},
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", cancelled(err)
	}
	return selected, nil
}

// AskPrecision asks for a precision in (0, 1].
func (p *Prompter) AskPrecision(current float64) (float64, error) {
	var answer string
	prompt := &survey.Input{
		Message: "Precision (0 < p <= 1):",
		Default: strconv.FormatFloat(current, 'g', -1, 64),
		Help:    "1 rounds only at exact unit boundaries, smaller values round up earlier",
	}

	if err := survey.AskOne(prompt, &answer, survey.WithValidator(ValidatePrecisionAnswer)); err != nil {
		return 0, cancelled(err)
	}
	return strconv.ParseFloat(strings.TrimSpace(answer), 64)
}

// SelectLocale lets the user pick one of the available locales.
func (p *Prompter) SelectLocale(tags []string, current string) (string, error) {
	if len(tags) == 0 {
		return current, nil
	}

	var selected string
	prompt := &survey.Select{
		Message: "Choose locale:",
		Options: tags,
		Default: defaultOption(current, tags[0], tags...),
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", cancelled(err)
	}
	return selected, nil
}

// SelectQuantityMode lets the user pick how quantities are rendered.
func (p *Prompter) SelectQuantityMode(current string) (string, error) {
	options := []string{humanize.Numeric.String(), humanize.Words.String(), humanize.None.String()}

	var selected string
	prompt := &survey.Select{
		Message: "Show quantities as:",
		Options: options,
		Default: defaultOption(current, options[0], options...),
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", cancelled(err)
	}
	return selected, nil
}

// ValidatePrecisionAnswer is a survey validator accepting numbers in (0, 1].
func ValidatePrecisionAnswer(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("%w: expected text, got %T", humanize.ErrInvalidPrecision, ans)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", humanize.ErrInvalidPrecision, s)
	}
	return humanize.ValidatePrecision(v)
}

// defaultOption returns current when it is one of options (or options is empty), fallback otherwise.
func defaultOption(current, fallback string, options ...string) string {
	if current == "" {
		return fallback
	}
	if len(options) == 0 {
		return current
	}
	for _, o := range options {
		if o == current {
			return current
		}
	}
	return fallback
}

func cancelled(err error) error {
	return fmt.Errorf("%w: %w", ErrPromptCancelled, err)
}
