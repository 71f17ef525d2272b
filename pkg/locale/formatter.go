// Package locale provides phrase formatters for the humanize package.
//
// Each locale is a YAML phrase table embedded in the binary. A table holds a
// "now" phrase for zero quantities, a "never" phrase for missing dates, one
// single/multiple template pair per unit and tense, and optional number words.
// Templates mark the quantity with {0}.
//
// Usage:
//
//	reg, err := locale.NewRegistry()
//	f, tag, err := reg.Lookup("fr-CA")   // resolves to "fr"
//	phrase, err := humanize.DefaultHumanize(then, now, f, humanize.Numeric)
package locale

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sgaunet/humantime/pkg/humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const placeholder = "{0}"

type templates struct {
	Single   string `yaml:"single"`
	Multiple string `yaml:"multiple"`
}

type unitPhrases struct {
	Past   templates `yaml:"past"`
	Future templates `yaml:"future"`
}

type table struct {
	Tag     string                 `yaml:"tag"`
	Now     string                 `yaml:"now"`
	Never   string                 `yaml:"never"`
	Words   []string               `yaml:"words"`
	Phrases map[string]unitPhrases `yaml:"phrases"`
}

// Formatter renders phrases from one locale's table. It is immutable and safe for concurrent use.
type Formatter struct {
	tag     language.Tag
	now     string
	never   string
	words   []string
	phrases map[humanize.Unit]unitPhrases
}

var _ humanize.Formatter = (*Formatter)(nil)
var _ humanize.NeverFormatter = (*Formatter)(nil)

// NewFormatter decodes a YAML phrase table.
func NewFormatter(data []byte) (*Formatter, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}

	tag, err := language.Parse(t.Tag)
	if err != nil {
		return nil, fmt.Errorf("%w: tag %q: %w", ErrMalformedTable, t.Tag, err)
	}
	if t.Now == "" {
		return nil, fmt.Errorf("%w: %s: missing \"now\" phrase", ErrMalformedTable, tag)
	}

	units := make(map[string]humanize.Unit, len(humanize.Units()))
	for _, u := range humanize.Units() {
		units[u.String()] = u
	}

	phrases := make(map[humanize.Unit]unitPhrases, len(t.Phrases))
	for name, p := range t.Phrases {
		u, ok := units[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown unit %q", ErrMalformedTable, tag, name)
		}
		phrases[u] = p
	}

	return &Formatter{
		tag:     tag,
		now:     t.Now,
		never:   t.Never,
		words:   t.Words,
		phrases: phrases,
	}, nil
}

// Tag returns the locale of the table.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Never returns the phrase for a missing date.
func (f *Formatter) Never() string {
	return f.never
}

// DateHumanize implements humanize.Formatter.
//
// A zero quantity renders the "now" phrase whatever the unit. A quantity of one
// uses the single template, anything larger the multiple template.
func (f *Formatter) DateHumanize(
	unit humanize.Unit, tense humanize.Tense, quantity int, mode humanize.QuantityMode,
) (string, error) {
	if quantity == 0 {
		return f.now, nil
	}

	p, ok := f.phrases[unit]
	if !ok {
		return "", fmt.Errorf("%w %s in %s", ErrMissingPhrase, unit, f.tag)
	}
	tpl := p.Past
	if tense == humanize.Future {
		tpl = p.Future
	}

	if quantity == 1 && tpl.Single != "" {
		return tpl.Single, nil
	}
	if tpl.Multiple == "" {
		return "", fmt.Errorf("%w %s (%s) in %s", ErrMissingPhrase, unit, tense, f.tag)
	}

	return fill(tpl.Multiple, f.quantity(quantity, mode)), nil
}

func (f *Formatter) quantity(n int, mode humanize.QuantityMode) string {
	switch mode {
	case humanize.None:
		return ""
	case humanize.Words:
		if n >= 0 && n < len(f.words) && f.words[n] != "" {
			return f.words[n]
		}
	case humanize.Numeric:
	}
	return message.NewPrinter(f.tag).Sprintf("%d", n)
}

// fill substitutes the quantity and collapses the whitespace an empty quantity leaves behind.
func fill(tpl, quantity string) string {
	if !strings.Contains(tpl, placeholder) {
		return tpl
	}
	s := strings.ReplaceAll(tpl, placeholder, quantity)
	if quantity == "" {
		s = strings.Join(strings.Fields(s), " ")
	}
	return s
}

// String describes the formatter for logs.
func (f *Formatter) String() string {
	return "locale.Formatter(" + f.tag.String() + ", " + strconv.Itoa(len(f.phrases)) + " units)"
}
