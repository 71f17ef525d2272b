package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/sgaunet/humantime/pkg/humanize"
	"golang.org/x/text/language"
)

// DefaultLocale is used when a requested locale matches nothing registered.
const DefaultLocale = "en"

//go:embed locales/*.yml
var builtin embed.FS

// Registry maps locales to formatters. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	tags       []language.Tag
	formatters []humanize.Formatter
	matcher    language.Matcher
	fallback   language.Tag
}

// NewRegistry returns a registry holding every built-in locale.
func NewRegistry() (*Registry, error) {
	r := &Registry{fallback: language.MustParse(DefaultLocale)}

	files, err := fs.Glob(builtin, "locales/*.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to list built-in locales: %w", err)
	}
	sort.Strings(files)

	for _, name := range files {
		data, err := builtin.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		f, err := NewFormatter(data)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		r.add(f.Tag(), f)
	}

	return r, nil
}

// Register adds or replaces the formatter for a locale.
func (r *Registry) Register(tag string, f humanize.Formatter) error {
	t, err := Parse(tag)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(t, f)
	return nil
}

// add must be called with mu held for writing, or before r is shared.
func (r *Registry) add(tag language.Tag, f humanize.Formatter) {
	for i, t := range r.tags {
		if t == tag {
			r.formatters[i] = f
			return
		}
	}
	r.tags = append(r.tags, tag)
	r.formatters = append(r.formatters, f)
	r.matcher = language.NewMatcher(r.tags)
}

// Lookup returns the formatter that best serves tag, and the locale it was
// registered under. Regional variants resolve to their language ("fr-CA"
// finds "fr"). An empty or unmatched tag resolves to [DefaultLocale].
func (r *Registry) Lookup(tag string) (humanize.Formatter, language.Tag, error) {
	var want language.Tag
	if strings.TrimSpace(tag) != "" {
		t, err := Parse(tag)
		if err != nil {
			return nil, language.Und, err
		}
		want = t
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.tags) == 0 {
		return nil, language.Und, fmt.Errorf("%w: registry is empty", ErrInvalidLocale)
	}

	if want != language.Und {
		if _, idx, conf := r.matcher.Match(want); conf != language.No {
			return r.formatters[idx], r.tags[idx], nil
		}
	}

	for i, t := range r.tags {
		if t == r.fallback {
			return r.formatters[i], t, nil
		}
	}
	return r.formatters[0], r.tags[0], nil
}

// Tags lists the registered locales, sorted.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.tags))
	for i, t := range r.tags {
		out[i] = t.String()
	}
	sort.Strings(out)
	return out
}

// Parse validates a BCP 47 locale tag such as "en", "pt-BR" or "fr_CA".
func Parse(tag string) (language.Tag, error) {
	t, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w %q: %w", ErrInvalidLocale, tag, err)
	}
	return t, nil
}
