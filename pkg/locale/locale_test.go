package locale_test

import (
	"sync"
	"testing"
	"time"

	"github.com/sgaunet/humantime/pkg/humanize"
	"github.com/sgaunet/humantime/pkg/locale"
	"github.com/sgaunet/humantime/testing/fixtures"
	"github.com/sgaunet/humantime/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *locale.Registry {
	t.Helper()
	reg, err := locale.NewRegistry()
	require.NoError(t, err)
	return reg
}

func lookup(t *testing.T, reg *locale.Registry, tag string) humanize.Formatter {
	t.Helper()
	f, _, err := reg.Lookup(tag)
	require.NoError(t, err)
	return f
}

func TestEnglishPhrases(t *testing.T) {
	f := lookup(t, newRegistry(t), "en")

	tests := []struct {
		unit     humanize.Unit
		tense    humanize.Tense
		quantity int
		expected string
	}{
		{humanize.Millisecond, humanize.Past, 0, "now"},
		{humanize.Second, humanize.Future, 0, "now"},
		{humanize.Second, humanize.Past, 1, "one second ago"},
		{humanize.Second, humanize.Past, 45, "45 seconds ago"},
		{humanize.Minute, humanize.Past, 1, "a minute ago"},
		{humanize.Minute, humanize.Future, 1, "in a minute"},
		{humanize.Hour, humanize.Past, 1, "an hour ago"},
		{humanize.Hour, humanize.Future, 5, "in 5 hours"},
		{humanize.Day, humanize.Past, 1, "yesterday"},
		{humanize.Day, humanize.Future, 1, "tomorrow"},
		{humanize.Day, humanize.Past, 3, "3 days ago"},
		{humanize.Month, humanize.Future, 2, "in 2 months"},
		{humanize.Year, humanize.Past, 1, "one year ago"},
		{humanize.Year, humanize.Past, 1234, "1,234 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result, err := f.DateHumanize(tt.unit, tt.tense, tt.quantity, humanize.Numeric)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestQuantityModes(t *testing.T) {
	f := lookup(t, newRegistry(t), "en")

	tests := []struct {
		name     string
		quantity int
		mode     humanize.QuantityMode
		expected string
	}{
		{"numeric", 3, humanize.Numeric, "3 days ago"},
		{"words", 3, humanize.Words, "three days ago"},
		{"words beyond the table", 42, humanize.Words, "42 days ago"},
		{"none", 3, humanize.None, "days ago"},
		{"single ignores the mode", 1, humanize.None, "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.DateHumanize(humanize.Day, humanize.Past, tt.quantity, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	result, err := f.DateHumanize(humanize.Day, humanize.Future, 3, humanize.None)
	require.NoError(t, err)
	assert.Equal(t, "in days", result, "the gap left by the quantity is collapsed")
}

func TestOtherLocales(t *testing.T) {
	reg := newRegistry(t)

	tests := []struct {
		tag      string
		unit     humanize.Unit
		tense    humanize.Tense
		quantity int
		mode     humanize.QuantityMode
		expected string
	}{
		{"fr", humanize.Day, humanize.Past, 3, humanize.Numeric, "il y a 3 jours"},
		{"fr", humanize.Day, humanize.Future, 1, humanize.Numeric, "demain"},
		{"fr", humanize.Month, humanize.Past, 2, humanize.Words, "il y a deux mois"},
		{"de", humanize.Hour, humanize.Past, 1, humanize.Numeric, "vor einer Stunde"},
		{"de", humanize.Year, humanize.Future, 4, humanize.Numeric, "in 4 Jahren"},
		{"de", humanize.Millisecond, humanize.Past, 0, humanize.Numeric, "jetzt"},
		{"es", humanize.Minute, humanize.Past, 10, humanize.Words, "hace diez minutos"},
		{"es", humanize.Day, humanize.Past, 1, humanize.Numeric, "ayer"},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.expected, func(t *testing.T) {
			result, err := lookup(t, reg, tt.tag).DateHumanize(tt.unit, tt.tense, tt.quantity, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLookupResolution(t *testing.T) {
	reg := newRegistry(t)

	tests := []struct {
		requested string
		expected  string
	}{
		{"en", "en"},
		{"fr-CA", "fr"},
		{"fr_CA", "fr"},
		{"de-AT", "de"},
		{"es-MX", "es"},
		{"", "en"},
		{"ja", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.requested, func(t *testing.T) {
			_, tag, err := reg.Lookup(tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tag.String())
		})
	}
}

func TestLookupInvalidTag(t *testing.T) {
	_, _, err := newRegistry(t).Lookup("not a locale!")
	assert.ErrorIs(t, err, locale.ErrInvalidLocale)
}

func TestTags(t *testing.T) {
	assert.Equal(t, []string{"de", "en", "es", "fr"}, newRegistry(t).Tags())
}

func TestRegisterCustomFormatter(t *testing.T) {
	reg := newRegistry(t)
	custom := mocks.NewMockFormatter()
	custom.DateHumanizeResponse = "custom"

	require.NoError(t, reg.Register("pt-BR", custom))
	assert.Contains(t, reg.Tags(), "pt-BR")

	f, tag, err := reg.Lookup("pt-BR")
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", tag.String())

	result, err := humanize.DefaultHumanize(fixtures.Before(time.Hour*3), fixtures.Reference, f, humanize.Numeric)
	require.NoError(t, err)
	assert.Equal(t, "custom", result)

	assert.ErrorIs(t, reg.Register("??", custom), locale.ErrInvalidLocale)
}

func TestRegisterReplacesExisting(t *testing.T) {
	reg := newRegistry(t)
	custom := mocks.NewMockFormatter()
	require.NoError(t, reg.Register("en", custom))

	f := lookup(t, reg, "en")
	assert.Same(t, custom, f)
	assert.Len(t, reg.Tags(), 4)
}

func TestNever(t *testing.T) {
	reg := newRegistry(t)
	expected := map[string]string{"en": "never", "fr": "jamais", "de": "nie", "es": "nunca"}

	for tag, phrase := range expected {
		nf, ok := lookup(t, reg, tag).(humanize.NeverFormatter)
		require.True(t, ok, tag)
		assert.Equal(t, phrase, nf.Never())
	}
}

func TestNewFormatterErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "tag: [unclosed"},
		{"bad tag", "tag: '!!'\nnow: now\n"},
		{"missing now", "tag: en\n"},
		{"unknown unit", "tag: en\nnow: now\nphrases:\n  fortnight:\n    past: {single: x, multiple: y}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := locale.NewFormatter([]byte(tt.yaml))
			assert.ErrorIs(t, err, locale.ErrMalformedTable)
		})
	}
}

func TestMissingPhrase(t *testing.T) {
	f, err := locale.NewFormatter([]byte("tag: en\nnow: now\nphrases:\n  day:\n    past: {single: yesterday}\n"))
	require.NoError(t, err)

	_, err = f.DateHumanize(humanize.Year, humanize.Past, 2, humanize.Numeric)
	assert.ErrorIs(t, err, locale.ErrMissingPhrase)

	_, err = f.DateHumanize(humanize.Day, humanize.Past, 2, humanize.Numeric)
	assert.ErrorIs(t, err, locale.ErrMissingPhrase)

	result, err := f.DateHumanize(humanize.Day, humanize.Past, 1, humanize.Numeric)
	require.NoError(t, err)
	assert.Equal(t, "yesterday", result)
}

func TestEndToEnd(t *testing.T) {
	f := lookup(t, newRegistry(t), "en")

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"just now", fixtures.Before(200 * time.Millisecond), "now"},
		{"seconds", fixtures.Before(45 * time.Second), "45 seconds ago"},
		{"smoothed minute", fixtures.Before(90 * time.Second), "a minute ago"},
		{"smoothed hour", fixtures.After(75 * time.Minute), "in an hour"},
		{"months", fixtures.After(fixtures.Days(40)), "in one month"},
		{"years", fixtures.Before(fixtures.Days(800)), "2 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := humanize.DefaultHumanize(tt.input, fixtures.Reference, f, humanize.Numeric)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	result, err := humanize.PrecisionHumanize(fixtures.After(fixtures.Days(400)), fixtures.Reference, 0.9, f,
		humanize.Words)
	require.NoError(t, err)
	assert.Equal(t, "in one year", result)
}

func TestConcurrentLookupAndRegister(t *testing.T) {
	reg := newRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			f, _, err := reg.Lookup("fr")
			if err == nil {
				_, _ = f.DateHumanize(humanize.Day, humanize.Past, 2, humanize.Numeric)
			}
		}()
		go func() {
			defer wg.Done()
			_ = reg.Register("it", mocks.NewMockFormatter())
		}()
	}
	wg.Wait()

	assert.Contains(t, reg.Tags(), "it")
}
