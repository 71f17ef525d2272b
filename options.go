package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/sgaunet/humantime/internal/logger"
	"github.com/sgaunet/humantime/pkg/config"
	"github.com/sgaunet/humantime/pkg/humanize"
	"github.com/sgaunet/humantime/pkg/locale"
	"github.com/spf13/cobra"
	"github.com/xhit/go-str2duration/v2"
)

var errInvalidInstant = errors.New("not a time or offset")

// settings is everything a command needs to humanize instants.
type settings struct {
	humanizer *humanize.Humanizer
	reference time.Time
	exact     bool
}

// resolveSettings merges the config file, explicitly set flags and interactive answers, in that order.
func (a *app) resolveSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	a.applyFlags(cmd, cfg)
	a.log = logger.NewLoggerTo(cmd.ErrOrStderr(), cfg.LogLevel)
	a.log.Debug(fmt.Sprintf("Configuration: locale=%s strategy=%s precision=%g quantity=%s",
		cfg.Locale, cfg.Strategy, cfg.Precision, cfg.Quantity))

	registry, err := locale.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load locales: %w", err)
	}

	if a.flags.interactive {
		if err := a.prompt(cfg, registry.Tags()); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	formatter, tag, err := registry.Lookup(cfg.Locale)
	if err != nil {
		return nil, err
	}
	a.log.Debug("Using locale " + tag.String())

	strategy, err := humanize.ParseStrategy(cfg.Strategy, cfg.Precision)
	if err != nil {
		return nil, err
	}
	mode, err := humanize.ParseQuantityMode(cfg.Quantity)
	if err != nil {
		return nil, err
	}

	now := a.now()
	reference := now
	if a.flags.reference != "" {
		if reference, err = parseInstant(a.flags.reference, now); err != nil {
			return nil, fmt.Errorf("invalid reference: %w", err)
		}
	}

	return &settings{
		humanizer: humanize.New(formatter, humanize.WithStrategy(strategy), humanize.WithQuantityMode(mode)),
		reference: reference,
		exact:     a.flags.exact,
	}, nil
}

func (a *app) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if a.flags.configPath != "" {
		cfg, err = config.LoadFromFile(a.flags.configPath)
	} else {
		cfg, err = config.Load()
	}

	switch {
	case errors.Is(err, config.ErrConfigNotFound) && a.flags.configPath == "":
		return config.Default(), nil
	case err != nil:
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags the user actually set.
func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(a.flags.logLevel)
	}
	if flags.Changed("locale") {
		cfg.Locale = a.flags.locale
	}
	if flags.Changed("strategy") {
		cfg.Strategy = strings.ToLower(a.flags.strategy)
	}
	if flags.Changed("precision") {
		cfg.Precision = a.flags.precision
		// asking for a precision implies the precision strategy
		if !flags.Changed("strategy") {
			cfg.Strategy = humanize.StrategyPrecision
		}
	}
	if flags.Changed("quantity") {
		cfg.Quantity = strings.ToLower(a.flags.quantity)
	}
}

func (a *app) prompt(cfg *config.Config, tags []string) error {
	strategy, err := a.prompter.SelectStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	cfg.Strategy = strategy

	if strategy == humanize.StrategyPrecision {
		if cfg.Precision, err = a.prompter.AskPrecision(cfg.Precision); err != nil {
			return err
		}
	}

	if cfg.Locale, err = a.prompter.SelectLocale(tags, cfg.Locale); err != nil {
		return err
	}
	if cfg.Quantity, err = a.prompter.SelectQuantityMode(cfg.Quantity); err != nil {
		return err
	}
	return nil
}

// parseInstant reads arg as "now", a signed offset from reference ("-90s",
// "+40d", "-1w2d") or a timestamp. Timestamps without a zone are read in
// reference's location.
func parseInstant(arg string, reference time.Time) (time.Time, error) {
	s := strings.TrimSpace(arg)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", errInvalidInstant)
	}
	if strings.EqualFold(s, "now") {
		return reference, nil
	}

	if sign := s[0]; sign == '+' || sign == '-' {
		d, err := str2duration.ParseDuration(s[1:])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %w", errInvalidInstant, arg, err)
		}
		if sign == '-' {
			d = -d
		}
		return reference.Add(d), nil
	}

	t, err := dateparse.ParseIn(s, reference.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", errInvalidInstant, arg, err)
	}
	return t, nil
}
