// Package main provides the entry point for the humantime CLI tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/humantime/internal/logger"
	"github.com/sgaunet/humantime/internal/timeutil"
	"github.com/sgaunet/humantime/internal/ui"
	"github.com/sgaunet/humantime/pkg/git"
	"github.com/spf13/cobra"
)

const defaultLogLimit = 10

var errNoCommits = errors.New("no commits to show")

// cliFlags holds the values bound to command-line flags.
type cliFlags struct {
	configPath  string
	logLevel    string
	locale      string
	strategy    string
	precision   float64
	quantity    string
	reference   string
	exact       bool
	interactive bool
	limit       int
}

// app carries the dependencies of one CLI invocation.
type app struct {
	out      io.Writer
	now      func() time.Time
	prompter ui.OptionPrompter
	log      *bullets.Logger
	flags    cliFlags
}

func newApp(out io.Writer) *app {
	return &app{
		out:      out,
		now:      time.Now,
		prompter: ui.NewPrompter(),
		log:      logger.NoLogger(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "humantime [flags] TIME|OFFSET...",
		Short: "Describe how long ago (or how far ahead) a time is",
		Long: `humantime prints phrases such as "3 days ago" or "in 2 months" for
timestamps (2024-03-01, 1709251200, "Mar 1 2024 10:00") or offsets from
the reference time (-90s, +40d, -1w2d; put "--" before negative offsets).`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHumanize(cmd, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.flags.logLevel, "log-level", "l", "info", "Set log level (debug, info, warn, error)")
	flags.StringVar(&a.flags.configPath, "config", "", "Path to the config file (default ~/.config/humantime/config.yml)")
	flags.StringVarP(&a.flags.locale, "locale", "L", "", "Phrase locale, e.g. en, fr, de-AT")
	flags.StringVarP(&a.flags.strategy, "strategy", "s", "", "Rounding strategy (default, precision)")
	flags.Float64VarP(&a.flags.precision, "precision", "p", 0, "Precision for the precision strategy, 0 < p <= 1")
	flags.StringVarP(&a.flags.quantity, "quantity", "q", "", "Show quantities as numeric, words or none")
	flags.StringVarP(&a.flags.reference, "reference", "r", "", "Reference time or offset from now (default now)")
	flags.BoolVar(&a.flags.exact, "exact", false, "Also print the exact elapsed time")
	flags.BoolVarP(&a.flags.interactive, "interactive", "i", false, "Choose options interactively")

	rootCmd.AddCommand(a.logCmd())
	return rootCmd
}

func (a *app) logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [PATH]",
		Short: "Show when recent commits of a git repository were made",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return a.runLog(cmd, path)
		},
	}
	cmd.Flags().IntVarP(&a.flags.limit, "limit", "n", defaultLogLimit, "Number of commits to show (0 for all)")
	return cmd
}

func main() {
	if err := newApp(os.Stdout).rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) runHumanize(cmd *cobra.Command, args []string) error {
	s, err := a.resolveSettings(cmd)
	if err != nil {
		return err
	}

	for _, arg := range args {
		input, err := parseInstant(arg, s.reference)
		if err != nil {
			return err
		}
		a.log.Debug(fmt.Sprintf("Humanizing %s against %s", input.Format(time.RFC3339Nano),
			s.reference.Format(time.RFC3339Nano)))

		phrase, err := s.humanizer.Humanize(input, s.reference)
		if err != nil {
			return fmt.Errorf("failed to humanize %q: %w", arg, err)
		}

		if s.exact {
			phrase = fmt.Sprintf("%s (%s)", phrase, timeutil.FormatExact(timeutil.Between(input, s.reference)))
		}
		fmt.Fprintln(a.out, phrase)
	}
	return nil
}

func (a *app) runLog(cmd *cobra.Command, path string) error {
	s, err := a.resolveSettings(cmd)
	if err != nil {
		return err
	}

	repo, err := git.OpenRepository(path)
	if err != nil {
		return err
	}
	repo.SetLogger(a.log)

	if branch, err := repo.GetCurrentBranch(); err == nil {
		a.log.Info("Branch " + branch)
	}

	commits, err := repo.RecentCommits(a.flags.limit)
	if err != nil {
		return fmt.Errorf("failed to read commits: %w", err)
	}
	if len(commits) == 0 {
		return errNoCommits
	}

	for _, c := range commits {
		phrase, err := s.humanizer.Humanize(c.When, s.reference)
		if err != nil {
			return fmt.Errorf("failed to humanize commit %s: %w", c.ShortHash, err)
		}
		fmt.Fprintf(a.out, "%s  %-16s  %s\n", c.ShortHash, phrase, c.Title)
	}
	return nil
}
