package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ngrash/go-pacifictime/internal/config"
	"github.com/ngrash/go-pacifictime/pacific"
)

const (
	LevelTrace = slog.Level(-8)
)

// app holds the state shared by all subcommands.
type app struct {
	clock   pacific.Clock
	stderr  io.Writer
	log     *slog.Logger
	cfgFile string

	format   formatValue
	logLevel string
}

func newRootCommand(clock pacific.Clock, stderr io.Writer) *cobra.Command {
	def := config.Default()
	a := &app{
		clock:    clock,
		stderr:   stderr,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		format:   formatValue(def.Format),
		logLevel: def.LogLevel,
	}

	root := &cobra.Command{
		Use:   "pacifictime [instant]",
		Short: "Report U.S. Pacific standard or daylight time",
		Long: `pacifictime decides whether U.S. Pacific Time observes standard time
(PST, UTC-8) or daylight time (PDT, UTC-7) at an instant, using the U.S.
rules effective 2007: daylight time from 02:00 on the second Sunday in March
until 02:00 on the first Sunday in November.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runReport,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().VarP(&a.format, "format", "o", "output format: text, json, yaml or toml")
	root.PersistentFlags().StringVarP(&a.logLevel, "loglevel", "l", a.logLevel, "log level: trace, debug, info, warning or error")

	root.AddCommand(
		&cobra.Command{
			Use:   "offset [instant]",
			Short: "Print the offset in minutes behind UTC",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runOffset,
		},
		&cobra.Command{
			Use:   "next [instant]",
			Short: "Print the first transition after the instant",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runNext,
		},
		a.transitionsCommand(),
		a.rulesCommand(),
	)
	return root
}

// setup merges the config file with the flags and creates the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		var err error
		cfg, err = config.Load(a.cfgFile)
		if err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format.String()
	}
	if flags.Changed("loglevel") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.format = formatValue(cfg.Format)
	a.logLevel = cfg.LogLevel

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.LevelKey && attr.Value.Any() == LevelTrace {
				attr.Value = slog.StringValue("TRACE")
			}
			return attr
		},
	}))
	a.log.Log(context.Background(), LevelTrace, "configured", "config", a.cfgFile, "format", cfg.Format, "loglevel", cfg.LogLevel)
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Errorf("unknown log level %q", s)
}

// instant returns the instant given as the only argument, or the current time
// of the clock.
func (a *app) instant(args []string) (time.Time, error) {
	if len(args) == 0 {
		now := a.clock.Now()
		a.log.Debug("using current time", "instant", now)
		return now, nil
	}
	t, err := parseInstant(args[0])
	if err != nil {
		return time.Time{}, err
	}
	a.log.Debug("parsed instant", "arg", args[0], "instant", t)
	return t, nil
}

type report struct {
	Instant  time.Time `json:"instant" yaml:"instant" toml:"instant"`
	Daylight bool      `json:"daylight" yaml:"daylight" toml:"daylight"`
	Offset   int       `json:"offset" yaml:"offset" toml:"offset"`
	Zone     string    `json:"zone" yaml:"zone" toml:"zone"`
	Local    string    `json:"local" yaml:"local" toml:"local"`
}

const localLayout = "2006-01-02 15:04:05 MST"

func (a *app) runReport(cmd *cobra.Command, args []string) error {
	t, err := a.instant(args)
	if err != nil {
		return err
	}
	name, _ := pacific.Zone(t)
	r := report{
		Instant:  t.UTC(),
		Daylight: pacific.IsDaylightTime(t),
		Offset:   pacific.Offset(t),
		Zone:     name,
		Local:    pacific.In(t).Format(localLayout),
	}
	a.log.Info("evaluated", "instant", r.Instant, "daylight", r.Daylight, "offset", r.Offset)
	return write(cmd.OutOrStdout(), a.format, r, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s  %s  daylight=%t  offset=%d\n", r.Instant.Format(time.RFC3339), r.Local, r.Daylight, r.Offset)
		return err
	})
}

type offsetReport struct {
	Instant time.Time `json:"instant" yaml:"instant" toml:"instant"`
	Offset  int       `json:"offset" yaml:"offset" toml:"offset"`
}

func (a *app) runOffset(cmd *cobra.Command, args []string) error {
	t, err := a.instant(args)
	if err != nil {
		return err
	}
	r := offsetReport{Instant: t.UTC(), Offset: pacific.Offset(t)}
	return write(cmd.OutOrStdout(), a.format, r, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, r.Offset)
		return err
	})
}

type transitionReport struct {
	At       time.Time `json:"at" yaml:"at" toml:"at"`
	Local    string    `json:"local" yaml:"local" toml:"local"`
	Daylight bool      `json:"daylight" yaml:"daylight" toml:"daylight"`
	Zone     string    `json:"zone" yaml:"zone" toml:"zone"`
	Offset   int       `json:"offset" yaml:"offset" toml:"offset"`
}

func newTransitionReport(tr pacific.Transition) transitionReport {
	return transitionReport{
		At:       tr.At,
		Local:    pacific.In(tr.At).Format(localLayout),
		Daylight: tr.Daylight,
		Zone:     tr.Name,
		Offset:   tr.Offset,
	}
}

func (r transitionReport) text(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s  %s  %s offset=%d\n", r.At.Format(time.RFC3339), r.Local, r.Zone, r.Offset)
	return err
}

func (a *app) runNext(cmd *cobra.Command, args []string) error {
	t, err := a.instant(args)
	if err != nil {
		return err
	}
	r := newTransitionReport(pacific.NextTransition(t))
	return write(cmd.OutOrStdout(), a.format, r, r.text)
}

type transitionsReport struct {
	Year        int                `json:"year" yaml:"year" toml:"year"`
	Transitions []transitionReport `json:"transitions" yaml:"transitions" toml:"transitions"`
}

func (a *app) transitionsCommand() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "transitions",
		Short: "Print the start and end of daylight time in a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			year := year
			if year == 0 {
				year = a.clock.Now().UTC().Year()
			}
			spring, fall := pacific.Transitions(year)
			r := transitionsReport{
				Year:        year,
				Transitions: []transitionReport{newTransitionReport(spring), newTransitionReport(fall)},
			}
			a.log.Debug("computed transitions", "year", year)
			return write(cmd.OutOrStdout(), a.format, r, func(w io.Writer) error {
				for _, tr := range r.Transitions {
					if err := tr.text(w); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year (default: current year)")
	return cmd
}

type rulesReport struct {
	POSIX  string   `json:"posix" yaml:"posix" toml:"posix"`
	Source []string `json:"source" yaml:"source" toml:"source"`
}

func (a *app) rulesCommand() *cobra.Command {
	var posix bool
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the daylight saving rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := rulesReport{POSIX: pacific.POSIX()}
			for _, rule := range pacific.Rules() {
				r.Source = append(r.Source, rule.String())
			}
			return write(cmd.OutOrStdout(), a.format, r, func(w io.Writer) error {
				var err error
				if posix {
					_, err = fmt.Fprintln(w, r.POSIX)
				} else {
					_, err = io.WriteString(w, pacific.Source())
				}
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&posix, "posix", false, "print the POSIX TZ string")
	return cmd
}
