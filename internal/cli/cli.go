package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/fetcher"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/query"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/report"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Subcommands
const (
	ServeCommand = "serve"
	GameCommand  = "game"
)

// ExitError is an error carrying the process exit code
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Options is a parsed and validated command line
type Options struct {
	Query query.Query
	JSON  bool
}

// ServeOptions configures the serve subcommand. An empty Addr means the
// configured SERVER_ADDR.
type ServeOptions struct {
	Addr string
}

// GameOptions selects the game the game subcommand drills into: an ESPN
// event id, or else one team's game in one week
type GameOptions struct {
	Game    query.Game
	EventID string
	JSON    bool
}

// Compiler builds a report for a query
type Compiler interface {
	Compile(ctx context.Context, q query.Query) (*report.Report, error)
}

// BoxScorer looks up the player drill-down of a game
type BoxScorer interface {
	BoxScore(ctx context.Context, year, week int, team string) (*models.BoxScore, error)
	EventBoxScore(ctx context.Context, eventID string) (*models.BoxScore, error)
}

const usageHeader = `nflstats - weekly NFL team passing and rushing stats.

Usage:
  nflstats [options] [YEAR...]
  nflstats game -y YEAR -w WEEK -t TEAM [--json]
  nflstats game --event ID [--json]
  nflstats serve [--addr ADDR]

Ranges are comma separated values or inclusive spans, e.g. 3,5-9,13.
Years run 2009-2015 and weeks 1-17; an omitted range means all of them.

Options:
`

// Parse processes command-line arguments. It returns the options, a
// boolean telling the caller to exit cleanly (help was printed), or an
// *ExitError for invalid input.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	fs := pflag.NewFlagSet("nflstats", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(output, usageHeader)
		fs.PrintDefaults()
	}

	years := fs.StringP("year", "y", "", "years to query, e.g. 2010,2012-2014; positional YEAR arguments are added to it (default 2009-2015)")
	weeks := fs.StringP("week", "w", "", "weeks to query, e.g. 1-4,9 (default 1-17)")
	teams := fs.StringP("team", "t", "", "team codes, e.g. IND,NE (default all)")
	site := fs.StringP("site", "s", "", "home or away (default both)")
	cumulative := fs.BoolP("cum", "c", false, "sum each team's games per season")
	rate := fs.BoolP("rate", "r", false, "show rate stats instead of totals")
	jsonOut := fs.Bool("json", false, "print JSON instead of a table")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	q, err := query.Parse(query.Raw{
		Years:      joinRanges(*years, fs.Args()),
		Weeks:      *weeks,
		Teams:      *teams,
		Site:       *site,
		Cumulative: *cumulative,
		Rate:       *rate,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return &Options{Query: q, JSON: *jsonOut}, false, nil
}

// ParseServe processes the arguments following the serve subcommand
func ParseServe(args []string, output io.Writer) (*ServeOptions, bool, error) {
	fs := pflag.NewFlagSet("nflstats serve", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, "Usage:\n  nflstats serve [--addr ADDR]\n\nOptions:\n")
		fs.PrintDefaults()
	}

	addr := fs.String("addr", "", "listen address (default $SERVER_ADDR or :8080)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	return &ServeOptions{Addr: *addr}, false, nil
}

// ParseGame processes the arguments following the game subcommand
func ParseGame(args []string, output io.Writer) (*GameOptions, bool, error) {
	fs := pflag.NewFlagSet("nflstats game", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(output, "Usage:\n  nflstats game -y YEAR -w WEEK -t TEAM [--json]\n  nflstats game --event ID [--json]\n\nPrints the passing, rushing and sack lines of every player and the scoring plays of one game.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	year := fs.StringP("year", "y", "", "season, e.g. 2013")
	week := fs.StringP("week", "w", "", "week, e.g. 1")
	team := fs.StringP("team", "t", "", "team code, e.g. IND")
	event := fs.String("event", "", "ESPN event id; replaces year, week and team")
	jsonOut := fs.Bool("json", false, "print JSON instead of a table")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	opts := &GameOptions{JSON: *jsonOut}
	if fs.Changed("event") {
		if *year != "" || *week != "" || *team != "" {
			return nil, false, &ExitError{Code: ExitUsage, Message: "--event cannot be combined with --year, --week or --team"}
		}
		id, err := query.ParseEventID(*event)
		if err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		opts.EventID = id
		return opts, false, nil
	}

	g, err := query.ParseGame(query.Raw{Years: *year, Weeks: *week, Teams: *team})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	opts.Game = g
	return opts, false, nil
}

// ExecuteGame looks up the selected game and prints its box score. A team
// without a game that week prints NoGameMessage and is not an error.
func ExecuteGame(ctx context.Context, out io.Writer, opts *GameOptions, b BoxScorer) error {
	var (
		box *models.BoxScore
		err error
	)
	if opts.EventID != "" {
		box, err = b.EventBoxScore(ctx, opts.EventID)
	} else {
		box, err = b.BoxScore(ctx, opts.Game.Year, opts.Game.Week, opts.Game.Team)
	}
	if errors.Is(err, fetcher.ErrNoGame) {
		_, err = fmt.Fprintln(out, report.NoGameMessage)
		return err
	}
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	if opts.JSON {
		return report.RenderBoxScoreJSON(out, box)
	}
	return report.RenderBoxScore(out, box)
}

// Execute compiles the query and prints the result. Nothing is printed when
// compiling fails.
func Execute(ctx context.Context, out io.Writer, opts *Options, c Compiler) error {
	rep, err := c.Compile(ctx, opts.Query)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	if opts.JSON {
		return report.RenderJSON(out, rep)
	}
	return report.Render(out, rep)
}

// joinRanges merges the --year value with positional year arguments
func joinRanges(flagValue string, positional []string) string {
	parts := make([]string, 0, len(positional)+1)
	if flagValue != "" {
		parts = append(parts, flagValue)
	}
	parts = append(parts, positional...)
	return strings.Join(parts, ",")
}
