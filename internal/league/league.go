// Package league runs a query end to end: fetch, filter, aggregate, rate.
package league

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/aggregate"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/fetcher"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/filter"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/query"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/rates"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/report"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// TeamNamer resolves a team code to its display name
type TeamNamer interface {
	GetTeamName(code string) string
}

// League compiles reports from a game source
type League struct {
	source contracts.GameSource
	names  TeamNamer
	logger zerolog.Logger
}

// New creates a league over a source
func New(source contracts.GameSource, names TeamNamer, logger zerolog.Logger) *League {
	return &League{
		source: source,
		names:  names,
		logger: logger,
	}
}

// Compile fetches every (year, week) of the query and builds the report.
// Any source error aborts the run; no partial report is returned.
func (l *League) Compile(ctx context.Context, q query.Query) (*report.Report, error) {
	records, err := l.fetchAll(ctx, q)
	if err != nil {
		return nil, err
	}

	selected := filter.NewFilter(q).Apply(records)

	l.logger.Debug().
		Int("fetched", len(records)).
		Int("selected", len(selected)).
		Str("mode", q.Mode()).
		Msg("records filtered")

	rep := &report.Report{
		Years:      q.Years.String(),
		Weeks:      q.Weeks.String(),
		Cumulative: q.Cumulative,
		Rate:       q.Rate,
		Rows:       []report.Row{},
	}

	if q.Cumulative {
		for _, agg := range aggregate.ByTeam(selected) {
			rep.Rows = append(rep.Rows, l.aggregateRow(agg, q.Rate))
		}
		return rep, nil
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Week < b.Week
	})
	for _, r := range selected {
		rep.Rows = append(rep.Rows, l.gameRow(r, q.Rate))
	}

	return rep, nil
}

func (l *League) fetchAll(ctx context.Context, q query.Query) ([]models.GameStatRecord, error) {
	var records []models.GameStatRecord
	for _, year := range q.Years.Sorted() {
		for _, week := range q.Weeks.Sorted() {
			l.logger.Debug().Int("year", year).Int("week", week).Msg("fetching week")

			games, err := l.source.FetchGames(ctx, year, week, q.Teams)
			if err != nil {
				var fetchErr *fetcher.FetchError
				if !errors.As(err, &fetchErr) {
					err = &fetcher.FetchError{Year: year, Week: week, Err: err}
				}
				return nil, err
			}
			records = append(records, games...)
		}
	}
	return records, nil
}

func (l *League) gameRow(r models.GameStatRecord, rate bool) report.Row {
	row := l.row(aggregate.Single(r), rate)
	row.Week = r.Week
	row.Opponent = r.OpponentLabel()
	row.Site = r.Site
	return row
}

func (l *League) aggregateRow(agg models.AggregatedRecord, rate bool) report.Row {
	row := l.row(agg, rate)
	if rate {
		ppg := rates.PointsPerGame(agg.PointsFor, agg.Games)
		oppg := rates.PointsPerGame(agg.PointsAgainst, agg.Games)
		row.PointsPerGame = &ppg
		row.OppPerGame = &oppg
	}
	return row
}

func (l *League) row(agg models.AggregatedRecord, rate bool) report.Row {
	row := report.Row{
		Team:          agg.Team,
		TeamName:      l.names.GetTeamName(agg.Team),
		Year:          agg.Year,
		Games:         agg.Games,
		PointsFor:     agg.PointsFor,
		PointsAgainst: agg.PointsAgainst,
		Own:           agg.Own,
		Opp:           agg.Opp,
	}
	if rate {
		row.OwnRates = rates.Convert(agg.Own)
		row.OppRates = rates.Convert(agg.Opp)
	}
	return row
}
