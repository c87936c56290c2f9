// Package fetcher pulls one week of team-game records from a stats provider.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// ErrNoGame is returned when a team did not play in the requested week
var ErrNoGame = errors.New("no game found")

// FetchError wraps any failure of the external source for one week.
// It is fatal for the run.
type FetchError struct {
	Year int
	Week int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %d week %d: %v", e.Year, e.Week, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher reads schedules and box scores for one sport. Cache and archive
// are optional; their failures are logged and never fail a fetch.
type Fetcher struct {
	module   contracts.SportModule
	provider contracts.StatsProvider
	cache    contracts.RecordCache
	archive  contracts.RecordArchive
	logger   zerolog.Logger
}

var _ contracts.GameSource = (*Fetcher)(nil)

// Option customizes a Fetcher
type Option func(*Fetcher)

// WithCache enables the read-through cache
func WithCache(c contracts.RecordCache) Option {
	return func(f *Fetcher) {
		f.cache = c
	}
}

// WithArchive saves every record fetched from the provider
func WithArchive(a contracts.RecordArchive) Option {
	return func(f *Fetcher) {
		f.archive = a
	}
}

// WithLogger sets the logger
func WithLogger(l zerolog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = l
	}
}

// New creates a fetcher for a sport module backed by a provider
func New(module contracts.SportModule, provider contracts.StatsProvider, opts ...Option) *Fetcher {
	f := &Fetcher{
		module:   module,
		provider: provider,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With().Str("sport", module.GetSportKey()).Logger()
	return f
}

// FetchGames returns the records of the requested teams for one week.
// Both perspectives of a game are fetched together; games involving none of
// the teams are skipped before their box score is requested.
func (f *Fetcher) FetchGames(ctx context.Context, year, week int, teams []string) ([]models.GameStatRecord, error) {
	schedule, err := f.schedule(ctx, year, week)
	if err != nil {
		return nil, &FetchError{Year: year, Week: week, Err: err}
	}

	f.logger.Debug().Int("year", year).Int("week", week).Int("games", len(schedule)).Msg("schedule loaded")

	var records []models.GameStatRecord
	for _, game := range schedule {
		if !involvesAny(game, teams) {
			continue
		}

		if err := f.module.ValidateGame(game); err != nil {
			f.logger.Warn().Err(err).Str("event_id", game.EventID).Msg("skipping game")
			continue
		}

		stats, err := f.gameStats(ctx, game)
		if err != nil {
			return nil, &FetchError{Year: year, Week: week, Err: err}
		}

		for _, r := range stats {
			if len(teams) == 0 || containsTeam(teams, r.Team) {
				records = append(records, r)
			}
		}

		f.logger.Debug().
			Str("event_id", game.EventID).
			Str("matchup", fmt.Sprintf("%s @ %s", game.AwayTeam, game.HomeTeam)).
			Msg("processed game")
	}

	return records, nil
}

// BoxScore returns the player drill-down of the team's game in one week.
// It wraps ErrNoGame when the team had no game that week.
func (f *Fetcher) BoxScore(ctx context.Context, year, week int, team string) (*models.BoxScore, error) {
	schedule, err := f.schedule(ctx, year, week)
	if err != nil {
		return nil, &FetchError{Year: year, Week: week, Err: err}
	}

	for _, game := range schedule {
		if !game.Involves(team) {
			continue
		}

		summary, err := f.provider.FetchGameSummary(ctx, f.module.GetESPNSportPath(), game.EventID)
		if err != nil {
			return nil, &FetchError{Year: year, Week: week, Err: fmt.Errorf("fetching summary %s: %w", game.EventID, err)}
		}

		box, err := f.module.ParseBoxScore(game, summary)
		if err != nil {
			return nil, &FetchError{Year: year, Week: week, Err: fmt.Errorf("parsing box score %s: %w", game.EventID, err)}
		}
		return box, nil
	}

	return nil, fmt.Errorf("%s in %d week %d: %w", strings.ToUpper(team), year, week, ErrNoGame)
}

// EventBoxScore returns the player drill-down of one ESPN event
func (f *Fetcher) EventBoxScore(ctx context.Context, eventID string) (*models.BoxScore, error) {
	summary, err := f.provider.FetchGameSummary(ctx, f.module.GetESPNSportPath(), eventID)
	if err != nil {
		return nil, fmt.Errorf("fetching summary %s: %w", eventID, err)
	}

	game, err := f.module.ParseGameHeader(summary)
	if err != nil {
		return nil, fmt.Errorf("parsing summary %s: %w", eventID, err)
	}

	box, err := f.module.ParseBoxScore(game, summary)
	if err != nil {
		return nil, fmt.Errorf("parsing box score %s: %w", eventID, err)
	}
	return box, nil
}

// schedule reads the week's games from the cache, falling back to the provider
func (f *Fetcher) schedule(ctx context.Context, year, week int) ([]models.ScheduledGame, error) {
	sportKey := f.module.GetSportKey()

	if f.cache != nil {
		games, ok, err := f.cache.ReadWeekSchedule(ctx, sportKey, year, week)
		if err != nil {
			f.logger.Warn().Err(err).Int("year", year).Int("week", week).Msg("schedule cache read failed")
		} else if ok {
			return games, nil
		}
	}

	scoreboard, err := f.provider.FetchScoreboard(ctx, f.module.GetESPNSportPath(), year, week)
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}

	games, err := f.module.ParseSchedule(scoreboard, year, week)
	if err != nil {
		return nil, fmt.Errorf("parsing scoreboard: %w", err)
	}

	// Weeks still in progress are not cached.
	if f.cache != nil && allCompleted(games) {
		if err := f.cache.WriteWeekSchedule(ctx, sportKey, year, week, games); err != nil {
			f.logger.Warn().Err(err).Int("year", year).Int("week", week).Msg("schedule cache write failed")
		}
	}

	return games, nil
}

// gameStats reads both team records of a game, from the cache or the provider
func (f *Fetcher) gameStats(ctx context.Context, game models.ScheduledGame) ([]models.GameStatRecord, error) {
	if f.cache != nil {
		records, ok, err := f.cache.ReadGameStats(ctx, game.EventID)
		if err != nil {
			f.logger.Warn().Err(err).Str("event_id", game.EventID).Msg("game cache read failed")
		} else if ok {
			return records, nil
		}
	}

	summary, err := f.provider.FetchGameSummary(ctx, f.module.GetESPNSportPath(), game.EventID)
	if err != nil {
		return nil, fmt.Errorf("fetching summary %s: %w", game.EventID, err)
	}

	records, err := f.module.ParseTeamStats(game, summary)
	if err != nil {
		return nil, fmt.Errorf("parsing box score %s: %w", game.EventID, err)
	}

	if f.cache != nil {
		if err := f.cache.WriteGameStats(ctx, game.EventID, records); err != nil {
			f.logger.Warn().Err(err).Str("event_id", game.EventID).Msg("game cache write failed")
		}
	}

	if f.archive != nil {
		if err := f.archive.SaveGames(ctx, records); err != nil {
			f.logger.Warn().Err(err).Str("event_id", game.EventID).Msg("archive write failed")
		}
	}

	return records, nil
}

func involvesAny(game models.ScheduledGame, teams []string) bool {
	if len(teams) == 0 {
		return true
	}
	for _, t := range teams {
		if game.Involves(t) {
			return true
		}
	}
	return false
}

func containsTeam(teams []string, team string) bool {
	for _, t := range teams {
		if strings.EqualFold(t, team) {
			return true
		}
	}
	return false
}

func allCompleted(games []models.ScheduledGame) bool {
	for _, g := range games {
		if !g.Completed {
			return false
		}
	}
	return true
}
