package contracts

import (
	"context"

	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// SportModule turns ESPN payloads for one sport into fixed-field records.
// It is the only place that knows the provider's JSON shape.
type SportModule interface {
	// Identification
	GetSportKey() string      // "americanfootball_nfl"
	GetDisplayName() string   // "NFL"
	GetESPNSportPath() string // "football/nfl"

	// Data parsing
	ParseSchedule(rawData map[string]interface{}, year, week int) ([]models.ScheduledGame, error)
	ParseTeamStats(game models.ScheduledGame, rawData map[string]interface{}) ([]models.GameStatRecord, error)
	ParseGameHeader(rawData map[string]interface{}) (models.ScheduledGame, error)
	ParseBoxScore(game models.ScheduledGame, rawData map[string]interface{}) (*models.BoxScore, error)

	// Validation
	ValidateGame(game models.ScheduledGame) error

	// Team normalization
	NormalizeTeamCode(code string) string
	GetTeamName(code string) string
}

// StatsProvider is the raw HTTP side of a stats vendor
type StatsProvider interface {
	FetchScoreboard(ctx context.Context, sportPath string, year, week int) (map[string]interface{}, error)
	FetchGameSummary(ctx context.Context, sportPath string, gameID string) (map[string]interface{}, error)
}

// GameSource returns every team-game record of one week.
// An empty teams slice means all teams.
type GameSource interface {
	FetchGames(ctx context.Context, year, week int, teams []string) ([]models.GameStatRecord, error)
}

// RecordCache stores fetched schedules and team-game records between runs.
// ok is false on a cache miss.
type RecordCache interface {
	ReadWeekSchedule(ctx context.Context, sportKey string, year, week int) (games []models.ScheduledGame, ok bool, err error)
	WriteWeekSchedule(ctx context.Context, sportKey string, year, week int, games []models.ScheduledGame) error
	ReadGameStats(ctx context.Context, eventID string) (records []models.GameStatRecord, ok bool, err error)
	WriteGameStats(ctx context.Context, eventID string, records []models.GameStatRecord) error
}

// RecordArchive keeps a durable copy of everything fetched from a provider
type RecordArchive interface {
	SaveGames(ctx context.Context, records []models.GameStatRecord) error
}
