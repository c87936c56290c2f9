package americanfootball_nfl

import (
	"fmt"

	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// NFLModule implements SportModule for NFL football
type NFLModule struct{}

var _ contracts.SportModule = (*NFLModule)(nil)

// New creates a new NFL sport module
func New() *NFLModule {
	return &NFLModule{}
}

func (m *NFLModule) GetSportKey() string {
	return "americanfootball_nfl"
}

func (m *NFLModule) GetDisplayName() string {
	return "NFL"
}

func (m *NFLModule) GetESPNSportPath() string {
	return "football/nfl"
}

// ParseSchedule parses an ESPN scoreboard into the week's games
func (m *NFLModule) ParseSchedule(rawData map[string]interface{}, year, week int) ([]models.ScheduledGame, error) {
	events := extractArray(rawData, "events")
	games := make([]models.ScheduledGame, 0, len(events))

	for _, eventInterface := range events {
		event := asMap(eventInterface)

		game := models.ScheduledGame{
			EventID: extractString(event, "id"),
			Year:    year,
			Week:    week,
		}
		if game.EventID == "" {
			return nil, fmt.Errorf("event without id in %d week %d scoreboard", year, week)
		}

		statusType := extractMap(extractMap(event, "status"), "type")
		game.Completed = extractBool(statusType, "completed") || extractString(statusType, "state") == "post"

		competitions := extractArray(event, "competitions")
		if len(competitions) == 0 {
			return nil, fmt.Errorf("no competitions found in event %s", game.EventID)
		}

		if err := m.readCompetitors(&game, asMap(competitions[0])); err != nil {
			return nil, err
		}

		games = append(games, game)
	}

	return games, nil
}

// readCompetitors fills the teams and scores of a game from an ESPN competition
func (m *NFLModule) readCompetitors(game *models.ScheduledGame, competition map[string]interface{}) error {
	competitors := extractArray(competition, "competitors")
	if len(competitors) < 2 {
		return fmt.Errorf("insufficient competitors in event %s", game.EventID)
	}

	for _, compInterface := range competitors {
		competitor := asMap(compInterface)
		team := extractMap(competitor, "team")
		abbr := m.NormalizeTeamCode(extractString(team, "abbreviation"))
		score := extractInt(competitor, "score")

		switch extractString(competitor, "homeAway") {
		case "home":
			game.HomeTeam = abbr
			game.HomeScore = score
		case "away":
			game.AwayTeam = abbr
			game.AwayScore = score
		}
	}
	return nil
}

// ParseTeamStats parses an ESPN game summary into one record per team.
// Player passing and rushing rows are summed into the team's StatLine.
func (m *NFLModule) ParseTeamStats(game models.ScheduledGame, rawData map[string]interface{}) ([]models.GameStatRecord, error) {
	boxscore := extractMap(rawData, "boxscore")
	playersData := extractArray(boxscore, "players")
	if len(playersData) == 0 {
		return nil, fmt.Errorf("no player statistics for event %s", game.EventID)
	}

	lines := make(map[string]*models.StatLine, 2)
	for _, teamDataInterface := range playersData {
		teamData := asMap(teamDataInterface)
		abbr := m.NormalizeTeamCode(extractString(extractMap(teamData, "team"), "abbreviation"))

		line := lines[abbr]
		if line == nil {
			line = &models.StatLine{}
			lines[abbr] = line
		}

		for _, catInterface := range extractArray(teamData, "statistics") {
			category := asMap(catInterface)
			switch extractString(category, "name") {
			case categoryPassing:
				cols := newPassingColumns(category)
				for _, row := range categoryRows(category) {
					cols.add(row, line)
				}
			case categoryRushing:
				cols := newRushingColumns(category)
				for _, row := range categoryRows(category) {
					cols.add(row, line)
				}
			}
		}
	}

	home, ok := lines[game.HomeTeam]
	if !ok {
		return nil, fmt.Errorf("event %s: no statistics for home team %s", game.EventID, game.HomeTeam)
	}
	away, ok := lines[game.AwayTeam]
	if !ok {
		return nil, fmt.Errorf("event %s: no statistics for away team %s", game.EventID, game.AwayTeam)
	}

	homeRecord := models.GameStatRecord{
		EventID:       game.EventID,
		Year:          game.Year,
		Week:          game.Week,
		Team:          game.HomeTeam,
		Opponent:      game.AwayTeam,
		Site:          models.SiteHome,
		PointsFor:     game.HomeScore,
		PointsAgainst: game.AwayScore,
		Own:           *home,
		Opp:           *away,
	}

	return []models.GameStatRecord{homeRecord, homeRecord.Mirror()}, nil
}

// ValidateGame rejects games that cannot carry final team stats
func (m *NFLModule) ValidateGame(game models.ScheduledGame) error {
	if game.HomeTeam == "" || game.AwayTeam == "" {
		return fmt.Errorf("missing team abbreviations")
	}

	if game.HomeTeam == game.AwayTeam {
		return fmt.Errorf("home and away team are both %s", game.HomeTeam)
	}

	if !game.Completed {
		return fmt.Errorf("game %s is not final", game.EventID)
	}

	return nil
}

// NormalizeTeamCode converts ESPN abbreviations to the tool's team codes
func (m *NFLModule) NormalizeTeamCode(code string) string {
	return NormalizeTeamCode(code)
}

// GetTeamName returns the full name for a team code
func (m *NFLModule) GetTeamName(code string) string {
	return GetTeamName(code)
}
