package americanfootball_nfl

import (
	"fmt"

	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// ParseGameHeader reads the game an ESPN summary describes from its header
func (m *NFLModule) ParseGameHeader(rawData map[string]interface{}) (models.ScheduledGame, error) {
	header := extractMap(rawData, "header")

	game := models.ScheduledGame{
		EventID: extractString(header, "id"),
		Year:    extractInt(extractMap(header, "season"), "year"),
		Week:    extractInt(header, "week"),
	}
	if game.EventID == "" {
		return models.ScheduledGame{}, fmt.Errorf("summary without event id")
	}

	competitions := extractArray(header, "competitions")
	if len(competitions) == 0 {
		return models.ScheduledGame{}, fmt.Errorf("no competitions found in event %s", game.EventID)
	}
	competition := asMap(competitions[0])

	statusType := extractMap(extractMap(competition, "status"), "type")
	game.Completed = extractBool(statusType, "completed") || extractString(statusType, "state") == "post"

	if err := m.readCompetitors(&game, competition); err != nil {
		return models.ScheduledGame{}, err
	}
	return game, nil
}

// ParseBoxScore parses the player lines and scoring plays of an ESPN game
// summary. Players with an empty line are left out, as are defenders
// without a sack.
func (m *NFLModule) ParseBoxScore(game models.ScheduledGame, rawData map[string]interface{}) (*models.BoxScore, error) {
	playersData := extractArray(extractMap(rawData, "boxscore"), "players")
	if len(playersData) == 0 {
		return nil, fmt.Errorf("no player statistics for event %s", game.EventID)
	}

	box := &models.BoxScore{
		Game:         game,
		Passing:      []models.PlayerLine{},
		Rushing:      []models.PlayerLine{},
		Defense:      []models.PlayerLine{},
		ScoringPlays: []models.ScoringPlay{},
	}

	for _, teamDataInterface := range playersData {
		teamData := asMap(teamDataInterface)
		abbr := m.NormalizeTeamCode(extractString(extractMap(teamData, "team"), "abbreviation"))

		for _, catInterface := range extractArray(teamData, "statistics") {
			category := asMap(catInterface)
			switch extractString(category, "name") {
			case categoryPassing:
				cols := newPassingColumns(category)
				for _, a := range categoryAthletes(category) {
					var line models.StatLine
					cols.add(a.stats, &line)
					box.Passing = appendLine(box.Passing, abbr, a.name, line)
				}
			case categoryRushing:
				cols := newRushingColumns(category)
				for _, a := range categoryAthletes(category) {
					var line models.StatLine
					cols.add(a.stats, &line)
					box.Rushing = appendLine(box.Rushing, abbr, a.name, line)
				}
			case categoryDefense:
				sacks := columnIndex(category, "sacks", "SACKS")
				for _, a := range categoryAthletes(category) {
					line := models.StatLine{Sacks: parseFloat(cell(a.stats, sacks))}
					box.Defense = appendLine(box.Defense, abbr, a.name, line)
				}
			}
		}
	}

	for _, playInterface := range extractArray(rawData, "scoringPlays") {
		play := asMap(playInterface)
		box.ScoringPlays = append(box.ScoringPlays, models.ScoringPlay{
			Period:    extractInt(extractMap(play, "period"), "number"),
			Clock:     extractString(extractMap(play, "clock"), "displayValue"),
			Team:      m.NormalizeTeamCode(extractString(extractMap(play, "team"), "abbreviation")),
			Type:      extractString(extractMap(play, "type"), "text"),
			Text:      extractString(play, "text"),
			AwayScore: extractInt(play, "awayScore"),
			HomeScore: extractInt(play, "homeScore"),
		})
	}

	return box, nil
}

func appendLine(lines []models.PlayerLine, team, name string, line models.StatLine) []models.PlayerLine {
	if line.IsZero() {
		return lines
	}
	return append(lines, models.PlayerLine{Team: team, Name: name, Stats: line})
}
