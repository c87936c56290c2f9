package testutil

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// RecordFixture creates a test GameStatRecord with sensible defaults
func RecordFixture(overrides ...func(*models.GameStatRecord)) models.GameStatRecord {
	record := models.GameStatRecord{
		EventID:       "330908014",
		Year:          2013,
		Week:          1,
		Team:          "IND",
		Opponent:      "OAK",
		Site:          models.SiteHome,
		PointsFor:     21,
		PointsAgainst: 17,
		Own: models.StatLine{
			Completions:   18,
			Attempts:      23,
			PassYards:     178,
			PassTDs:       2,
			Interceptions: 0,
			Sacks:         1,
			RushAttempts:  26,
			RushYards:     115,
			RushTDs:       1,
		},
		Opp: models.StatLine{
			Completions:   19,
			Attempts:      29,
			PassYards:     217,
			PassTDs:       1,
			Interceptions: 2,
			Sacks:         4,
			RushAttempts:  31,
			RushYards:     171,
			RushTDs:       1,
		},
	}

	// Apply overrides
	for _, override := range overrides {
		override(&record)
	}

	return record
}

// Game creates a record for team/year/week with the given passing volume
func Game(team string, year, week int, attempts, completions float64) models.GameStatRecord {
	return RecordFixture(func(r *models.GameStatRecord) {
		r.EventID = fmt.Sprintf("%d%02d%s", year, week, team)
		r.Team = team
		r.Year = year
		r.Week = week
		r.Own.Attempts = attempts
		r.Own.Completions = completions
	})
}

// ScoreboardJSON builds an ESPN scoreboard payload for the given games
func ScoreboardJSON(games ...models.ScheduledGame) []byte {
	events := make([]map[string]interface{}, 0, len(games))
	for _, g := range games {
		state := "pre"
		if g.Completed {
			state = "post"
		}
		events = append(events, map[string]interface{}{
			"id": g.EventID,
			"status": map[string]interface{}{
				"type": map[string]interface{}{"completed": g.Completed, "state": state},
			},
			"competitions": []interface{}{
				map[string]interface{}{
					"competitors": []interface{}{
						competitor("home", g.HomeTeam, g.HomeScore),
						competitor("away", g.AwayTeam, g.AwayScore),
					},
				},
			},
		})
	}
	return mustJSON(map[string]interface{}{"events": events})
}

// SummaryJSON builds an ESPN game summary whose player rows add up to the
// given team lines. Passing is split across two quarterbacks to exercise summing.
func SummaryJSON(home string, homeLine models.StatLine, away string, awayLine models.StatLine) []byte {
	return GameSummaryJSON(models.ScheduledGame{HomeTeam: home, AwayTeam: away, Completed: true}, homeLine, awayLine)
}

// GameSummaryJSON is SummaryJSON with a header describing the game and two
// scoring plays: the away team scores first, the home team last. Each
// team's defense is credited with the sacks the other side took.
func GameSummaryJSON(game models.ScheduledGame, homeLine, awayLine models.StatLine) []byte {
	return mustJSON(map[string]interface{}{
		"header": map[string]interface{}{
			"id":     game.EventID,
			"week":   game.Week,
			"season": map[string]interface{}{"year": game.Year, "type": 2},
			"competitions": []interface{}{
				map[string]interface{}{
					"status": map[string]interface{}{
						"type": map[string]interface{}{"completed": game.Completed},
					},
					"competitors": []interface{}{
						competitor("home", game.HomeTeam, game.HomeScore),
						competitor("away", game.AwayTeam, game.AwayScore),
					},
				},
			},
		},
		"boxscore": map[string]interface{}{
			"players": []interface{}{
				teamPlayers(game.HomeTeam, homeLine, awayLine.Sacks),
				teamPlayers(game.AwayTeam, awayLine, homeLine.Sacks),
			},
		},
		"scoringPlays": []interface{}{
			scoringPlay(1, "10:21", game.AwayTeam, "Field Goal", game.AwayScore, 0),
			scoringPlay(4, "0:35", game.HomeTeam, "Passing Touchdown", game.AwayScore, game.HomeScore),
		},
	})
}

func scoringPlay(period int, clock, team, kind string, awayScore, homeScore int) map[string]interface{} {
	return map[string]interface{}{
		"period":    map[string]interface{}{"number": period},
		"clock":     map[string]interface{}{"displayValue": clock},
		"team":      map[string]interface{}{"abbreviation": team},
		"type":      map[string]interface{}{"text": kind},
		"text":      fmt.Sprintf("%s %s", team, kind),
		"awayScore": awayScore,
		"homeScore": homeScore,
	}
}

func competitor(homeAway, abbr string, score int) map[string]interface{} {
	return map[string]interface{}{
		"homeAway": homeAway,
		"score":    strconv.Itoa(score),
		"team":     map[string]interface{}{"abbreviation": abbr},
	}
}

func athlete(name string, stats []interface{}) map[string]interface{} {
	return map[string]interface{}{
		"athlete": map[string]interface{}{"displayName": name},
		"stats":   stats,
	}
}

func teamPlayers(abbr string, line models.StatLine, sacksMade float64) map[string]interface{} {
	// first passer takes everything but one attempt, the second throws one incompletion
	starter := []interface{}{
		fmt.Sprintf("%d/%d", int(line.Completions), int(line.Attempts)-1),
		num(line.PassYards), "7.0", num(line.PassTDs), num(line.Interceptions),
		fmt.Sprintf("%d-%d", int(line.Sacks), int(line.Sacks)*7), "--", "90.1",
	}
	backup := []interface{}{"0/1", "0", "0.0", "0", "0", "0-0", "--", "39.6"}

	return map[string]interface{}{
		"team": map[string]interface{}{"abbreviation": abbr},
		"statistics": []interface{}{
			map[string]interface{}{
				"name":     "passing",
				"keys":     []interface{}{"completions/passingAttempts", "passingYards", "yardsPerPassAttempt", "passingTouchdowns", "interceptions", "sacks-sackYardsLost", "adjQBR", "QBRating"},
				"labels":   []interface{}{"C/ATT", "YDS", "AVG", "TD", "INT", "SACKS", "QBR", "RTG"},
				"athletes": []interface{}{athlete(abbr+" Starter", starter), athlete(abbr+" Backup", backup)},
			},
			map[string]interface{}{
				"name":   "rushing",
				"keys":   []interface{}{"rushingAttempts", "rushingYards", "yardsPerRushAttempt", "rushingTouchdowns", "longRushing"},
				"labels": []interface{}{"CAR", "YDS", "AVG", "TD", "LONG"},
				// no athletes: the parser falls back to team totals
				"totals": []interface{}{num(line.RushAttempts), num(line.RushYards), "4.0", num(line.RushTDs), "20"},
			},
			map[string]interface{}{
				"name":   "defensive",
				"keys":   []interface{}{"totalTackles", "soloTackles", "sacks", "tacklesForLoss"},
				"labels": []interface{}{"TOT", "SOLO", "SACKS", "TFL"},
				"athletes": []interface{}{
					athlete(abbr+" Rusher", []interface{}{"5", "4", num(sacksMade), "1"}),
					athlete(abbr+" Corner", []interface{}{"6", "5", "0", "0"}),
				},
			},
		},
	}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func mustJSON(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
